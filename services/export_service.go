package services

import (
	"chat-ops/contract"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ExportService dumps every group visible to the session into a timestamped
// JSON artifact plus a flat CSV of (group, participant) rows.
type ExportService struct {
	log    *slog.Logger
	client contract.SessionClient
	outDir string
}

func NewExportService(log *slog.Logger, client contract.SessionClient, outDir string) ExportService {
	return ExportService{log: log, client: client, outDir: outDir}
}

// Export returns the paths of the JSON and CSV artifacts.
func (s ExportService) Export(ctx context.Context) (string, string, error) {
	groups, err := s.client.Groups(ctx)
	if err != nil {
		return "", "", fmt.Errorf("fetching groups: %w", err)
	}
	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating export directory %s: %w", s.outDir, err)
	}

	stamp := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(s.outDir, fmt.Sprintf("groups_%s.json", stamp))
	csvPath := filepath.Join(s.outDir, fmt.Sprintf("participants_%s.csv", stamp))

	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encoding groups: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("writing %s: %w", jsonPath, err)
	}

	f, err := os.Create(csvPath)
	if err != nil {
		return "", "", fmt.Errorf("creating %s: %w", csvPath, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"group_id", "group_name", "participant", "is_admin"}); err != nil {
		return "", "", err
	}
	for _, group := range groups {
		for _, participant := range group.Participants {
			row := []string{group.ID, group.Name, string(participant.ID), strconv.FormatBool(participant.IsAdmin)}
			if err := writer.Write(row); err != nil {
				return "", "", err
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", "", fmt.Errorf("writing %s: %w", csvPath, err)
	}

	s.log.Info("Groups exported", "groups", len(groups), "json", jsonPath, "csv", csvPath)
	return jsonPath, csvPath, nil
}
