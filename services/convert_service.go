package services

import (
	"chat-ops/domain"
	"chat-ops/sources"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/lo"
)

// ConvertService turns one CSV column into the JSON target-list format the
// bulk commands consume.
type ConvertService struct {
	log *slog.Logger
}

func NewConvertService(log *slog.Logger) ConvertService {
	return ConvertService{log: log}
}

// Convert reads the given column, normalizes and deduplicates, and writes
// the JSON array to outPath. Returns the number of targets written.
func (s ConvertService) Convert(ctx context.Context, csvPath string, column int, outPath string) (int, error) {
	targets, err := sources.NewCSVFileSource(csvPath, column).Load(ctx)
	if err != nil {
		return 0, err
	}

	identifiers := lo.Map(targets, func(t domain.Target, _ int) string { return string(t) })
	data, err := json.MarshalIndent(identifiers, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding targets: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", outPath, err)
	}

	s.log.Info("CSV converted", "source", csvPath, "output", outPath, "targets", len(targets))
	return len(targets), nil
}
