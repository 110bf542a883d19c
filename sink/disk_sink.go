// Package sink persists run reports: a timestamped JSON artifact on disk
// for audits, and a console rendering for the operator.
package sink

import (
	"chat-ops/domain"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// artifact is the on-disk shape: the recomputed summary first for quick
// reading, then the full outcome list.
type artifact struct {
	Summary  domain.RunSummary `json:"summary"`
	Run      runHeader         `json:"run"`
	Outcomes []domain.Outcome  `json:"outcomes"`
}

type runHeader struct {
	RunID     string    `json:"run_id"`
	GroupID   string    `json:"group_id,omitempty"`
	StartedAt time.Time `json:"started_at"`
	Cancelled bool      `json:"cancelled,omitempty"`
}

// DiskSink writes one JSON file per run under dir, named after the
// operation and the run's finish time.
type DiskSink struct {
	dir string
	log *slog.Logger
}

func NewDiskSink(dir string, log *slog.Logger) DiskSink {
	return DiskSink{dir: dir, log: log}
}

func (d DiskSink) Persist(_ context.Context, report domain.RunReport) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("creating result directory %s: %w", d.dir, err)
	}

	name := fmt.Sprintf("%s_results_%s.json",
		report.Operation, report.FinishedAt.Format("20060102_150405"))
	path := filepath.Join(d.dir, name)

	data, err := json.MarshalIndent(artifact{
		Summary: report.Summary(),
		Run: runHeader{
			RunID:     report.RunID.String(),
			GroupID:   report.GroupID,
			StartedAt: report.StartedAt,
			Cancelled: report.Cancelled,
		},
		Outcomes: report.Outcomes,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report %s: %w", path, err)
	}
	d.log.Info("Run report written", "path", path, "outcomes", len(report.Outcomes))
	return nil
}
