package services

import (
	"chat-ops/contract"
	"chat-ops/domain"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
)

// DiffResult compares two participant lists: what the second list gained,
// lost, and kept relative to the first.
type DiffResult struct {
	Added     []domain.Target
	Removed   []domain.Target
	Unchanged []domain.Target
}

// DiffService compares two target lists (e.g. yesterday's and today's
// exports of the same group).
type DiffService struct {
	log    *slog.Logger
	outDir string
}

func NewDiffService(log *slog.Logger, outDir string) DiffService {
	return DiffService{log: log, outDir: outDir}
}

func (s DiffService) Diff(ctx context.Context, before, after contract.TargetSource) (DiffResult, error) {
	beforeTargets, err := before.Load(ctx)
	if err != nil {
		return DiffResult{}, fmt.Errorf("loading first list: %w", err)
	}
	afterTargets, err := after.Load(ctx)
	if err != nil {
		return DiffResult{}, fmt.Errorf("loading second list: %w", err)
	}

	removed, added := lo.Difference(beforeTargets, afterTargets)
	result := DiffResult{
		Added:     added,
		Removed:   removed,
		Unchanged: lo.Intersect(beforeTargets, afterTargets),
	}
	s.log.Info("Lists compared",
		"added", len(result.Added), "removed", len(result.Removed), "unchanged", len(result.Unchanged))
	return result, nil
}

// Write renders the diff to a timestamped text artifact and returns its path.
func (s DiffService) Write(result DiffResult) (string, error) {
	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating diff directory %s: %w", s.outDir, err)
	}
	path := filepath.Join(s.outDir, fmt.Sprintf("diff_%s.txt", time.Now().Format("20060102_150405")))

	var b strings.Builder
	writeSection := func(title string, targets []domain.Target) {
		fmt.Fprintf(&b, "%s (%d)\n", title, len(targets))
		for _, t := range targets {
			fmt.Fprintf(&b, "  %s\n", t)
		}
	}
	writeSection("ADDED", result.Added)
	writeSection("REMOVED", result.Removed)
	writeSection("UNCHANGED", result.Unchanged)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
