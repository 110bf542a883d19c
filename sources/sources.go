// Package sources provides the file-backed target lists the bulk commands
// consume: a JSON array of identifier strings, or one column of a CSV file.
package sources

import (
	"chat-ops/domain"
	"chat-ops/errors"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

// JSONFileSource reads a JSON array of target identifier strings.
type JSONFileSource struct {
	path string
}

func NewJSONFileSource(path string) JSONFileSource {
	return JSONFileSource{path: path}
}

func (s JSONFileSource) Load(_ context.Context) ([]domain.Target, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading target file %s: %w", s.path, err)
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing target file %s: %w", s.path, err)
	}
	return normalize(raw)
}

// CSVFileSource reads one column from a CSV file. A header row is skipped
// when its cell in the selected column is not numeric-looking.
type CSVFileSource struct {
	path   string
	column int
}

func NewCSVFileSource(path string, column int) CSVFileSource {
	return CSVFileSource{path: path, column: column}
}

func (s CSVFileSource) Load(_ context.Context) ([]domain.Target, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening target file %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv %s: %w", s.path, err)
	}

	var raw []string
	for i, record := range records {
		if s.column >= len(record) {
			return nil, fmt.Errorf("csv %s row %d has no column %d", s.path, i+1, s.column)
		}
		cell := strings.TrimSpace(record[s.column])
		if i == 0 && looksLikeHeader(cell) {
			continue
		}
		raw = append(raw, cell)
	}
	return normalize(raw)
}

// normalize trims, normalizes, and deduplicates while preserving order.
// Uniqueness within a run's target list is an invariant of the loop.
func normalize(raw []string) ([]domain.Target, error) {
	targets := lo.FilterMap(raw, func(s string, _ int) (domain.Target, bool) {
		t := domain.Target(s).Normalize()
		return t, t != ""
	})
	targets = lo.Uniq(targets)
	if len(targets) == 0 {
		return nil, errors.ErrEmptyTargets
	}
	return targets, nil
}

func looksLikeHeader(cell string) bool {
	trimmed := strings.TrimPrefix(cell, "+")
	if trimmed == "" {
		return true
	}
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			return false
		}
	}
	return true
}
