package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertService_Convert(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "contacts.csv")
	req.NoError(os.WriteFile(csvPath,
		[]byte("name,phone\nalice,+33 6 12 34 56 78\nbob,+1111\nalice again,+33 6 12 34 56 78\n"), 0o644))

	outPath := filepath.Join(dir, "targets.json")
	service := NewConvertService(testLogger())

	count, err := service.Convert(context.Background(), csvPath, 1, outPath)
	req.NoError(err)
	req.Equal(2, count)

	data, err := os.ReadFile(outPath)
	req.NoError(err)
	var targets []string
	req.NoError(json.Unmarshal(data, &targets))
	req.Equal([]string{"33612345678", "1111"}, targets)
}

func TestConvertService_MissingFile(t *testing.T) {
	req := require.New(t)
	service := NewConvertService(testLogger())

	_, err := service.Convert(context.Background(), "/does/not/exist.csv", 0, filepath.Join(t.TempDir(), "out.json"))
	req.Error(err)
}
