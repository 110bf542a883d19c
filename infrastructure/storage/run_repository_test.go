package storage

import (
	"chat-ops/domain"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunRepository_RecordAndRecent(t *testing.T) {
	req := require.New(t)
	db := SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewRunRepository(db, logger)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		report := domain.RunReport{
			RunID:      uuid.New(),
			Operation:  "add",
			GroupID:    "g1",
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			FinishedAt: base.Add(time.Duration(i)*time.Hour + 5*time.Minute),
			Outcomes: []domain.Outcome{
				{Target: "1111", Status: domain.StatusSucceededPrimary, Method: domain.MethodPrimary},
			},
		}
		req.NoError(repo.Record(report))
	}

	recent, err := repo.Recent(2)
	req.NoError(err)
	req.Len(recent, 2)
	// Most recent first.
	req.True(recent[0].FinishedAt.After(recent[1].FinishedAt))
	req.Equal("add", recent[0].Operation)
	req.Len(recent[0].Outcomes, 1)

	all, err := repo.Recent(10)
	req.NoError(err)
	req.Len(all, 3)
}

func TestRunRepository_RecentOnEmptyDB(t *testing.T) {
	req := require.New(t)
	db := SetupTestDB(t)
	repo := NewRunRepository(db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	reports, err := repo.Recent(5)
	req.NoError(err)
	req.Empty(reports)
}
