//go:generate go run go.uber.org/mock/mockgen -source=run_repository.go -destination=../../mocks/mock_run_repository.go -package=mocks
package storage

import (
	"chat-ops/domain"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type IRunRepository interface {
	Record(report domain.RunReport) error
	Recent(limit int) ([]domain.RunReport, error)
}

// RunRepository keeps every run report in BadgerDB so past bulk jobs can
// be audited from the CLI without digging through artifact files.
type RunRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRunRepository(db *badger.DB, log *slog.Logger) RunRepository {
	return RunRepository{db: db, log: log}
}

// Record persists one report. The key is "run:{finished_unixnano_padded}:{uuid}":
//  1. 19-digit zero padding keeps keys in chronological order lexicographically.
//  2. The run UUID disambiguates two runs finishing the same nanosecond.
func (r RunRepository) Record(report domain.RunReport) error {
	key := fmt.Sprintf("run:%019d:%s", report.FinishedAt.UnixNano(), report.RunID)
	value, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding run %s: %w", report.RunID, err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Recent returns up to limit reports, most recent first.
func (r RunRepository) Recent(limit int) ([]domain.RunReport, error) {
	var reports []domain.RunReport
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte("run:")
		// Reverse iteration must seek past the last possible key of the prefix.
		seek := append([]byte{}, prefix...)
		seek = append(seek, 0xFF)

		for it.Seek(seek); it.ValidForPrefix(prefix) && len(reports) < limit; it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var report domain.RunReport
				if err := json.Unmarshal(value, &report); err != nil {
					r.log.Warn("Skipping unreadable run record",
						"key", string(it.Item().Key()), "error", err)
					return nil
				}
				reports = append(reports, report)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return reports, err
}
