package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"chat-ops/domain"
)

func main() {
	dbPath := flag.String("db", ".chat-ops/history", "Path to badger DB")
	prefix := flag.String("prefix", "run:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Operation", "Group", "Finished", "Total", "OK", "Fallback", "Skipped", "Failed", "Cancelled"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()

			err := item.Value(func(v []byte) error {
				var report domain.RunReport
				if err := json.Unmarshal(v, &report); err != nil {
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}

				summary := report.Summary()

				// Only the run id suffix matters for reading, the
				// timestamp segment is already in the Finished column.
				rawKey := string(item.Key())
				if idx := strings.LastIndex(rawKey, ":"); idx >= 0 && len(rawKey) > idx+9 {
					rawKey = rawKey[:idx+9]
				}

				table.Append([]string{
					rawKey,
					summary.Operation,
					report.GroupID,
					report.FinishedAt.Format("2006-01-02 15:04:05"),
					strconv.Itoa(summary.Total),
					strconv.Itoa(summary.SucceededPrimary),
					strconv.Itoa(summary.SucceededFallback),
					strconv.Itoa(summary.AlreadySatisfied),
					strconv.Itoa(summary.Failed),
					strconv.FormatBool(report.Cancelled),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// A dirty value log cannot be truncated in read-only mode; open
		// once in write mode to let badger repair, then reopen read-only.
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}

			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
