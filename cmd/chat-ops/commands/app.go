package commands

import (
	"chat-ops/contract"
	"chat-ops/domain"
	"chat-ops/infrastructure/gateway"
	"chat-ops/infrastructure/storage"
	"chat-ops/internal"
	"chat-ops/sink"
	"chat-ops/sources"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// app bundles what every subcommand needs: configuration, logger, the
// authenticated gateway client, sinks, and (when requested) the run
// history database.
type app struct {
	cfg     internal.Config
	log     *slog.Logger
	client  *gateway.Client
	history storage.RunRepository
	sink    contract.ResultSink
}

// newApp loads configuration, builds the gateway client, and opens the
// history database when the command records or reads runs. The returned
// cleanup must be deferred.
func newApp(withHistory bool) (*app, func(), error) {
	_ = godotenv.Load()

	var cfg internal.Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, nil, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log := logs.GetLoggerFromString(cfg.LogLevel)

	a := &app{
		cfg: cfg,
		log: log,
		client: gateway.NewClient(gateway.ClientOptions{
			BaseURL: cfg.GatewayURL,
			Token:   cfg.GatewayToken,
			Timeout: cfg.GatewayTimeout,
		}),
		sink: sink.NewMultiSink(
			sink.NewDiskSink(cfg.ResultDir, log),
			sink.NewConsoleSink(os.Stdout, cfg.Colours),
		),
	}

	cleanup := func() {}
	if withHistory {
		history, closeHistory, err := openHistory(cfg.HistoryFilepath, log)
		if err != nil {
			return nil, nil, err
		}
		a.history = history
		cleanup = closeHistory
	}
	return a, cleanup, nil
}

func openHistory(path string, log *slog.Logger) (storage.RunRepository, func(), error) {
	options := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(options)
	if err != nil {
		return storage.RunRepository{}, nil, fmt.Errorf("opening history database: %w", err)
	}

	if log.Enabled(context.Background(), slog.LevelDebug) {
		debugPort := 8081
		endpoint := "/inspect"
		url := fmt.Sprintf("http://localhost:%d%s", debugPort, endpoint)
		log.Info("Debug history inspector available", "url", url)
		database.StartDebugServer(db, debugPort, endpoint, runMapper)
	}

	return storage.NewRunRepository(db, log), func() {
		log.Debug("Closing history database...")
		_ = db.Close()
	}, nil
}

// runMapper renders a persisted run for the badger debug inspector.
func runMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	var report domain.RunReport
	if err := json.Unmarshal(val, &report); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	summary := report.Summary()
	row.Type = summary.Operation
	row.Detail = fmt.Sprintf("group=%s total=%d ok=%d fallback=%d skipped=%d failed=%d",
		report.GroupID, summary.Total, summary.SucceededPrimary,
		summary.SucceededFallback, summary.AlreadySatisfied, summary.Failed)
	return row
}

func historyPath() string {
	if path := os.Getenv("HISTORY_FILEPATH"); path != "" {
		return path
	}
	return ".chat-ops/history"
}

// newLogger is for the offline subcommands (convert, diff) that never
// touch the gateway and must not demand its configuration.
func newLogger() *slog.Logger {
	_ = godotenv.Load()
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "INFO"
	}
	return logs.GetLoggerFromString(level)
}

func resultDir() string {
	if dir := os.Getenv("RESULT_DIR"); dir != "" {
		return dir
	}
	return "results"
}

// loadTargets picks the source from the file extension: .csv reads the
// first column, anything else is parsed as a JSON array of identifiers.
func loadTargets(path string) contract.TargetSource {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return sources.NewCSVFileSource(path, 0)
	}
	return sources.NewJSONFileSource(path)
}
