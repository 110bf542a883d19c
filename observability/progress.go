// Package observability reports bulk-run progress while a long, heavily
// paced job is running: processed counts plus the process's own CPU and
// memory footprint.
package observability

import (
	"chat-ops/domain"
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProgressMonitor counts outcomes as the runner records them and logs a
// progress line on a fixed interval. Counters are atomic; OnOutcome is
// called from the run loop and must not block.
type ProgressMonitor struct {
	log      *slog.Logger
	interval time.Duration
	total    int64

	processed         atomic.Int64
	alreadySatisfied  atomic.Int64
	succeededPrimary  atomic.Int64
	succeededFallback atomic.Int64
	failed            atomic.Int64
}

func NewProgressMonitor(log *slog.Logger, interval time.Duration, total int) *ProgressMonitor {
	return &ProgressMonitor{log: log, interval: interval, total: int64(total)}
}

// OnOutcome implements contract.RunObserver.
func (m *ProgressMonitor) OnOutcome(outcome domain.Outcome) {
	m.processed.Add(1)
	switch outcome.Status {
	case domain.StatusAlreadySatisfied:
		m.alreadySatisfied.Add(1)
	case domain.StatusSucceededPrimary:
		m.succeededPrimary.Add(1)
	case domain.StatusSucceededFallback:
		m.succeededFallback.Add(1)
	case domain.StatusFailed:
		m.failed.Add(1)
	}
}

// Run logs progress until the context is cancelled. Runs alongside the
// sequential bulk loop; it never touches the gateway.
func (m *ProgressMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu := selfStats(proc)
			m.log.Info("Bulk run progress",
				"processed", m.processed.Load(),
				"total", m.total,
				"already_satisfied", m.alreadySatisfied.Load(),
				"succeeded_primary", m.succeededPrimary.Load(),
				"succeeded_fallback", m.succeededFallback.Load(),
				"failed", m.failed.Load(),
				"ram_bytes", rss,
				"cpu_percent", cpu,
			)
		}
	}
}

// selfStats retrieves the process's memory and CPU usage; progress logging
// must not fail because of a metrics hiccup, so errors degrade to zeros.
func selfStats(p *process.Process) (uint64, float64) {
	var rss uint64
	if memInfo, err := p.MemoryInfo(); err == nil {
		rss = memInfo.RSS
	}
	cpu, _ := p.CPUPercent()
	return rss, cpu
}
