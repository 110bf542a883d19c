package runner

import (
	"context"
	"time"
)

// SleepDelayer is the production Delayer: a cancellable timer wait.
type SleepDelayer struct{}

func (SleepDelayer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
