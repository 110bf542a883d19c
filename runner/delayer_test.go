package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSleepDelayer_Wait(t *testing.T) {
	req := require.New(t)
	var d SleepDelayer

	t.Run("Elapses for positive durations", func(t *testing.T) {
		req.NoError(d.Wait(context.Background(), time.Millisecond))
	})

	t.Run("Zero duration is a no-op", func(t *testing.T) {
		req.NoError(d.Wait(context.Background(), 0))
	})

	t.Run("Cancellation interrupts the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req.ErrorIs(d.Wait(ctx, time.Minute), context.Canceled)
	})
}
