package domain

import "time"

// DelayPolicy names the waits the bulk loop inserts between calls to the
// gateway. The delays are deliberate backpressure against a rate-limited
// external API, not tunables to minimize. Immutable for the lifetime of a run.
type DelayPolicy struct {
	// Verify is the wait between the primary action and the state re-query
	// that decides whether it actually took effect.
	Verify time.Duration
	// Fallback is the (typically shorter) wait before attempting the
	// fallback action after a primary failure.
	Fallback time.Duration
	// BetweenItems is the pacing wait after a processed target.
	BetweenItems time.Duration
	// AfterFailure replaces BetweenItems when the target ended in failure.
	AfterFailure time.Duration
}
