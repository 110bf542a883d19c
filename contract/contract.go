//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-ops/domain"
	"context"
	"time"
)

// SessionClient is the narrow view of the chat gateway the bulk tooling
// needs: one authenticated session, one outstanding call at a time.
// Callers must not pipeline calls; membership state has to be re-read
// consistently between a write and its verification.
type SessionClient interface {
	GroupState(ctx context.Context, groupID string) (domain.GroupState, error)
	Groups(ctx context.Context) ([]domain.GroupInfo, error)
	ApplyPrimary(ctx context.Context, groupID string, target domain.Target) error
	ApplyFallback(ctx context.Context, groupID string, target domain.Target) error
	SendNotification(ctx context.Context, target domain.Target, message string) error
}

// TargetSource supplies the ordered target list of a run.
type TargetSource interface {
	Load(ctx context.Context) ([]domain.Target, error)
}

// ResultSink persists one run's report (summary plus full outcome list).
type ResultSink interface {
	Persist(ctx context.Context, report domain.RunReport) error
}

// Delayer provides the pacing waits. Substitutable with a zero-delay
// implementation so tests can drive the full loop without wall-clock time.
type Delayer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// RunObserver is notified after each target's outcome is recorded.
// Used for progress reporting; observers must not block.
type RunObserver interface {
	OnOutcome(outcome domain.Outcome)
}
