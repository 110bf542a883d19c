package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Status is the terminal state of one target after processing.
// The set is closed: every processed target ends in exactly one of these.
type Status string

const (
	StatusAlreadySatisfied  Status = "already_satisfied"
	StatusSucceededPrimary  Status = "succeeded_primary"
	StatusSucceededFallback Status = "succeeded_fallback"
	StatusFailed            Status = "failed"
)

// Method records which mutation path produced the terminal status.
type Method string

const (
	MethodNone     Method = "none"
	MethodPrimary  Method = "primary"
	MethodFallback Method = "fallback"
)

// Outcome is the immutable per-target audit record. Created exactly once,
// at the end of the target's processing.
type Outcome struct {
	Target     Target    `json:"target"`
	Status     Status    `json:"status"`
	Method     Method    `json:"method"`
	Error      string    `json:"error,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`

	// NotificationSent is nil when no notification was configured for the
	// operation; a notification failure never changes Status.
	NotificationSent *bool `json:"notification_sent,omitempty"`
}

// RunReport is the full audit trail of one bulk run: every Outcome in
// target order plus run identity. Outcomes for targets skipped by an
// early cancellation are simply absent, never recorded as failed.
type RunReport struct {
	RunID      uuid.UUID `json:"run_id"`
	Operation  string    `json:"operation"`
	GroupID    string    `json:"group_id,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Cancelled  bool      `json:"cancelled,omitempty"`
	Outcomes   []Outcome `json:"outcomes"`
}

// RunSummary aggregates one run's outcomes. It is always derived from the
// Outcome slice and never stored on its own, so the counts cannot drift
// from the audit trail.
type RunSummary struct {
	Operation         string    `json:"operation"`
	Total             int       `json:"total"`
	AlreadySatisfied  int       `json:"already_satisfied"`
	SucceededPrimary  int       `json:"succeeded_primary"`
	SucceededFallback int       `json:"succeeded_fallback"`
	Failed            int       `json:"failed"`
	FinishedAt        time.Time `json:"finished_at"`
}

// Summary recomputes the aggregate counts from the outcome list.
func (r RunReport) Summary() RunSummary {
	byStatus := lo.CountValuesBy(r.Outcomes, func(o Outcome) Status { return o.Status })
	return RunSummary{
		Operation:         r.Operation,
		Total:             len(r.Outcomes),
		AlreadySatisfied:  byStatus[StatusAlreadySatisfied],
		SucceededPrimary:  byStatus[StatusSucceededPrimary],
		SucceededFallback: byStatus[StatusSucceededFallback],
		Failed:            byStatus[StatusFailed],
		FinishedAt:        r.FinishedAt,
	}
}
