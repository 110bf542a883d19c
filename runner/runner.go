// Package runner drives the rate-limited bulk-mutation loop shared by every
// participant operation: pre-check, primary action, delayed verification,
// optional fallback, optional notification, pacing.
package runner

import (
	"chat-ops/contract"
	"chat-ops/domain"
	"chat-ops/errors"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Mutation describes one named bulk operation.
type Mutation struct {
	// Operation names the run in logs, artifacts, and history ("add", "remove").
	Operation string
	// Desire is the membership post-condition the mutation drives toward.
	Desire domain.Desire
	// UseFallback enables the secondary path (e.g. invite link) after a
	// failed and unverified primary action.
	UseFallback bool
	// Notification, when non-empty, is sent to the target after a verified
	// primary success. A send failure never changes the outcome status.
	Notification string
}

// Runner executes a Mutation over an ordered target list, one target at a
// time, against a single gateway session. No internal locking: correctness
// depends on strict sequential ordering with respect to the gateway state.
type Runner struct {
	mutation Mutation
	client   contract.SessionClient
	delays   domain.DelayPolicy
	wait     contract.Delayer
	log      *slog.Logger
	observer contract.RunObserver
}

func New(
	mutation Mutation,
	client contract.SessionClient,
	delays domain.DelayPolicy,
	wait contract.Delayer,
	log *slog.Logger,
) *Runner {
	return &Runner{
		mutation: mutation,
		client:   client,
		delays:   delays,
		wait:     wait,
		log:      log,
	}
}

// SetObserver registers a per-outcome callback (progress reporting).
func (r *Runner) SetObserver(observer contract.RunObserver) {
	r.observer = observer
}

// Run processes every target in order and returns the full audit trail.
// Per-target failures are captured as Outcomes, never returned as errors;
// only the precondition check (group resolvable, actor is admin) aborts
// the run, with an empty outcome list and no delay consumed.
//
// Cancellation is cooperative: the context is checked at the top of each
// iteration and during waits. A wait interrupted mid-target drops that
// target's unverified outcome; the report carries the outcomes accumulated
// so far, marked cancelled.
func (r *Runner) Run(ctx context.Context, groupID string, targets []domain.Target) (domain.RunReport, error) {
	report := domain.RunReport{
		RunID:     uuid.New(),
		Operation: r.mutation.Operation,
		GroupID:   groupID,
		StartedAt: time.Now(),
		Outcomes:  make([]domain.Outcome, 0, len(targets)),
	}

	state, err := r.client.GroupState(ctx, groupID)
	if err != nil {
		return report, fmt.Errorf("resolving group %s: %w", groupID, err)
	}
	if !state.ActorIsAdmin {
		return report, fmt.Errorf("group %s: %w", groupID, errors.ErrPrivilege)
	}

	r.log.Info("Starting bulk run",
		"operation", r.mutation.Operation,
		"group", groupID,
		"targets", len(targets),
		"run_id", report.RunID,
	)

	for i, target := range targets {
		if ctx.Err() != nil {
			report.Cancelled = true
			break
		}

		outcome, interrupted := r.process(ctx, groupID, target.Normalize())
		if interrupted {
			// The mutation may have been applied but not verified;
			// recording the target would corrupt the audit trail.
			r.log.Warn("Run cancelled mid-target, dropping unverified outcome",
				"operation", r.mutation.Operation, "target", target)
			report.Cancelled = true
			break
		}
		report.Outcomes = append(report.Outcomes, outcome)
		if r.observer != nil {
			r.observer.OnOutcome(outcome)
		}

		// No-ops must not consume the rate-limit budget.
		if outcome.Status == domain.StatusAlreadySatisfied {
			continue
		}
		if i == len(targets)-1 {
			break
		}
		pause := r.delays.BetweenItems
		if outcome.Status == domain.StatusFailed {
			pause = r.delays.AfterFailure
		}
		if err := r.wait.Wait(ctx, pause); err != nil {
			report.Cancelled = true
			break
		}
	}

	report.FinishedAt = time.Now()
	summary := report.Summary()
	r.log.Info("Bulk run finished",
		"operation", summary.Operation,
		"total", summary.Total,
		"already_satisfied", summary.AlreadySatisfied,
		"succeeded_primary", summary.SucceededPrimary,
		"succeeded_fallback", summary.SucceededFallback,
		"failed", summary.Failed,
		"cancelled", report.Cancelled,
	)
	return report, nil
}

// process walks one target through the per-target state machine:
// checking-state -> already-satisfied, or attempting-primary -> verifying
// -> succeeded-primary, or verification-failed -> attempting-fallback ->
// succeeded-fallback | failed. At most two mutation attempts per target.
//
// The second return reports an interrupted target: the run's context went
// away mid-target, so the outcome is unverified and must not be recorded.
func (r *Runner) process(ctx context.Context, groupID string, target domain.Target) (domain.Outcome, bool) {
	outcome := domain.Outcome{Target: target, Method: domain.MethodNone, RecordedAt: time.Now()}

	state, err := r.client.GroupState(ctx, groupID)
	if err != nil {
		if ctx.Err() != nil {
			return outcome, true
		}
		outcome.Status = domain.StatusFailed
		outcome.Error = err.Error()
		return outcome, false
	}
	if r.mutation.Desire.Satisfied(state, target) {
		outcome.Status = domain.StatusAlreadySatisfied
		return outcome, false
	}

	primaryErr := r.applyAndVerify(ctx, groupID, target)
	if primaryErr == nil {
		outcome.Status = domain.StatusSucceededPrimary
		outcome.Method = domain.MethodPrimary
		r.notify(ctx, target, &outcome)
		return outcome, false
	}
	if ctx.Err() != nil {
		// A cancelled verify wait surfaces here; the primary action may
		// have taken effect, so this is not a failure.
		return outcome, true
	}
	r.log.Warn("Primary action failed",
		"operation", r.mutation.Operation, "target", target, "error", primaryErr)

	if !r.mutation.UseFallback {
		outcome.Status = domain.StatusFailed
		outcome.Method = domain.MethodPrimary
		outcome.Error = fmt.Errorf("%w: %v", errors.ErrFallbackUnavailable, primaryErr).Error()
		return outcome, false
	}

	outcome.Method = domain.MethodFallback
	if err := r.wait.Wait(ctx, r.delays.Fallback); err != nil {
		return outcome, true
	}
	if err := r.client.ApplyFallback(ctx, groupID, target); err != nil {
		if ctx.Err() != nil {
			return outcome, true
		}
		r.log.Warn("Fallback action failed",
			"operation", r.mutation.Operation, "target", target, "error",
			fmt.Errorf("%w: %v", errors.ErrFallbackAction, err))
		outcome.Status = domain.StatusFailed
		// The primary error is the authoritative detail for the audit trail.
		outcome.Error = primaryErr.Error()
		return outcome, false
	}
	outcome.Status = domain.StatusSucceededFallback
	return outcome, false
}

// applyAndVerify runs the primary action and re-queries the group after the
// verify delay. The re-query is the source of truth: a primary call that
// reported success but did not change the membership list is a failure.
func (r *Runner) applyAndVerify(ctx context.Context, groupID string, target domain.Target) error {
	if err := r.client.ApplyPrimary(ctx, groupID, target); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPrimaryAction, err)
	}
	if err := r.wait.Wait(ctx, r.delays.Verify); err != nil {
		return err
	}
	state, err := r.client.GroupState(ctx, groupID)
	if err != nil {
		return fmt.Errorf("verification re-query: %w", err)
	}
	if !r.mutation.Desire.Satisfied(state, target) {
		return errors.ErrVerificationFailed
	}
	return nil
}

// notify sends the configured post-success message. Failures are recorded
// as a sub-flag on the outcome and never escalate to a failed status.
func (r *Runner) notify(ctx context.Context, target domain.Target, outcome *domain.Outcome) {
	if r.mutation.Notification == "" {
		return
	}
	if err := r.client.SendNotification(ctx, target, r.mutation.Notification); err != nil {
		r.log.Warn("Notification failed",
			"operation", r.mutation.Operation, "target", target, "error",
			fmt.Errorf("%w: %v", errors.ErrNotification, err))
		outcome.NotificationSent = lo.ToPtr(false)
		return
	}
	outcome.NotificationSent = lo.ToPtr(true)
}
