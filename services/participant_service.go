// Package services wires the bulk operations exposed by the CLI: participant
// mutations through the shared runner, message blasts, exports, conversions,
// and list diffs.
package services

import (
	"chat-ops/contract"
	"chat-ops/domain"
	"chat-ops/infrastructure/storage"
	"chat-ops/runner"
	"context"
	"fmt"
	"log/slog"
)

// ParticipantService drives the add and remove bulk mutations. Each
// operation gets its own SessionClient binding because primary and fallback
// map to different gateway endpoints.
type ParticipantService struct {
	log          *slog.Logger
	addClient    contract.SessionClient
	removeClient contract.SessionClient
	delays       domain.DelayPolicy
	wait         contract.Delayer
	sink         contract.ResultSink
	history      storage.IRunRepository
}

func NewParticipantService(
	log *slog.Logger,
	addClient contract.SessionClient,
	removeClient contract.SessionClient,
	delays domain.DelayPolicy,
	wait contract.Delayer,
	sink contract.ResultSink,
	history storage.IRunRepository,
) ParticipantService {
	return ParticipantService{
		log:          log,
		addClient:    addClient,
		removeClient: removeClient,
		delays:       delays,
		wait:         wait,
		sink:         sink,
		history:      history,
	}
}

// Add runs the add mutation: direct add as primary, invite link as
// fallback, optional welcome message after a verified add.
func (s ParticipantService) Add(
	ctx context.Context,
	groupID string,
	targets []domain.Target,
	welcome string,
	observer contract.RunObserver,
) (domain.RunReport, error) {
	r := runner.New(runner.Mutation{
		Operation:    "add",
		Desire:       domain.DesireMember,
		UseFallback:  true,
		Notification: welcome,
	}, s.addClient, s.delays, s.wait, s.log)
	return s.execute(ctx, r, groupID, targets, observer)
}

// Remove runs the remove mutation. No fallback channel exists for a
// removal; an optional goodbye message follows a verified removal.
func (s ParticipantService) Remove(
	ctx context.Context,
	groupID string,
	targets []domain.Target,
	goodbye string,
	observer contract.RunObserver,
) (domain.RunReport, error) {
	r := runner.New(runner.Mutation{
		Operation:    "remove",
		Desire:       domain.DesireAbsent,
		UseFallback:  false,
		Notification: goodbye,
	}, s.removeClient, s.delays, s.wait, s.log)
	return s.execute(ctx, r, groupID, targets, observer)
}

func (s ParticipantService) execute(
	ctx context.Context,
	r *runner.Runner,
	groupID string,
	targets []domain.Target,
	observer contract.RunObserver,
) (domain.RunReport, error) {
	if observer != nil {
		r.SetObserver(observer)
	}
	report, err := r.Run(ctx, groupID, targets)
	if err != nil {
		return report, err
	}
	// A report is always persisted once the precondition passed, even when
	// every target failed or the run was cancelled.
	if err := s.history.Record(report); err != nil {
		s.log.Error("Recording run history failed", "run_id", report.RunID, "error", err)
	}
	if err := s.sink.Persist(ctx, report); err != nil {
		return report, fmt.Errorf("persisting run report: %w", err)
	}
	return report, nil
}
