package services

import (
	"chat-ops/contract"
	"chat-ops/domain"
	"chat-ops/infrastructure/storage"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// MessageService sends one message to every target with the same pacing
// discipline as the mutation runner. A message blast has no queryable
// post-state, so there is no pre-check, verification, or fallback: every
// target ends as succeeded-primary or failed.
type MessageService struct {
	log     *slog.Logger
	client  contract.SessionClient
	delays  domain.DelayPolicy
	wait    contract.Delayer
	sink    contract.ResultSink
	history storage.IRunRepository
}

func NewMessageService(
	log *slog.Logger,
	client contract.SessionClient,
	delays domain.DelayPolicy,
	wait contract.Delayer,
	sink contract.ResultSink,
	history storage.IRunRepository,
) MessageService {
	return MessageService{
		log:     log,
		client:  client,
		delays:  delays,
		wait:    wait,
		sink:    sink,
		history: history,
	}
}

func (s MessageService) Blast(ctx context.Context, targets []domain.Target, message string) (domain.RunReport, error) {
	report := domain.RunReport{
		RunID:     uuid.New(),
		Operation: "send",
		StartedAt: time.Now(),
		Outcomes:  make([]domain.Outcome, 0, len(targets)),
	}
	s.log.Info("Starting message blast", "targets", len(targets), "run_id", report.RunID)

	for i, target := range targets {
		if ctx.Err() != nil {
			report.Cancelled = true
			break
		}

		outcome := domain.Outcome{
			Target:     target.Normalize(),
			Method:     domain.MethodPrimary,
			RecordedAt: time.Now(),
		}
		if err := s.client.SendNotification(ctx, outcome.Target, message); err != nil {
			s.log.Warn("Message send failed", "target", outcome.Target, "error", err)
			outcome.Status = domain.StatusFailed
			outcome.Error = err.Error()
		} else {
			outcome.Status = domain.StatusSucceededPrimary
		}
		report.Outcomes = append(report.Outcomes, outcome)

		if i == len(targets)-1 {
			break
		}
		pause := s.delays.BetweenItems
		if outcome.Status == domain.StatusFailed {
			pause = s.delays.AfterFailure
		}
		if err := s.wait.Wait(ctx, pause); err != nil {
			report.Cancelled = true
			break
		}
	}

	report.FinishedAt = time.Now()
	if err := s.history.Record(report); err != nil {
		s.log.Error("Recording run history failed", "run_id", report.RunID, "error", err)
	}
	if err := s.sink.Persist(ctx, report); err != nil {
		return report, fmt.Errorf("persisting run report: %w", err)
	}
	return report, nil
}
