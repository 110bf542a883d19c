package sink

import (
	"chat-ops/contract"
	"chat-ops/domain"
	"context"
	"errors"
)

// MultiSink fans a report out to several sinks. Every sink is attempted;
// failures are joined so one broken sink cannot lose the artifact written
// by another.
type MultiSink struct {
	sinks []contract.ResultSink
}

func NewMultiSink(sinks ...contract.ResultSink) MultiSink {
	return MultiSink{sinks: sinks}
}

func (m MultiSink) Persist(ctx context.Context, report domain.RunReport) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Persist(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
