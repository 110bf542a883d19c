package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTarget_Normalize(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    Target
		expected Target
	}{
		{"International prefix", "+33612345678", "33612345678"},
		{"Spaces and dashes", "+1 415-555-0134", "14155550134"},
		{"Parentheses", "(33) 6 12 34 56 78", "33612345678"},
		{"Dots", "1.415.555.0134", "14155550134"},
		{"Already bare", "33612345678", "33612345678"},
		{"Surrounding whitespace", "  +3361234  ", "3361234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, tt.input.Normalize())
		})
	}
}

func TestGroupState_Has(t *testing.T) {
	req := require.New(t)
	state := GroupState{Members: []Target{"33612345678", "14155550134"}}

	req.True(state.Has("+33 6 12 34 56 78"))
	req.True(state.Has("14155550134"))
	req.False(state.Has("+4479000000"))
}

func TestDesire_Satisfied(t *testing.T) {
	req := require.New(t)
	state := GroupState{Members: []Target{"1111"}}

	req.True(DesireMember.Satisfied(state, "+1111"))
	req.False(DesireMember.Satisfied(state, "+2222"))
	req.True(DesireAbsent.Satisfied(state, "+2222"))
	req.False(DesireAbsent.Satisfied(state, "+1111"))
}

func TestRunReport_Summary(t *testing.T) {
	req := require.New(t)
	finished := time.Now()
	report := RunReport{
		Operation:  "add",
		FinishedAt: finished,
		Outcomes: []Outcome{
			{Target: "1", Status: StatusAlreadySatisfied},
			{Target: "2", Status: StatusSucceededPrimary},
			{Target: "3", Status: StatusSucceededPrimary},
			{Target: "4", Status: StatusSucceededFallback},
			{Target: "5", Status: StatusFailed},
		},
	}

	summary := report.Summary()
	req.Equal("add", summary.Operation)
	req.Equal(5, summary.Total)
	req.Equal(1, summary.AlreadySatisfied)
	req.Equal(2, summary.SucceededPrimary)
	req.Equal(1, summary.SucceededFallback)
	req.Equal(1, summary.Failed)
	req.Equal(finished, summary.FinishedAt)

	t.Run("Empty run summarizes to zeros", func(t *testing.T) {
		empty := RunReport{Operation: "remove"}.Summary()
		req.Equal(0, empty.Total)
		req.Equal(0, empty.Failed)
	})
}
