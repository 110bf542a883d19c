package sink

import (
	"chat-ops/domain"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// ConsoleSink renders the run summary and any failed targets as a table.
// Colours can be disabled for CI logs or redirected output.
type ConsoleSink struct {
	out     io.Writer
	colours bool
}

func NewConsoleSink(out io.Writer, colours bool) ConsoleSink {
	return ConsoleSink{out: out, colours: colours}
}

func (c ConsoleSink) Persist(_ context.Context, report domain.RunReport) error {
	summary := report.Summary()

	header := fmt.Sprintf("  ====== %s : %d targets ======", summary.Operation, summary.Total)
	if c.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintln(c.out, header)

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Already satisfied", "Primary", "Fallback", "Failed"})
	table.SetAutoFormatHeaders(true)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.Append([]string{
		strconv.Itoa(summary.AlreadySatisfied),
		strconv.Itoa(summary.SucceededPrimary),
		strconv.Itoa(summary.SucceededFallback),
		c.renderFailed(summary.Failed),
	})
	table.Render()

	if summary.Failed > 0 {
		failures := tablewriter.NewWriter(c.out)
		failures.SetHeader([]string{"Target", "Method", "Error"})
		failures.SetAutoWrapText(false)
		failures.SetAlignment(tablewriter.ALIGN_LEFT)
		failures.SetBorder(false)
		for _, outcome := range report.Outcomes {
			if outcome.Status != domain.StatusFailed {
				continue
			}
			failures.Append([]string{string(outcome.Target), string(outcome.Method), outcome.Error})
		}
		failures.Render()
	}

	if report.Cancelled {
		fmt.Fprintln(c.out, "run cancelled before the full target list was processed")
	}
	return nil
}

func (c ConsoleSink) renderFailed(n int) string {
	s := strconv.Itoa(n)
	if n > 0 && c.colours {
		return color.New(color.FgRed).Render(s)
	}
	return s
}
