package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/olekukonko/tablewriter"
)

var historyLimit *int

func init() {
	historyLimit = historyCmd.Flags().Int("limit", 10, "Number of past runs to list.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history [--limit <n>]",
	Short: "Lists past bulk runs recorded in the local history database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, cleanup, err := openHistory(historyPath(), newLogger())
		if err != nil {
			return err
		}
		defer cleanup()

		reports, err := history.Recent(*historyLimit)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Finished", "Operation", "Group", "Total", "OK", "Fallback", "Skipped", "Failed"})
		table.SetAutoFormatHeaders(true)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetBorder(false)
		for _, report := range reports {
			summary := report.Summary()
			table.Append([]string{
				report.FinishedAt.Format("2006-01-02 15:04:05"),
				summary.Operation,
				report.GroupID,
				strconv.Itoa(summary.Total),
				strconv.Itoa(summary.SucceededPrimary),
				strconv.Itoa(summary.SucceededFallback),
				strconv.Itoa(summary.AlreadySatisfied),
				strconv.Itoa(summary.Failed),
			})
		}
		table.Render()
		return nil
	},
}
