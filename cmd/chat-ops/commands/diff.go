package commands

import (
	"chat-ops/services"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	diffBefore *string
	diffAfter  *string
)

func init() {
	diffBefore = diffCmd.Flags().String("before", "", "First target list (.json or .csv).")
	diffAfter = diffCmd.Flags().String("after", "", "Second target list (.json or .csv).")
	_ = diffCmd.MarkFlagRequired("before")
	_ = diffCmd.MarkFlagRequired("after")
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff --before <file> --after <file>",
	Short: "Compares two participant lists and writes the added/removed sets.",
	RunE: func(cmd *cobra.Command, args []string) error {
		service := services.NewDiffService(newLogger(), resultDir())

		result, err := service.Diff(cmd.Context(), loadTargets(*diffBefore), loadTargets(*diffAfter))
		if err != nil {
			return err
		}
		path, err := service.Write(result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added=%d removed=%d unchanged=%d, details in %s\n",
			len(result.Added), len(result.Removed), len(result.Unchanged), path)
		return nil
	},
}
