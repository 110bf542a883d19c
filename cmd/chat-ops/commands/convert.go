package commands

import (
	"chat-ops/services"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	convertIn     *string
	convertColumn *int
	convertOut    *string
)

func init() {
	convertIn = convertCmd.Flags().String("csv", "", "CSV file to read.")
	convertColumn = convertCmd.Flags().Int("column", 0, "Zero-based column holding the identifiers.")
	convertOut = convertCmd.Flags().String("out", "targets.json", "JSON target list to write.")
	_ = convertCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert --csv <file> [--column <n>] [--out <file>]",
	Short: "Converts one CSV column into a JSON target list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		service := services.NewConvertService(newLogger())
		count, err := service.Convert(cmd.Context(), *convertIn, *convertColumn, *convertOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d targets to %s\n", count, *convertOut)
		return nil
	},
}
