package commands

import (
	"chat-ops/infrastructure/gateway"
	"chat-ops/services"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports every visible group to JSON plus a flat participant CSV.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, cleanup, err := newApp(false)
		if err != nil {
			return err
		}
		defer cleanup()
		ctx := cmd.Context()

		if err := app.client.Preflight(ctx); err != nil {
			return err
		}

		service := services.NewExportService(app.log, gateway.AddOperation{Client: app.client}, app.cfg.ResultDir)
		jsonPath, csvPath, err := service.Export(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported to %s and %s\n", jsonPath, csvPath)
		return nil
	},
}
