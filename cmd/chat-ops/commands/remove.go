package commands

import (
	"chat-ops/infrastructure/gateway"
	"chat-ops/observability"
	"chat-ops/runner"
	"chat-ops/services"
	"context"

	"github.com/spf13/cobra"
)

var (
	removeGroup   *string
	removeTargets *string
	removeGoodbye *string
)

func init() {
	removeGroup = removeCmd.Flags().String("group", "", "Group identifier to remove participants from.")
	removeTargets = removeCmd.Flags().String("targets", "targets.json", "Target list (.json array or .csv first column).")
	removeGoodbye = removeCmd.Flags().String("goodbye", "", "Optional message sent after a verified removal.")
	_ = removeCmd.MarkFlagRequired("group")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove --group <id> --targets <file> [--goodbye <message>]",
	Short: "Removes every target from a group.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, cleanup, err := newApp(true)
		if err != nil {
			return err
		}
		defer cleanup()
		ctx := cmd.Context()

		if err := app.client.Preflight(ctx); err != nil {
			return err
		}
		targets, err := loadTargets(*removeTargets).Load(ctx)
		if err != nil {
			return err
		}

		monitor := observability.NewProgressMonitor(app.log, app.cfg.ProgressInterval, len(targets))
		monitorCtx, stopMonitor := context.WithCancel(ctx)
		defer stopMonitor()
		go func() { _ = monitor.Run(monitorCtx) }()

		service := services.NewParticipantService(
			app.log,
			gateway.AddOperation{Client: app.client},
			gateway.RemoveOperation{Client: app.client},
			app.cfg.DelayPolicy(),
			runner.SleepDelayer{},
			app.sink,
			app.history,
		)
		_, err = service.Remove(ctx, *removeGroup, targets, *removeGoodbye, monitor)
		return err
	},
}
