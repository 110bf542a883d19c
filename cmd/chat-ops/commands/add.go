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
	addGroup   *string
	addTargets *string
	addWelcome *string
)

func init() {
	addGroup = addCmd.Flags().String("group", "", "Group identifier to add participants to.")
	addTargets = addCmd.Flags().String("targets", "targets.json", "Target list (.json array or .csv first column).")
	addWelcome = addCmd.Flags().String("welcome", "", "Optional message sent after a verified add.")
	_ = addCmd.MarkFlagRequired("group")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add --group <id> --targets <file> [--welcome <message>]",
	Short: "Adds every target to a group, with invite-link fallback.",
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
		targets, err := loadTargets(*addTargets).Load(ctx)
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
		_, err = service.Add(ctx, *addGroup, targets, *addWelcome, monitor)
		return err
	},
}
