package commands

import (
	"chat-ops/infrastructure/gateway"
	"chat-ops/runner"
	"chat-ops/services"

	"github.com/spf13/cobra"
)

var (
	sendTargets *string
	sendMessage *string
)

func init() {
	sendTargets = sendCmd.Flags().String("targets", "targets.json", "Target list (.json array or .csv first column).")
	sendMessage = sendCmd.Flags().String("message", "", "Message body to send to every target.")
	_ = sendCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(sendCmd)
}

var sendCmd = &cobra.Command{
	Use:   "send --message <body> --targets <file>",
	Short: "Sends one message to every target, paced like a mutation run.",
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
		targets, err := loadTargets(*sendTargets).Load(ctx)
		if err != nil {
			return err
		}

		service := services.NewMessageService(
			app.log,
			gateway.AddOperation{Client: app.client},
			app.cfg.DelayPolicy(),
			runner.SleepDelayer{},
			app.sink,
			app.history,
		)
		_, err = service.Blast(ctx, targets, *sendMessage)
		return err
	},
}
