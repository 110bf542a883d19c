// Package commands defines the chat-ops CLI: one subcommand per bulk
// operation, all sharing the same configuration and gateway session.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes to provide meaningful status to the operating system or
// service manager.
const (
	exitOK      = 0
	exitRuntime = 1
)

var rootCmd = &cobra.Command{
	Use:           "chat-ops",
	Short:         "chat-ops runs paced bulk operations against a chat-gateway session.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func ExecuteContext(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitRuntime
	}
	return exitOK
}
