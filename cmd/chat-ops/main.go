package main

import (
	"chat-ops/cmd/chat-ops/commands"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Ctrl+C cancels the context; the bulk loop notices at the next
	// iteration boundary and still persists a partial report.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(commands.ExecuteContext(ctx))
}
