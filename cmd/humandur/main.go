package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucrnz/humandur/internal/cli"
)

func main() {
	// Stop processing expressions on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		// Check if error is due to context cancellation (interrupt)
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\nInterrupted")
			os.Exit(130) // Standard exit code for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
