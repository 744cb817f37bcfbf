package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sleuren/sleurencli/internal/cli/command"
	"github.com/sleuren/sleurencli/internal/core/domain"
	"github.com/sleuren/sleurencli/internal/infra/shutdown"
)

func main() {
	h := shutdown.NewHandler(2 * time.Second)
	h.OnShutdown(func(context.Context) error {
		fmt.Fprintln(os.Stderr, "interrupted")
		return nil
	})
	ctx, stop := h.Context(context.Background())

	err := command.App().RunContext(ctx, os.Args)
	// On a signal, stop waits for the interrupt hook before we exit.
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(domain.ExitCode(err))
	}
}
