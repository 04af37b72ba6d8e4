// Package main is the entry point for snapcli, a command-line client for the
// snap daemon's socket API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"snapcli/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cmd.Execute(ctx)
}
