// Package main provides the entry point for the seek file finder CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/jamesainslie/seek/pkg/seek/logging"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, newRootCmd(), fang.WithVersion(version), fang.WithoutManpage()); err != nil {
		stop()
		os.Exit(1)
	}
}

// run executes cmd through fang and closes the log file on every path,
// including commands that fail after setup opened it.
func run(ctx context.Context, cmd *cobra.Command, opts ...fang.Option) error {
	defer func() { _ = logging.Close() }()
	return fang.Execute(ctx, cmd, opts...)
}
