// Package main is the entry point for the pystylecheck CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yaklabco/pystylecheck/internal/cli"
	"github.com/yaklabco/pystylecheck/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New("info")
	logging.SetDefault(logger)
	ctx = logging.WithLogger(ctx, logger)

	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	rootCmd.SetArgs(cli.RouteArgs(rootCmd, os.Args[1:]))

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "pystylecheck: error: %v\n", err)
	}

	return cli.ExitCodeFromError(err)
}
