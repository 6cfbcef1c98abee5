// Package main is the entry point for the nightlife CLI.
// main only loads configuration, builds the logger and hands off to run;
// no business logic belongs here.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkordes/nightlife-navigator/internal/config"
	"github.com/pkordes/nightlife-navigator/internal/logging"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Default logger until ours is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// Logs go to stderr so command output on stdout stays pipeable.
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("command failed", "error", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps a run error to the process exit status: 0 for success, 2 for
// usage mistakes and 1 for everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp), errors.Is(err, errUsage):
		return 2
	default:
		return 1
	}
}
