// Package main is the trackerctl entry point. Each invocation loads the
// selected profile, wires the shared dependency graph and runs one command.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/cli"
	"github.com/jsamuelsen11/project-tracker/internal/bootstrap"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := cli.NewRootCmd(boot).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

// boot wires the service for profile. Logs go to stderr; a terminal gets
// the text format whatever the profile says.
func boot(_ context.Context, profile string) (ports.ProjectService, func(context.Context) error, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.Log, os.Stderr)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, (*telemetry.Metrics)(nil))
	bootstrap.Register(injector)

	svc, err := do.Invoke[ports.ProjectService](injector)
	if err != nil {
		_ = bootstrap.Release(context.Background(), injector)
		return nil, nil, fmt.Errorf("resolving project service: %w", err)
	}

	release := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, cfg.Events.DrainTimeout)
		defer cancel()
		return bootstrap.Release(ctx, injector)
	}
	return svc, release, nil
}

func newLogger(cfg config.LogConfig, w *os.File) *slog.Logger {
	return logging.New(cfg.Level, logging.FormatFor(cfg.Format, w), w)
}
