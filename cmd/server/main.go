// Package main is the entry point for the tracker HTTP service. It wires the
// dependency graph with samber/do v2, serves the REST API, and shuts down in
// order on SIGINT/SIGTERM: HTTP first, then queued events and storage, then
// telemetry.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/project-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-tracker/internal/bootstrap"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, logging.FormatFor(cfg.Log.Format, os.Stderr), os.Stderr)

	otel, err := telemetry.Start(context.Background(), cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer flushTelemetry(otel, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	bootstrap.Register(injector)
	registerHTTP(injector, cfg, logger)

	// Releasing runs after the HTTP server has stopped accepting commands.
	defer release(injector, cfg.Events.DrainTimeout, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	logger.Info("tracker wired",
		slog.String("profile", profile),
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("events_async", cfg.Events.Async),
		slog.Bool("notifier", cfg.Notifier.Enabled),
		slog.String("rename_strategy", cfg.Pipeline.RenameStrategy),
		slog.String("add_item_strategy", cfg.Pipeline.AddItemStrategy),
	)

	return serve(server, logger)
}

// serve runs the server until a shutdown signal arrives or it fails on its own.
func serve(server *adapthttp.Server, logger *slog.Logger) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-sigCtx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr
	return nil
}

func release(injector do.Injector, drainTimeout time.Duration, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if err := bootstrap.Release(ctx, injector); err != nil {
		logger.Error("release error", slog.Any("error", err))
	}
}

func flushTelemetry(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := p.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
	logger.Info("shutdown complete")
}

func registerHTTP(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		svc := do.MustInvoke[ports.ProjectService](i)
		return handlers.NewProjectHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		projH := do.MustInvoke[*handlers.ProjectHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(projH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.RequestTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
