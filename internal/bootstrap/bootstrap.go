// Package bootstrap registers the tracker's shared dependency graph with a
// samber/do injector. The server and trackerctl resolve their entry points
// from the same providers.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/events"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/webhook"
	"github.com/jsamuelsen11/project-tracker/internal/app"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/health"
	"github.com/jsamuelsen11/project-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-tracker/internal/platform/identity"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// webhookClientName labels the notifier's outbound client in logs, metrics
// and the readiness report.
const webhookClientName = "webhooks"

// readinessProbeTimeout bounds each readiness probe.
const readinessProbeTimeout = 2 * time.Second

// Storage is the opened project store and its readiness probe.
type Storage struct {
	Repo    ports.ProjectRepository
	Checker ports.HealthChecker
	db      *sql.DB
}

// Close releases the underlying database, if any.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Dispatcher is the event dispatcher handed to the project service. When
// events.async is set it queues deliveries on a background worker.
type Dispatcher struct {
	ports.EventDispatcher
	async *events.AsyncDispatcher
}

// Close drains queued events until ctx expires. A synchronous dispatcher
// has nothing to drain.
func (d *Dispatcher) Close(ctx context.Context) error {
	if d.async == nil {
		return nil
	}
	return d.async.Close(ctx)
}

// OpenStorage opens the store selected by cfg.Driver.
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (*Storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		repo := memory.NewRepository()
		return &Storage{Repo: repo, Checker: repo}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return &Storage{
			Repo:    sqlite.NewRepository(db),
			Checker: sqlite.NewHealthChecker(db),
			db:      db,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Register adds storage, event dispatch, webhook delivery, identity, the
// project service and the health registry to injector. The config, logger
// and metrics values must already be provided.
func Register(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Storage, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return OpenStorage(context.Background(), cfg.Storage)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, webhookClientName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*events.Bus, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		bus := events.NewBus(logger)
		bus.SubscribeAll("log", events.LogSubscriber(logger))
		if metrics != nil {
			bus.SubscribeAll("metrics", events.MetricsSubscriber(metrics))
		}
		if cfg.Notifier.Enabled {
			client := do.MustInvoke[*httpclient.Client](i)
			notifier := webhook.NewNotifier(client,
				cfg.Notifier.Endpoints,
				cfg.Notifier.MaxConcurrency,
				cfg.Notifier.SigningSecret,
			)
			bus.SubscribeAll("webhook", notifier.Handle)
		}
		return bus, nil
	})

	do.Provide(injector, func(i do.Injector) (*Dispatcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		bus := do.MustInvoke[*events.Bus](i)

		if !cfg.Events.Async {
			return &Dispatcher{EventDispatcher: bus}, nil
		}
		async := events.NewAsyncDispatcher(bus, cfg.Events.BufferSize, logger,
			events.WithEnqueueTimeout(cfg.Events.EnqueueTimeout))
		return &Dispatcher{EventDispatcher: async, async: async}, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.IDGenerator, error) {
		return identity.UUID{}, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		storage := do.MustInvoke[*Storage](i)
		dispatcher := do.MustInvoke[*Dispatcher](i)
		ids := do.MustInvoke[ports.IDGenerator](i)

		return app.NewProjectService(storage.Repo, dispatcher, ids, logger,
			app.WithRenameStrategy(app.RenameStrategy(cfg.Pipeline.RenameStrategy)),
			app.WithAddItemStrategy(app.AddItemStrategy(cfg.Pipeline.AddItemStrategy)),
			app.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		cfg := do.MustInvoke[*config.Config](i)
		storage := do.MustInvoke[*Storage](i)

		registry := health.New(health.WithCheckTimeout(readinessProbeTimeout))
		registry.Register(storage.Checker)
		if cfg.Notifier.Enabled {
			registry.Register(do.MustInvoke[*httpclient.Client](i))
		}
		return registry, nil
	})
}

// Release drains the event dispatcher, then closes storage. Services that
// cannot be resolved are skipped.
func Release(ctx context.Context, injector do.Injector) error {
	var errs []error

	if dispatcher, err := do.Invoke[*Dispatcher](injector); err == nil {
		if err := dispatcher.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("draining events: %w", err))
		}
	}
	if storage, err := do.Invoke[*Storage](injector); err == nil {
		if err := storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing storage: %w", err))
		}
	}

	return errors.Join(errs...)
}
