package events

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
)

// LogSubscriber returns a Handler that writes one structured record per
// event.
func LogSubscriber(logger *slog.Logger) Handler {
	return func(ctx context.Context, event domain.Event) error {
		logger.InfoContext(ctx, "domain event",
			slog.String("event_type", event.EventType().String()),
			slog.String("aggregate_id", event.AggregateID()),
			slog.String("occurred_at", event.OccurredAt().Format(time.RFC3339Nano)),
		)
		return nil
	}
}

// MetricsSubscriber returns a Handler that counts events by type.
func MetricsSubscriber(m *telemetry.Metrics) Handler {
	return func(ctx context.Context, event domain.Event) error {
		m.EventDispatchTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrEventType.String(event.EventType().String()),
		))
		return nil
	}
}
