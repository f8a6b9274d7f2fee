package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
)

// Stack returns the service's middleware in registration order, outermost
// first. metrics may be nil.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	}
}
