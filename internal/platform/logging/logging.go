// Package logging builds the tracker's slog loggers. Every logger redacts
// credentials through masq before a record is written.
//
//	logger := logging.New(cfg.Log.Level, logging.FormatFor(cfg.Log.Format, os.Stderr), os.Stderr)
//
// Request-scoped loggers travel on the context:
//
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "...")
//
// Failed commands are logged once, by the application service, with the
// operation, the entity ids, the failure kind and the error chain:
//
//	logger.LogAttrs(ctx, slog.LevelWarn, "command failed",
//	    slog.String("operation", "AddItem"),
//	    slog.String("project_id", id),
//	    slog.String("failure", domain.FailureKind(err)),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", "error"; anything else means info). Format "text" selects the text
// handler and every other value JSON. Debug loggers include source
// locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// FormatFor returns FormatText when f is an interactive terminal and the
// configured format otherwise.
func FormatFor(configured string, f *os.File) string {
	if f != nil && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return FormatText
	}
	return configured
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger stores logger on ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored on ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ParseLevel maps a case-insensitive level name to a slog.Level. Unknown
// names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
