package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// routed mounts h at pattern behind mw on a chi router, so route patterns
// are available to the middleware.
func routed(pattern string, h http.HandlerFunc, mw ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	for _, m := range mw {
		r.Use(m)
	}
	r.Get(pattern, h)
	return r
}
