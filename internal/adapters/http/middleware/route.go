package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that no route claimed, keeping raw paths
// out of span names and metric attributes.
const unmatchedRoute = "unmatched"

// routePattern returns the chi pattern that served r, such as
// "/api/v1/projects/{id}". Only meaningful after the handler ran.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unmatchedRoute
}
