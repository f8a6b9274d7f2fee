// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	projectHandler *handlers.ProjectHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, domain.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		resp := dto.NewErrorResponse(req, domain.ErrValidation)
		resp.Status = http.StatusMethodNotAllowed
		resp.Title = http.StatusText(http.StatusMethodNotAllowed)
		resp.Detail = req.Method + " is not supported on " + req.URL.Path
		dto.WriteProblem(w, req, resp)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Post("/projects", projectHandler.CreateProject)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Put("/projects/{id}", projectHandler.RenameProject)
		r.Patch("/projects/{id}", projectHandler.RenameProject)

		r.Post("/projects/{projectId}/items", projectHandler.AddItem)
		r.Post("/projects/{projectId}/items/{itemId}/complete", projectHandler.CompleteItem)
		r.Put("/projects/{projectId}/items/{itemId}/contributor", projectHandler.AssignContributor)
	})

	return r
}
