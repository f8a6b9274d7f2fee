// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// ProjectHandler handles HTTP requests for projects and their items.
type ProjectHandler struct {
	svc ports.ProjectService
}

// NewProjectHandler creates a new ProjectHandler with the given service port.
func NewProjectHandler(svc ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.svc.ListProjects(r.Context()), http.StatusOK, func(ps []*project.Project) any {
		return dto.ToProjectListResponse(ps)
	})
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.svc.CreateProject(r.Context(), req.Command())
	if p, err := res.Get(); err == nil {
		w.Header().Set("Location", projectLocation(p.ID()))
	}
	respond(w, r, res, http.StatusCreated, func(p *project.Project) any {
		return dto.ToProjectResponse(p)
	})
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, h.svc.GetProject(r.Context(), id), http.StatusOK, func(p *project.Project) any {
		return dto.ToProjectResponse(p)
	})
}

// RenameProject handles PUT /api/v1/projects/{id}. PATCH is routed here too.
func (h *ProjectHandler) RenameProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RenameProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	respond(w, r, h.svc.RenameProject(r.Context(), req.Command(id)), http.StatusOK, func(p *project.Project) any {
		return dto.ToRenameResponse(p)
	})
}

// AddItem handles POST /api/v1/projects/{projectId}/items.
func (h *ProjectHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathParam(r, "projectId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AddItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.svc.AddItem(r.Context(), req.Command(projectID))
	if res.IsOk() {
		w.Header().Set("Location", projectLocation(projectID))
	}
	respond(w, r, res, http.StatusCreated, func(ir ports.ItemResult) any {
		return dto.ToItemResponse(ir.Item)
	})
}

// CompleteItem handles POST /api/v1/projects/{projectId}/items/{itemId}/complete.
func (h *ProjectHandler) CompleteItem(w http.ResponseWriter, r *http.Request) {
	projectID, itemID, err := itemParams(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	cmd := ports.CompleteItemCommand{ProjectID: projectID, ItemID: itemID}
	respond(w, r, h.svc.CompleteItem(r.Context(), cmd), http.StatusOK, func(ir ports.ItemResult) any {
		return dto.ToProjectResponse(ir.Project)
	})
}

// AssignContributor handles PUT /api/v1/projects/{projectId}/items/{itemId}/contributor.
func (h *ProjectHandler) AssignContributor(w http.ResponseWriter, r *http.Request) {
	projectID, itemID, err := itemParams(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AssignContributorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cmd := req.Command(projectID, itemID)
	respond(w, r, h.svc.AssignContributor(r.Context(), cmd), http.StatusOK, func(ir ports.ItemResult) any {
		return dto.ToItemResponse(ir.Item)
	})
}

func itemParams(r *http.Request) (projectID, itemID string, err error) {
	if projectID, err = pathParam(r, "projectId"); err != nil {
		return "", "", err
	}
	if itemID, err = pathParam(r, "itemId"); err != nil {
		return "", "", err
	}
	return projectID, itemID, nil
}

func projectLocation(id string) string {
	return "/api/v1/projects/" + id
}
