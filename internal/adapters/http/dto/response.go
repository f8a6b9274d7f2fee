// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
)

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Priority string         `json:"priority"`
	Status   string         `json:"status"`
	Items    []ItemResponse `json:"items"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// RenameResponse is returned by a successful rename.
type RenameResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemResponse represents a single item in HTTP responses.
type ItemResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	IsDone        bool    `json:"is_done"`
	ContributorID *string `json:"contributor_id"`
}

// ToProjectResponse converts a Project aggregate to an HTTP response DTO.
// Items is always a JSON array, empty for a new project.
func ToProjectResponse(p *project.Project) ProjectResponse {
	items := p.Items()
	resp := ProjectResponse{
		ID:       p.ID(),
		Name:     p.Name(),
		Priority: p.Priority().String(),
		Status:   p.Status().String(),
		Items:    make([]ItemResponse, len(items)),
	}
	for i := range items {
		resp.Items[i] = ToItemResponse(items[i])
	}
	return resp
}

// ToProjectListResponse converts projects to an HTTP list response DTO.
func ToProjectListResponse(projects []*project.Project) ProjectListResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = ToProjectResponse(p)
	}
	return ProjectListResponse{
		Projects: out,
		Count:    len(out),
	}
}

// ToRenameResponse converts a renamed project to its response DTO.
func ToRenameResponse(p *project.Project) RenameResponse {
	return RenameResponse{ID: p.ID(), Name: p.Name()}
}

// ToItemResponse converts a ToDoItem to an HTTP response DTO.
func ToItemResponse(t project.ToDoItem) ItemResponse {
	return ItemResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		IsDone:        t.IsDone,
		ContributorID: t.ContributorID,
	}
}
