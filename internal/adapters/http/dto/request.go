package dto

import (
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Request DTOs check that required keys are present and well-formed. Blank
// names and titles are rejected by the aggregate, which owns those rules.

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Name     *string `json:"name"`
	Priority string  `json:"priority"`
}

// Validate checks that name is present and priority is known.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name == nil {
		fields["name"] = domain.MsgRequired
	}
	if r.Priority == "" {
		fields["priority"] = domain.MsgRequired
	} else if _, err := project.ParsePriority(r.Priority); err != nil {
		fields["priority"] = "must be one of: low, medium, high"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Command converts a validated request to its service command.
func (r *CreateProjectRequest) Command() ports.CreateProjectCommand {
	p, _ := project.ParsePriority(r.Priority)
	return ports.CreateProjectCommand{Name: deref(r.Name), Priority: p}
}

// RenameProjectRequest represents the JSON body for renaming a project.
type RenameProjectRequest struct {
	Name *string `json:"name"`
}

// Validate checks that name is present.
func (r *RenameProjectRequest) Validate() error {
	if r.Name == nil {
		return domain.NewValidationError("name", domain.MsgRequired)
	}
	return nil
}

// Command converts a validated request to its service command.
func (r *RenameProjectRequest) Command(projectID string) ports.RenameProjectCommand {
	return ports.RenameProjectCommand{ProjectID: projectID, Name: deref(r.Name)}
}

// AddItemRequest represents the JSON body for adding an item to a project.
type AddItemRequest struct {
	Title         *string `json:"title"`
	Description   string  `json:"description"`
	ContributorID *string `json:"contributor_id,omitempty"`
}

// Validate checks that title is present.
func (r *AddItemRequest) Validate() error {
	if r.Title == nil {
		return domain.NewValidationError("title", domain.MsgRequired)
	}
	return nil
}

// Command converts a validated request to its service command.
func (r *AddItemRequest) Command(projectID string) ports.AddItemCommand {
	return ports.AddItemCommand{
		ProjectID:     projectID,
		Title:         deref(r.Title),
		Description:   r.Description,
		ContributorID: r.ContributorID,
	}
}

// AssignContributorRequest represents the JSON body for assigning an item.
type AssignContributorRequest struct {
	ContributorID *string `json:"contributor_id"`
}

// Validate checks that contributor_id is present.
func (r *AssignContributorRequest) Validate() error {
	if r.ContributorID == nil {
		return domain.NewValidationError("contributor_id", domain.MsgRequired)
	}
	return nil
}

// Command converts a validated request to its service command.
func (r *AssignContributorRequest) Command(projectID, itemID string) ports.AssignContributorCommand {
	return ports.AssignContributorCommand{
		ProjectID:     projectID,
		ItemID:        itemID,
		ContributorID: deref(r.ContributorID),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
