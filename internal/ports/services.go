package ports

import (
	"context"

	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/result"
)

// ProjectService defines the service port for Project aggregate use cases.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers, CLI commands).
//
// Every method returns a result.Result. Failures wrap one of the domain
// sentinels: ErrValidation, ErrNotFound, ErrConflict, ErrPersistence or
// ErrCancelled.
type ProjectService interface {
	// CreateProject validates and stores a new, empty project.
	CreateProject(ctx context.Context, cmd CreateProjectCommand) result.Result[*project.Project]

	// GetProject returns a single project with its items.
	GetProject(ctx context.Context, id string) result.Result[*project.Project]

	// ListProjects returns all projects in creation order.
	ListProjects(ctx context.Context) result.Result[[]*project.Project]

	// RenameProject changes a project's name.
	RenameProject(ctx context.Context, cmd RenameProjectCommand) result.Result[*project.Project]

	// AddItem creates a new item inside an existing project and dispatches
	// ItemAdded after the project is stored.
	AddItem(ctx context.Context, cmd AddItemCommand) result.Result[ItemResult]

	// CompleteItem marks an item done and dispatches ItemCompleted.
	CompleteItem(ctx context.Context, cmd CompleteItemCommand) result.Result[ItemResult]

	// AssignContributor sets an item's contributor and dispatches
	// ContributorAssigned.
	AssignContributor(ctx context.Context, cmd AssignContributorCommand) result.Result[ItemResult]
}

// CreateProjectCommand carries the fields of a new project.
type CreateProjectCommand struct {
	Name     string
	Priority project.Priority
}

// RenameProjectCommand identifies a project and its new name.
type RenameProjectCommand struct {
	ProjectID string
	Name      string
}

// AddItemCommand carries a new item for a project. ContributorID is optional.
type AddItemCommand struct {
	ProjectID     string
	Title         string
	Description   string
	ContributorID *string
}

// CompleteItemCommand identifies the item to mark done.
type CompleteItemCommand struct {
	ProjectID string
	ItemID    string
}

// AssignContributorCommand identifies an item and its contributor.
type AssignContributorCommand struct {
	ProjectID     string
	ItemID        string
	ContributorID string
}

// ItemResult is the outcome of an item-level command: the stored project and
// a snapshot of the affected item.
type ItemResult struct {
	Project *project.Project
	Item    project.ToDoItem
}
