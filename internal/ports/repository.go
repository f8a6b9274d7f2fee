package ports

import (
	"context"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
)

// ProjectRepository stores Project aggregates. Implementations must preserve
// item order and every item field across a round-trip. Pending domain events
// are never stored.
type ProjectRepository interface {
	// FetchByID returns the project with the given identity.
	// Returns domain.ErrNotFound if it does not exist.
	FetchByID(ctx context.Context, id string) (*project.Project, error)

	// Upsert inserts or replaces the project and its full item set.
	Upsert(ctx context.Context, p *project.Project) error

	// List returns all projects in creation order.
	List(ctx context.Context) ([]*project.Project, error)
}

// EventDispatcher delivers domain events to interested subscribers.
// Dispatch is invoked once per event, in the order the events were produced.
// Delivery failures are the dispatcher's concern and are never returned to
// the caller.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event domain.Event)
}

// IDGenerator produces collision-free identities for new projects and items.
type IDGenerator interface {
	NewID() string
}
