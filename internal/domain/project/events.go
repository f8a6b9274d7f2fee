package project

import (
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// Event types produced by the Project aggregate.
const (
	EventItemAdded           domain.EventType = "project.item_added"
	EventItemCompleted       domain.EventType = "project.item_completed"
	EventContributorAssigned domain.EventType = "project.contributor_assigned"
)

// ItemAdded records that an item joined a project.
type ItemAdded struct {
	ProjectID string
	Item      ToDoItem
	At        time.Time
}

func (e ItemAdded) EventType() domain.EventType { return EventItemAdded }
func (e ItemAdded) OccurredAt() time.Time       { return e.At }
func (e ItemAdded) AggregateID() string         { return e.ProjectID }

// ItemCompleted records that an open item was marked done.
type ItemCompleted struct {
	ProjectID string
	ItemID    string

	// ProjectComplete is true when this completion finished the project.
	ProjectComplete bool
	At              time.Time
}

func (e ItemCompleted) EventType() domain.EventType { return EventItemCompleted }
func (e ItemCompleted) OccurredAt() time.Time       { return e.At }
func (e ItemCompleted) AggregateID() string         { return e.ProjectID }

// ContributorAssigned records a contributor being set on an item.
type ContributorAssigned struct {
	ProjectID     string
	ItemID        string
	ContributorID string
	At            time.Time
}

func (e ContributorAssigned) EventType() domain.EventType { return EventContributorAssigned }
func (e ContributorAssigned) OccurredAt() time.Time       { return e.At }
func (e ContributorAssigned) AggregateID() string         { return e.ProjectID }

func newItemAdded(projectID string, item ToDoItem) ItemAdded {
	return ItemAdded{ProjectID: projectID, Item: item.clone(), At: time.Now().UTC()}
}
