package project

import (
	"strings"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// ToDoItem is a unit of work owned by exactly one Project. Items enter a
// project through AddItem or WithItem and change afterwards only through
// Project methods; the project always stores its own copy.
type ToDoItem struct {
	ID          string
	Title       string
	Description string
	IsDone      bool

	// ContributorID references an external contributor. Nil when unassigned.
	ContributorID *string
}

// NewToDoItem creates an open item. Returns a *domain.ValidationError when
// id or title is blank.
func NewToDoItem(id, title, description string) (*ToDoItem, error) {
	item := &ToDoItem{
		ID:          id,
		Title:       title,
		Description: description,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks business rules for the ToDoItem entity.
func (t *ToDoItem) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if t.ContributorID != nil && strings.TrimSpace(*t.ContributorID) == "" {
		fields["contributor_id"] = "must not be empty"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// HasContributor reports whether a contributor is assigned.
func (t ToDoItem) HasContributor() bool {
	return t.ContributorID != nil
}

// clone returns a deep copy so the caller's item and the project's item never
// share the contributor pointer.
func (t ToDoItem) clone() ToDoItem {
	if t.ContributorID != nil {
		id := *t.ContributorID
		t.ContributorID = &id
	}
	return t
}

func cloneItems(items []ToDoItem) []ToDoItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]ToDoItem, len(items))
	for i := range items {
		out[i] = items[i].clone()
	}
	return out
}
