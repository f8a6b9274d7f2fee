// Package project contains the Project aggregate root and its owned
// ToDoItem entities.
//
// The aggregate offers two families of operations:
//
//   - In-place commands (UpdateName, UpdateNameOrFail, AddItem, CompleteItem,
//     AssignContributor) mutate the receiver and accumulate domain events on
//     it. Callers drain them with TakePendingEvents once the change is stored.
//   - Pure commands (WithName, WithItem) leave the receiver untouched and
//     return a new Project. WithItem returns the events next to the value in
//     an execution.Context instead of recording them on the aggregate.
//
// Both families enforce the same invariants.
package project

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/execution"
	"github.com/jsamuelsen11/project-tracker/internal/domain/result"
)

// Project is the aggregate root. Fields are unexported so the item
// collection can only change through the methods below.
type Project struct {
	id       string
	name     string
	priority Priority
	items    []ToDoItem

	// events are transient and never persisted.
	events []domain.Event
}

// New creates an empty project. Returns a *domain.ValidationError when id or
// name is blank or priority is unknown.
func New(id, name string, priority Priority) (*Project, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(id) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", priority)
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return &Project{id: id, name: name, priority: priority}, nil
}

// Restore rebuilds a stored project. Items keep the given order. No events
// are recorded.
func Restore(id, name string, priority Priority, items []ToDoItem) (*Project, error) {
	p, err := New(id, name, priority)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, fmt.Errorf("restoring item %d of project %s: %w", i, id, err)
		}
	}
	p.items = cloneItems(items)
	return p, nil
}

// ID returns the project's identity.
func (p *Project) ID() string { return p.id }

// Name returns the current name.
func (p *Project) Name() string { return p.name }

// Priority returns the priority set at construction.
func (p *Project) Priority() Priority { return p.priority }

// Items returns a copy of the items in insertion order.
func (p *Project) Items() []ToDoItem {
	return cloneItems(p.items)
}

// Item returns a copy of the item with the given id.
func (p *Project) Item(itemID string) (ToDoItem, bool) {
	i := p.indexOf(itemID)
	if i < 0 {
		return ToDoItem{}, false
	}
	return p.items[i].clone(), true
}

// Status is Complete when every item is done, including when there are no
// items. It is computed on every call.
func (p *Project) Status() Status {
	for i := range p.items {
		if !p.items[i].IsDone {
			return StatusInProgress
		}
	}
	return StatusComplete
}

// PendingEvents returns a copy of the events recorded by in-place commands.
func (p *Project) PendingEvents() []domain.Event {
	return slices.Clone(p.events)
}

// TakePendingEvents returns the recorded events and clears them.
func (p *Project) TakePendingEvents() []domain.Event {
	events := p.events
	p.events = nil
	return events
}

// UpdateName renames the project in place.
func (p *Project) UpdateName(newName string) error {
	if err := validateName(newName); err != nil {
		return err
	}
	p.name = newName
	return nil
}

// UpdateNameOrFail renames the project in place and returns the receiver.
// On failure the receiver is unchanged.
func (p *Project) UpdateNameOrFail(newName string) result.Result[*Project] {
	if err := validateName(newName); err != nil {
		return result.Fail[*Project](err)
	}
	p.name = newName
	return result.Ok(p)
}

// WithName returns a copy with the same identity, items and pending events
// but a different name. The receiver is never modified.
func (p *Project) WithName(newName string) result.Result[*Project] {
	if err := validateName(newName); err != nil {
		return result.Fail[*Project](err)
	}
	next := p.clone()
	next.name = newName
	return result.Ok(next)
}

// AddItem appends a copy of item and records an ItemAdded event on the
// receiver.
func (p *Project) AddItem(item *ToDoItem) error {
	if err := p.admit(item); err != nil {
		return err
	}
	added := item.clone()
	p.items = append(p.items, added)
	p.events = append(p.events, newItemAdded(p.id, added))
	return nil
}

// WithItem returns a new project holding the existing items plus a copy of
// item, paired with a single ItemAdded event. The new project carries no
// pending events and the receiver is never modified.
func (p *Project) WithItem(item *ToDoItem) result.Result[execution.Context[*Project]] {
	if err := p.admit(item); err != nil {
		return result.Fail[execution.Context[*Project]](err)
	}
	added := item.clone()

	items := make([]ToDoItem, 0, len(p.items)+1)
	items = append(items, cloneItems(p.items)...)
	items = append(items, added)

	next := &Project{
		id:       p.id,
		name:     p.name,
		priority: p.priority,
		items:    items,
	}
	return result.Ok(execution.New(next, newItemAdded(p.id, added)))
}

// CompleteItem marks an item done and records ItemCompleted. Completing an
// item that is already done is a no-op without an event.
func (p *Project) CompleteItem(itemID string) error {
	i := p.indexOf(itemID)
	if i < 0 {
		return p.itemNotFound(itemID)
	}
	if p.items[i].IsDone {
		return nil
	}

	p.items[i].IsDone = true
	p.events = append(p.events, ItemCompleted{
		ProjectID:       p.id,
		ItemID:          itemID,
		ProjectComplete: p.Status() == StatusComplete,
		At:              time.Now().UTC(),
	})
	return nil
}

// AssignContributor sets the contributor of an item and records
// ContributorAssigned. Reassigning the same contributor is a no-op.
func (p *Project) AssignContributor(itemID, contributorID string) error {
	if strings.TrimSpace(contributorID) == "" {
		return domain.NewValidationError("contributor_id", domain.MsgRequired)
	}
	i := p.indexOf(itemID)
	if i < 0 {
		return p.itemNotFound(itemID)
	}
	if current := p.items[i].ContributorID; current != nil && *current == contributorID {
		return nil
	}

	id := contributorID
	p.items[i].ContributorID = &id
	p.events = append(p.events, ContributorAssigned{
		ProjectID:     p.id,
		ItemID:        itemID,
		ContributorID: contributorID,
		At:            time.Now().UTC(),
	})
	return nil
}

// admit checks that item may join the project.
func (p *Project) admit(item *ToDoItem) error {
	if item == nil {
		return domain.NewValidationError("item", domain.MsgRequired)
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if p.indexOf(item.ID) >= 0 {
		return fmt.Errorf("item %s already in project %s: %w", item.ID, p.id, domain.ErrConflict)
	}
	return nil
}

func (p *Project) indexOf(itemID string) int {
	return slices.IndexFunc(p.items, func(t ToDoItem) bool { return t.ID == itemID })
}

func (p *Project) itemNotFound(itemID string) error {
	return fmt.Errorf("item %s in project %s: %w", itemID, p.id, domain.ErrNotFound)
}

func (p *Project) clone() *Project {
	return &Project{
		id:       p.id,
		name:     p.name,
		priority: p.priority,
		items:    cloneItems(p.items),
		events:   slices.Clone(p.events),
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("name", domain.MsgRequired)
	}
	return nil
}
