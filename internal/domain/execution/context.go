// Package execution provides Context, a value that pairs the result of a
// domain operation with the domain events that operation produced.
//
// A Context is read-only once built. Steps that need to add events build a
// new Context with Append; the original is left untouched.
package execution

import (
	"slices"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// Context carries an entity snapshot and its ordered domain events.
type Context[T any] struct {
	entity T
	events []domain.Event
}

// New builds a Context. The events slice is copied so later changes to the
// caller's slice are not observed.
func New[T any](entity T, events ...domain.Event) Context[T] {
	return Context[T]{
		entity: entity,
		events: slices.Clone(events),
	}
}

// Entity returns the carried entity.
func (c Context[T]) Entity() T {
	return c.entity
}

// DomainEvents returns a copy of the events in the order they were produced.
func (c Context[T]) DomainEvents() []domain.Event {
	return slices.Clone(c.events)
}

// Len returns the number of carried events.
func (c Context[T]) Len() int {
	return len(c.events)
}

// Append returns a new Context with the same entity and events appended
// after the existing ones.
func (c Context[T]) Append(events ...domain.Event) Context[T] {
	next := make([]domain.Event, 0, len(c.events)+len(events))
	next = append(next, c.events...)
	next = append(next, events...)
	return Context[T]{entity: c.entity, events: next}
}
