package domain

import "time"

// EventType classifies domain events for routing and filtering.
type EventType string

// String implements fmt.Stringer.
func (t EventType) String() string {
	return string(t)
}

// Event is a fact recorded by an aggregate after a state change. Events are
// created during a domain operation, held until the change is persisted, and
// then handed to an EventDispatcher. They are never persisted themselves.
type Event interface {
	// EventType returns the classified event type.
	EventType() EventType
	// OccurredAt returns when the event happened (UTC).
	OccurredAt() time.Time
	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string
}
