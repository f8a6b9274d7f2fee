// Package identity generates identifiers for new aggregates and items.
package identity

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time interface check.
var _ ports.IDGenerator = UUID{}

// UUID issues random (version 4) UUIDs in their canonical string form.
type UUID struct{}

// NewID returns a fresh UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence issues a fixed list of identifiers in order and then falls back to
// random UUIDs. Useful for deterministic fixtures.
type Sequence struct {
	ids  []string
	next int
}

// NewSequence returns a Sequence that yields ids first. Not safe for
// concurrent use.
func NewSequence(ids ...string) *Sequence {
	return &Sequence{ids: ids}
}

// NewID returns the next queued identifier, or a random UUID once the queue
// is exhausted.
func (s *Sequence) NewID() string {
	if s.next < len(s.ids) {
		id := s.ids[s.next]
		s.next++
		return id
	}
	return uuid.NewString()
}
