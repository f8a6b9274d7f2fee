package project

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// Priority ranks a project. It is fixed at construction.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}

// ParsePriority converts s (case-insensitive) to a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", domain.NewValidationError("priority", fmt.Sprintf("invalid: %q", s))
	}
	return p, nil
}

// Status is the derived completion state of a project.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
