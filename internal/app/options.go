package app

import "github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"

// RenameStrategy selects the aggregate operation RenameProject applies.
type RenameStrategy string

// Rename strategies. All three enforce the same non-empty name invariant.
const (
	// RenameGuarded mutates the fetched project with UpdateName.
	RenameGuarded RenameStrategy = "guarded"
	// RenameResult mutates the fetched project with UpdateNameOrFail.
	RenameResult RenameStrategy = "result"
	// RenameImmutable stores the copy returned by WithName.
	RenameImmutable RenameStrategy = "immutable"
)

// AddItemStrategy selects how AddItem captures the ItemAdded event.
type AddItemStrategy string

// Add-item strategies.
const (
	// AddItemMutating records the event on the aggregate and drains it with
	// TakePendingEvents after the project is stored.
	AddItemMutating AddItemStrategy = "mutating"
	// AddItemContext stores the project returned by WithItem and dispatches
	// the events carried alongside it.
	AddItemContext AddItemStrategy = "context"
)

// Option configures a ProjectService.
type Option func(*ProjectService)

// WithRenameStrategy sets the rename strategy. Unknown values fall back to
// RenameGuarded.
func WithRenameStrategy(strategy RenameStrategy) Option {
	return func(s *ProjectService) {
		switch strategy {
		case RenameGuarded, RenameResult, RenameImmutable:
			s.rename = strategy
		default:
			s.rename = RenameGuarded
		}
	}
}

// WithAddItemStrategy sets the add-item strategy. Unknown values fall back to
// AddItemMutating.
func WithAddItemStrategy(strategy AddItemStrategy) Option {
	return func(s *ProjectService) {
		switch strategy {
		case AddItemMutating, AddItemContext:
			s.addItem = strategy
		default:
			s.addItem = AddItemMutating
		}
	}
}

// WithMetrics enables command duration and outcome metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *ProjectService) {
		s.metrics = m
	}
}
