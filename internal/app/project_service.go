// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Every command runs the same left-to-right pipeline over result.Result:
//
//	fetch -> mutate -> persist -> dispatch
//
// A failed step short-circuits the rest, so a command makes at most one
// persistence attempt and dispatches events only after a successful store.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/execution"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/result"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService. It sequences repository,
// aggregate and dispatcher calls and translates failures, but holds no
// business rules of its own.
type ProjectService struct {
	repo       ports.ProjectRepository
	dispatcher ports.EventDispatcher
	ids        ports.IDGenerator
	logger     *slog.Logger
	metrics    *telemetry.Metrics

	rename  RenameStrategy
	addItem AddItemStrategy
}

// NewProjectService creates a ProjectService. A nil logger discards output.
func NewProjectService(
	repo ports.ProjectRepository,
	dispatcher ports.EventDispatcher,
	ids ports.IDGenerator,
	logger *slog.Logger,
	opts ...Option,
) *ProjectService {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &ProjectService{
		repo:       repo,
		dispatcher: dispatcher,
		ids:        ids,
		logger:     logger,
		rename:     RenameGuarded,
		addItem:    AddItemMutating,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateProject validates and stores a new, empty project.
func (s *ProjectService) CreateProject(ctx context.Context, cmd ports.CreateProjectCommand) result.Result[*project.Project] {
	s.logger.InfoContext(ctx, "creating project", slog.String("name", cmd.Name))

	return run(ctx, s, "CreateProject", nil, func() result.Result[*project.Project] {
		created := result.From(project.New(s.ids.NewID(), cmd.Name, cmd.Priority))
		return result.Bind(created, func(p *project.Project) result.Result[*project.Project] {
			return s.persist(ctx, p)
		})
	})
}

// GetProject returns a single project by ID with its items.
func (s *ProjectService) GetProject(ctx context.Context, id string) result.Result[*project.Project] {
	s.logger.InfoContext(ctx, "fetching project", slog.String("project_id", id))

	return run(ctx, s, "GetProject", []slog.Attr{slog.String("project_id", id)}, func() result.Result[*project.Project] {
		return s.fetch(ctx, id)
	})
}

// ListProjects returns all projects in creation order.
func (s *ProjectService) ListProjects(ctx context.Context) result.Result[[]*project.Project] {
	s.logger.InfoContext(ctx, "listing projects")

	return run(ctx, s, "ListProjects", nil, func() result.Result[[]*project.Project] {
		if err := ctx.Err(); err != nil {
			return result.Fail[[]*project.Project](classify("listing projects", err))
		}
		projects, err := s.repo.List(ctx)
		if err != nil {
			return result.Fail[[]*project.Project](classify("listing projects", err))
		}
		return result.Ok(projects)
	})
}

// RenameProject changes a project's name using the configured strategy.
// Renaming records no events.
func (s *ProjectService) RenameProject(ctx context.Context, cmd ports.RenameProjectCommand) result.Result[*project.Project] {
	s.logger.InfoContext(ctx, "renaming project",
		slog.String("project_id", cmd.ProjectID),
		slog.String("strategy", string(s.rename)),
	)

	attrs := []slog.Attr{slog.String("project_id", cmd.ProjectID)}
	return run(ctx, s, "RenameProject", attrs, func() result.Result[*project.Project] {
		renamed := result.Bind(s.fetch(ctx, cmd.ProjectID), func(p *project.Project) result.Result[*project.Project] {
			return s.applyRename(p, cmd.Name)
		})
		return s.persistAndDrain(ctx, renamed)
	})
}

func (s *ProjectService) applyRename(p *project.Project, name string) result.Result[*project.Project] {
	switch s.rename {
	case RenameResult:
		return p.UpdateNameOrFail(name)
	case RenameImmutable:
		return p.WithName(name)
	default:
		return result.From(p, p.UpdateName(name))
	}
}

// AddItem creates a new item inside an existing project. ItemAdded is
// dispatched after the project is stored.
func (s *ProjectService) AddItem(ctx context.Context, cmd ports.AddItemCommand) result.Result[ports.ItemResult] {
	s.logger.InfoContext(ctx, "adding item to project",
		slog.String("project_id", cmd.ProjectID),
		slog.String("strategy", string(s.addItem)),
	)

	attrs := []slog.Attr{slog.String("project_id", cmd.ProjectID)}
	return run(ctx, s, "AddItem", attrs, func() result.Result[ports.ItemResult] {
		var itemID string
		stored := result.Bind(s.fetch(ctx, cmd.ProjectID), func(p *project.Project) result.Result[*project.Project] {
			// The aggregate validates the item on admission.
			item := &project.ToDoItem{
				ID:            s.ids.NewID(),
				Title:         cmd.Title,
				Description:   cmd.Description,
				ContributorID: cmd.ContributorID,
			}
			itemID = item.ID

			if s.addItem == AddItemContext {
				return s.persistContext(ctx, p.WithItem(item))
			}
			return s.persistAndDrain(ctx, result.From(p, p.AddItem(item)))
		})
		return result.Map(stored, func(p *project.Project) ports.ItemResult {
			snapshot, _ := p.Item(itemID)
			return ports.ItemResult{Project: p, Item: snapshot}
		})
	})
}

// CompleteItem marks an item done. ItemCompleted is dispatched unless the
// item was already done.
func (s *ProjectService) CompleteItem(ctx context.Context, cmd ports.CompleteItemCommand) result.Result[ports.ItemResult] {
	s.logger.InfoContext(ctx, "completing item",
		slog.String("project_id", cmd.ProjectID),
		slog.String("item_id", cmd.ItemID),
	)

	attrs := []slog.Attr{slog.String("project_id", cmd.ProjectID), slog.String("item_id", cmd.ItemID)}
	return run(ctx, s, "CompleteItem", attrs, func() result.Result[ports.ItemResult] {
		return s.mutateItem(ctx, cmd.ProjectID, cmd.ItemID, func(p *project.Project) error {
			return p.CompleteItem(cmd.ItemID)
		})
	})
}

// AssignContributor sets an item's contributor. ContributorAssigned is
// dispatched unless the contributor was already assigned.
func (s *ProjectService) AssignContributor(
	ctx context.Context,
	cmd ports.AssignContributorCommand,
) result.Result[ports.ItemResult] {
	s.logger.InfoContext(ctx, "assigning contributor",
		slog.String("project_id", cmd.ProjectID),
		slog.String("item_id", cmd.ItemID),
	)

	attrs := []slog.Attr{slog.String("project_id", cmd.ProjectID), slog.String("item_id", cmd.ItemID)}
	return run(ctx, s, "AssignContributor", attrs, func() result.Result[ports.ItemResult] {
		return s.mutateItem(ctx, cmd.ProjectID, cmd.ItemID, func(p *project.Project) error {
			return p.AssignContributor(cmd.ItemID, cmd.ContributorID)
		})
	})
}

// mutateItem runs an in-place item command through the pipeline and returns
// a snapshot of the item after the change.
func (s *ProjectService) mutateItem(
	ctx context.Context,
	projectID, itemID string,
	mutate func(*project.Project) error,
) result.Result[ports.ItemResult] {
	mutated := result.Bind(s.fetch(ctx, projectID), func(p *project.Project) result.Result[*project.Project] {
		return result.From(p, mutate(p))
	})
	return result.Map(s.persistAndDrain(ctx, mutated), func(p *project.Project) ports.ItemResult {
		snapshot, _ := p.Item(itemID)
		return ports.ItemResult{Project: p, Item: snapshot}
	})
}

// persistAndDrain stores a project mutated in place, then dispatches the
// events it accumulated.
func (s *ProjectService) persistAndDrain(ctx context.Context, r result.Result[*project.Project]) result.Result[*project.Project] {
	return result.Map(
		result.Bind(r, func(p *project.Project) result.Result[*project.Project] {
			return s.persist(ctx, p)
		}),
		func(p *project.Project) *project.Project {
			s.dispatch(ctx, p.TakePendingEvents())
			return p
		},
	)
}

// persistContext stores the context's entity, then dispatches the events
// carried next to it.
func (s *ProjectService) persistContext(
	ctx context.Context,
	r result.Result[execution.Context[*project.Project]],
) result.Result[*project.Project] {
	var events []domain.Event
	stored := result.Bind(r, func(ec execution.Context[*project.Project]) result.Result[*project.Project] {
		events = ec.DomainEvents()
		return s.persist(ctx, ec.Entity())
	})
	return result.Map(stored, func(p *project.Project) *project.Project {
		s.dispatch(ctx, events)
		return p
	})
}
