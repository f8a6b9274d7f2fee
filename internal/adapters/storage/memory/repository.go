// Package memory stores Project aggregates in process memory. It backs the
// "memory" storage driver and tests that need a real repository without a
// database.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

var (
	_ ports.ProjectRepository = (*Repository)(nil)
	_ ports.HealthChecker     = (*Repository)(nil)
)

// Repository keeps copies of stored projects. Callers never share state with
// the store: Upsert and every read copy through project.Restore.
type Repository struct {
	mu       sync.RWMutex
	projects map[string]*project.Project
	order    []string
}

// NewRepository creates an empty Repository.
func NewRepository() *Repository {
	return &Repository{projects: make(map[string]*project.Project)}
}

// FetchByID implements ports.ProjectRepository.
func (r *Repository) FetchByID(ctx context.Context, id string) (*project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return snapshot(p)
}

// Upsert implements ports.ProjectRepository.
func (r *Repository) Upsert(ctx context.Context, p *project.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored, err := snapshot(p)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.projects[p.ID()]; !exists {
		r.order = append(r.order, p.ID())
	}
	r.projects[p.ID()] = stored
	return nil
}

// List implements ports.ProjectRepository.
func (r *Repository) List(ctx context.Context) ([]*project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*project.Project, 0, len(r.order))
	for _, id := range r.order {
		p, err := snapshot(r.projects[id])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return "memory" }

// HealthCheck implements ports.HealthChecker. The store is always available.
func (r *Repository) HealthCheck(context.Context) error { return nil }

// snapshot deep-copies p without its pending events.
func snapshot(p *project.Project) (*project.Project, error) {
	c, err := project.Restore(p.ID(), p.Name(), p.Priority(), p.Items())
	if err != nil {
		return nil, fmt.Errorf("%w: copying project %s: %v", domain.ErrPersistence, p.ID(), err)
	}
	return c, nil
}
