package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time check that Repository implements ports.ProjectRepository.
var _ ports.ProjectRepository = (*Repository)(nil)

// Repository implements ports.ProjectRepository on SQLite. A project and its
// items are written in one transaction; items are stored with their position
// so order survives a round-trip.
type Repository struct {
	db  *sql.DB
	uow UnitOfWork
	now func() time.Time
}

// NewRepository creates a Repository backed by db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, uow: NewTxRunner(db), now: time.Now}
}

// FetchByID returns the project with the given id and its items in order.
func (r *Repository) FetchByID(ctx context.Context, id string) (*project.Project, error) {
	var name, priority string
	err := r.db.QueryRowContext(ctx,
		`SELECT name, priority FROM projects WHERE id = ?`, id,
	).Scan(&name, &priority)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("querying project "+id, err)
	}

	items, err := loadItems(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return restore(id, name, priority, items)
}

// Upsert inserts or replaces the project row and its full item set.
func (r *Repository) Upsert(ctx context.Context, p *project.Project) error {
	stamp := nowUTC(r.now)
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, name, priority, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   name = excluded.name,
			   priority = excluded.priority,
			   updated_at = excluded.updated_at`,
			p.ID(), p.Name(), p.Priority().String(), stamp, stamp,
		)
		if err != nil {
			return storageErr("upserting project "+p.ID(), err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM todo_items WHERE project_id = ?`, p.ID()); err != nil {
			return storageErr("clearing items of project "+p.ID(), err)
		}

		for pos, item := range p.Items() {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO todo_items (id, project_id, position, title, description, is_done, contributor_id)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				item.ID, p.ID(), pos, item.Title, item.Description, boolToInt(item.IsDone), nullString(item.ContributorID),
			)
			if err != nil {
				return storageErr("inserting item "+item.ID, err)
			}
		}
		return nil
	})
}

// List returns all projects in insertion order.
func (r *Repository) List(ctx context.Context) ([]*project.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, priority FROM projects ORDER BY rowid`)
	if err != nil {
		return nil, storageErr("listing projects", err)
	}

	type row struct{ id, name, priority string }
	var heads []row
	for rows.Next() {
		var h row
		if err := rows.Scan(&h.id, &h.name, &h.priority); err != nil {
			_ = rows.Close()
			return nil, storageErr("scanning project", err)
		}
		heads = append(heads, h)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, storageErr("iterating projects", err)
	}
	_ = rows.Close()

	projects := make([]*project.Project, 0, len(heads))
	for _, h := range heads {
		items, err := loadItems(ctx, r.db, h.id)
		if err != nil {
			return nil, err
		}
		p, err := restore(h.id, h.name, h.priority, items)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func loadItems(ctx context.Context, q DBTX, projectID string) ([]project.ToDoItem, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, title, description, is_done, contributor_id
		 FROM todo_items WHERE project_id = ? ORDER BY position`, projectID,
	)
	if err != nil {
		return nil, storageErr("querying items of project "+projectID, err)
	}
	defer func() { _ = rows.Close() }()

	var items []project.ToDoItem
	for rows.Next() {
		var (
			item        project.ToDoItem
			done        int
			contributor sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &done, &contributor); err != nil {
			return nil, storageErr("scanning item", err)
		}
		item.IsDone = intToBool(done)
		if contributor.Valid {
			c := contributor.String
			item.ContributorID = &c
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating items", err)
	}
	return items, nil
}

// restore rehydrates a stored row. A row that no longer satisfies the
// aggregate's invariants is a storage fault, not a caller mistake.
func restore(id, name, priority string, items []project.ToDoItem) (*project.Project, error) {
	p, err := project.Restore(id, name, project.Priority(priority), items)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt project %s: %v", domain.ErrPersistence, id, err)
	}
	return p, nil
}

// storageErr wraps driver failures as persistence errors. Context errors keep
// their identity so the caller can report cancellation.
func storageErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}
