package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are idempotent and run in order on every Open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL CHECK(length(trim(name)) > 0),
		priority   TEXT NOT NULL CHECK(priority IN ('low','medium','high')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS todo_items (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		position       INTEGER NOT NULL,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		is_done        INTEGER NOT NULL DEFAULT 0,
		contributor_id TEXT,
		UNIQUE(project_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_todo_items_project ON todo_items(project_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_created ON projects(created_at, id)`,
}

// Migrate applies the schema to db.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
