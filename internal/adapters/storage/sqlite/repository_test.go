package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func seedProject(t *testing.T) *project.Project {
	t.Helper()
	p, err := project.Restore("p-1", "Groceries", project.PriorityHigh, []project.ToDoItem{
		{ID: "i-1", Title: "Milk", Description: "2 litres"},
		{ID: "i-2", Title: "Bread", IsDone: true, ContributorID: strPtr("alice")},
		{ID: "i-3", Title: "Eggs"},
	})
	require.NoError(t, err)
	return p
}

func TestRepository_UpsertThenFetch_RoundTripsItems(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()
	p := seedProject(t)

	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.FetchByID(ctx, "p-1")
	require.NoError(t, err)

	assert.Equal(t, "Groceries", got.Name())
	assert.Equal(t, project.PriorityHigh, got.Priority())
	assert.Equal(t, p.Items(), got.Items())
	assert.Empty(t, got.PendingEvents())
}

func TestRepository_FetchByID_NotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	_, err := repo.FetchByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_Upsert_ReplacesItemSet(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, seedProject(t)))

	updated, err := project.Restore("p-1", "Weekly shop", project.PriorityLow, []project.ToDoItem{
		{ID: "i-3", Title: "Eggs", IsDone: true},
		{ID: "i-4", Title: "Butter"},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.FetchByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Weekly shop", got.Name())
	assert.Equal(t, project.PriorityLow, got.Priority())
	assert.Equal(t, updated.Items(), got.Items())
}

func TestRepository_Upsert_DoesNotStoreEvents(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()
	p := seedProject(t)
	require.NoError(t, p.CompleteItem("i-1"))
	require.NotEmpty(t, p.PendingEvents())

	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.FetchByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Empty(t, got.PendingEvents())
	item, ok := got.Item("i-1")
	require.True(t, ok)
	assert.True(t, item.IsDone)
}

func TestRepository_List_InsertionOrder(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	for _, id := range []string{"z", "a", "m"} {
		p, err := project.New(id, "Project "+id, project.PriorityMedium)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, p))
	}
	// Updating an existing project keeps its place.
	again, err := project.New("z", "Renamed", project.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, again))

	got, err := repo.List(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID())
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
	assert.Equal(t, "Renamed", got[0].Name())
}

func TestRepository_List_Empty(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_Upsert_StampsTimes(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = func() time.Time { return first }
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, seedProject(t)))

	repo.now = func() time.Time { return first.Add(time.Hour) }
	require.NoError(t, repo.Upsert(ctx, seedProject(t)))

	var created, updated string
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM projects WHERE id = 'p-1'`).Scan(&created, &updated))
	assert.Equal(t, "2026-01-02T03:04:05Z", created)
	assert.Equal(t, "2026-01-02T04:04:05Z", updated)
}

func TestRepository_CorruptRowIsPersistenceError(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, seedProject(t)))

	_, err := db.ExecContext(ctx, `UPDATE todo_items SET title = '' WHERE id = 'i-1'`)
	require.NoError(t, err)

	_, err = repo.FetchByID(ctx, "p-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.False(t, errors.Is(err, domain.ErrValidation))
}

func TestRepository_CancelledContext(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Upsert(ctx, seedProject(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, domain.ErrPersistence))
}

func TestRepository_ClosedDBIsPersistenceError(t *testing.T) {
	db, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	repo := NewRepository(db)
	require.NoError(t, db.Close())

	_, err = repo.List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestOpen_FileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tracker.db")
	ctx := context.Background()

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewRepository(db).Upsert(ctx, seedProject(t)))
	require.NoError(t, db.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := NewRepository(reopened).FetchByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Len(t, got.Items(), 3)
}

func TestHealthChecker(t *testing.T) {
	db, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	hc := NewHealthChecker(db)

	assert.Equal(t, "sqlite", hc.Name())
	require.NoError(t, hc.HealthCheck(context.Background()))

	require.NoError(t, db.Close())
	assert.Error(t, hc.HealthCheck(context.Background()))
}
