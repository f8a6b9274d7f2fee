package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
)

func newProject(t *testing.T, id string) *project.Project {
	t.Helper()
	p, err := project.New(id, "Project "+id, project.PriorityMedium)
	require.NoError(t, err)
	return p
}

func TestRepository_RoundTrip(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	p := newProject(t, "p-1")
	require.NoError(t, p.AddItem(&project.ToDoItem{ID: "i-1", Title: "Milk"}))

	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.FetchByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, p.Items(), got.Items())
	assert.Empty(t, got.PendingEvents())
}

func TestRepository_StoredCopyIsIsolated(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	p := newProject(t, "p-1")
	require.NoError(t, repo.Upsert(ctx, p))

	require.NoError(t, p.UpdateName("Changed after store"))
	fetched, err := repo.FetchByID(ctx, "p-1")
	require.NoError(t, err)
	require.NoError(t, fetched.UpdateName("Changed after fetch"))

	again, err := repo.FetchByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Project p-1", again.Name())
}

func TestRepository_FetchByID_NotFound(t *testing.T) {
	_, err := NewRepository().FetchByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_List_InsertionOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Upsert(ctx, newProject(t, id)))
	}
	require.NoError(t, repo.Upsert(ctx, newProject(t, "c")))

	got, err := repo.List(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID())
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestRepository_CancelledContext(t *testing.T) {
	repo := NewRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Upsert(ctx, newProject(t, "p-1")), context.Canceled)
	_, err := repo.FetchByID(ctx, "p-1")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepository_ConcurrentUpserts(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	projects := make([]*project.Project, 20)
	for i := range projects {
		projects[i] = newProject(t, string(rune('a'+i)))
	}

	var wg sync.WaitGroup
	for _, p := range projects {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Upsert(ctx, p))
		}()
	}
	wg.Wait()

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 20)
}

func TestRepository_Health(t *testing.T) {
	repo := NewRepository()

	assert.Equal(t, "memory", repo.Name())
	assert.NoError(t, repo.HealthCheck(context.Background()))
}
