package project_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
)

func newProject(t *testing.T, name string) *project.Project {
	t.Helper()
	p, err := project.New("p-1", name, project.PriorityMedium)
	require.NoError(t, err)
	return p
}

func newItem(t *testing.T, id, title string) *project.ToDoItem {
	t.Helper()
	item, err := project.NewToDoItem(id, title, "")
	require.NoError(t, err)
	return item
}

func strPtr(s string) *string { return &s }

// --- New ---

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		projName   string
		priority   project.Priority
		wantFields []string
	}{
		{name: "valid", id: "p-1", projName: "Groceries", priority: project.PriorityMedium},
		{name: "single character name", id: "p-1", projName: "x", priority: project.PriorityLow},
		{name: "empty name", id: "p-1", projName: "", priority: project.PriorityHigh, wantFields: []string{"name"}},
		{name: "blank name", id: "p-1", projName: "   ", priority: project.PriorityHigh, wantFields: []string{"name"}},
		{name: "missing id", id: "", projName: "Groceries", priority: project.PriorityLow, wantFields: []string{"id"}},
		{name: "unknown priority", id: "p-1", projName: "Groceries", priority: "urgent", wantFields: []string{"priority"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := project.New(tt.id, tt.projName, tt.priority)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.projName, p.Name())
				assert.Equal(t, tt.priority, p.Priority())
				assert.Empty(t, p.Items())
				assert.Empty(t, p.PendingEvents())
				return
			}

			require.ErrorIs(t, err, domain.ErrValidation)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			for _, f := range tt.wantFields {
				assert.Contains(t, verr.Fields, f)
			}
			assert.Nil(t, p)
		})
	}
}

func TestRestore_PreservesItemOrderWithoutEvents(t *testing.T) {
	t.Parallel()

	items := []project.ToDoItem{
		{ID: "i-2", Title: "Second"},
		{ID: "i-1", Title: "First", IsDone: true, ContributorID: strPtr("c-1")},
	}

	p, err := project.Restore("p-1", "Groceries", project.PriorityHigh, items)
	require.NoError(t, err)

	got := p.Items()
	require.Len(t, got, 2)
	assert.Equal(t, "i-2", got[0].ID)
	assert.Equal(t, "i-1", got[1].ID)
	assert.Equal(t, "c-1", *got[1].ContributorID)
	assert.Empty(t, p.PendingEvents())
}

func TestRestore_RejectsInvalidItem(t *testing.T) {
	t.Parallel()

	_, err := project.Restore("p-1", "Groceries", project.PriorityLow, []project.ToDoItem{{ID: "i-1"}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- Status ---

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []project.ToDoItem
		want  project.Status
	}{
		{name: "no items", want: project.StatusComplete},
		{name: "all done", items: []project.ToDoItem{{ID: "a", Title: "A", IsDone: true}, {ID: "b", Title: "B", IsDone: true}}, want: project.StatusComplete},
		{name: "one open", items: []project.ToDoItem{{ID: "a", Title: "A", IsDone: true}, {ID: "b", Title: "B"}}, want: project.StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := project.Restore("p-1", "Groceries", project.PriorityLow, tt.items)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Status())
		})
	}
}

func TestStatus_AddingOpenItemToCompleteProject(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	require.Equal(t, project.StatusComplete, p.Status())

	require.NoError(t, p.AddItem(newItem(t, "i-1", "Milk")))
	assert.Equal(t, project.StatusInProgress, p.Status())
}

func TestScenario_GroceriesLifecycle(t *testing.T) {
	t.Parallel()

	p, err := project.New("p-1", "Groceries", project.PriorityMedium)
	require.NoError(t, err)

	require.NoError(t, p.AddItem(newItem(t, "milk", "Milk")))
	assert.Equal(t, project.StatusInProgress, p.Status())

	require.NoError(t, p.CompleteItem("milk"))
	assert.Equal(t, project.StatusComplete, p.Status())
}

// --- Renaming ---

func TestUpdateName(t *testing.T) {
	t.Parallel()

	t.Run("renames in place", func(t *testing.T) {
		t.Parallel()
		p := newProject(t, "Groceries")
		require.NoError(t, p.UpdateName("Hardware"))
		assert.Equal(t, "Hardware", p.Name())
	})

	t.Run("rejects empty name and keeps old one", func(t *testing.T) {
		t.Parallel()
		p := newProject(t, "Groceries")
		err := p.UpdateName("")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, "Groceries", p.Name())
	})
}

func TestUpdateNameOrFail(t *testing.T) {
	t.Parallel()

	t.Run("returns receiver on success", func(t *testing.T) {
		t.Parallel()
		p := newProject(t, "Groceries")
		r := p.UpdateNameOrFail("Hardware")
		got, err := r.Get()
		require.NoError(t, err)
		assert.Same(t, p, got)
		assert.Equal(t, "Hardware", p.Name())
	})

	t.Run("empty name fails without mutation", func(t *testing.T) {
		t.Parallel()
		p := newProject(t, "Groceries")
		r := p.UpdateNameOrFail("")
		assert.ErrorIs(t, r.Err(), domain.ErrValidation)
		assert.Equal(t, "Groceries", p.Name())
	})
}

func TestRenameStyles_EnforceSameInvariant(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", " ", "\t\n"} {
		p := newProject(t, "Groceries")

		guarded := p.UpdateName(name)
		orFail := p.UpdateNameOrFail(name).Err()
		pure := p.WithName(name).Err()

		assert.ErrorIs(t, guarded, domain.ErrValidation)
		assert.ErrorIs(t, orFail, domain.ErrValidation)
		assert.ErrorIs(t, pure, domain.ErrValidation)
		assert.Equal(t, "Groceries", p.Name())
	}
}

func TestWithName_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	require.NoError(t, p.AddItem(newItem(t, "i-1", "Milk")))

	first, err := p.WithName("Hardware").Get()
	require.NoError(t, err)
	second, err := p.WithName("Hardware").Get()
	require.NoError(t, err)

	assert.Equal(t, "Groceries", p.Name())
	assert.Equal(t, "Hardware", first.Name())
	assert.Equal(t, p.ID(), first.ID())
	assert.Equal(t, p.Items(), first.Items())
	assert.Len(t, first.PendingEvents(), 1, "pending events carry over to the copy")
	assert.NotSame(t, p, first)
	assert.Equal(t, first, second, "same input yields equal results")

	// Changes to the copy never leak back.
	require.NoError(t, first.CompleteItem("i-1"))
	orig, _ := p.Item("i-1")
	assert.False(t, orig.IsDone)
}

// --- Adding items ---

func TestAddItem(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	item := newItem(t, "i-1", "Milk")

	require.NoError(t, p.AddItem(item))

	items := p.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Title)

	events := p.PendingEvents()
	require.Len(t, events, 1)
	added, ok := events[0].(project.ItemAdded)
	require.True(t, ok, "event type = %T, want project.ItemAdded", events[0])
	assert.Equal(t, project.EventItemAdded, added.EventType())
	assert.Equal(t, "p-1", added.AggregateID())
	assert.Equal(t, "i-1", added.Item.ID)
	assert.False(t, added.OccurredAt().IsZero())
}

func TestAddItem_EventKeepsItemSnapshot(t *testing.T) {
	t.Parallel()
	p := newProject(t, "Groceries")
	require.NoError(t, p.AddItem(newItem(t, "i-1", "Milk")))
	require.NoError(t, p.CompleteItem("i-1"))

	added, ok := p.PendingEvents()[0].(project.ItemAdded)
	require.True(t, ok)
	assert.Equal(t, "p-1", added.ProjectID)
	assert.False(t, added.Item.IsDone, "event holds the item as added")
	assert.Equal(t, project.StatusComplete, p.Status())
}

func TestAddItem_StoresCopy(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	item := newItem(t, "i-1", "Milk")
	require.NoError(t, p.AddItem(item))

	item.Title = "Changed outside"
	item.IsDone = true

	got, ok := p.Item("i-1")
	require.True(t, ok)
	assert.Equal(t, "Milk", got.Title)
	assert.False(t, got.IsDone)
}

func TestAddItem_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		item    *project.ToDoItem
		wantErr error
	}{
		{name: "nil item", item: nil, wantErr: domain.ErrValidation},
		{name: "missing title", item: &project.ToDoItem{ID: "i-9"}, wantErr: domain.ErrValidation},
		{name: "duplicate id", item: &project.ToDoItem{ID: "i-1", Title: "Again"}, wantErr: domain.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newProject(t, "Groceries")
			require.NoError(t, p.AddItem(newItem(t, "i-1", "Milk")))
			_ = p.TakePendingEvents()

			err := p.AddItem(tt.item)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, p.Items(), 1)
			assert.Empty(t, p.PendingEvents())
		})
	}
}

func TestWithItem_IsPure(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	item := newItem(t, "i-1", "Milk")

	ctx, err := p.WithItem(item).Get()
	require.NoError(t, err)

	assert.Empty(t, p.Items(), "receiver items unchanged")
	assert.Empty(t, p.PendingEvents(), "receiver events unchanged")

	next := ctx.Entity()
	assert.Equal(t, p.ID(), next.ID())
	require.Len(t, next.Items(), 1)
	assert.Empty(t, next.PendingEvents(), "events travel in the context, not on the aggregate")

	events := ctx.DomainEvents()
	require.Len(t, events, 1)
	added, ok := events[0].(project.ItemAdded)
	require.True(t, ok)
	assert.Equal(t, "i-1", added.Item.ID)
}

func TestWithItem_NilItem(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	r := p.WithItem(nil)
	assert.ErrorIs(t, r.Err(), domain.ErrValidation)
}

func TestTakePendingEvents_Drains(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	require.NoError(t, p.AddItem(newItem(t, "i-1", "Milk")))
	require.NoError(t, p.AddItem(newItem(t, "i-2", "Eggs")))

	events := p.TakePendingEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "i-1", events[0].(project.ItemAdded).Item.ID)
	assert.Equal(t, "i-2", events[1].(project.ItemAdded).Item.ID)
	assert.Empty(t, p.TakePendingEvents())
}

// --- Item mutations ---

func TestCompleteItem(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	require.NoError(t, p.AddItem(newItem(t, "i-1", "Milk")))
	require.NoError(t, p.AddItem(newItem(t, "i-2", "Eggs")))
	_ = p.TakePendingEvents()

	require.NoError(t, p.CompleteItem("i-1"))
	require.NoError(t, p.CompleteItem("i-1"), "completing twice is a no-op")

	events := p.TakePendingEvents()
	require.Len(t, events, 1)
	completed := events[0].(project.ItemCompleted)
	assert.Equal(t, "i-1", completed.ItemID)
	assert.False(t, completed.ProjectComplete)

	require.NoError(t, p.CompleteItem("i-2"))
	last := p.TakePendingEvents()[0].(project.ItemCompleted)
	assert.True(t, last.ProjectComplete)
}

func TestCompleteItem_UnknownItem(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	err := p.CompleteItem("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignContributor(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	require.NoError(t, p.AddItem(newItem(t, "i-1", "Milk")))
	_ = p.TakePendingEvents()

	require.NoError(t, p.AssignContributor("i-1", "c-7"))
	require.NoError(t, p.AssignContributor("i-1", "c-7"))

	item, _ := p.Item("i-1")
	require.NotNil(t, item.ContributorID)
	assert.Equal(t, "c-7", *item.ContributorID)

	events := p.TakePendingEvents()
	require.Len(t, events, 1)
	assert.Equal(t, project.EventContributorAssigned, events[0].EventType())
}

func TestAssignContributor_Errors(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	require.NoError(t, p.AddItem(newItem(t, "i-1", "Milk")))

	assert.ErrorIs(t, p.AssignContributor("i-1", ""), domain.ErrValidation)
	assert.ErrorIs(t, p.AssignContributor("nope", "c-1"), domain.ErrNotFound)
	assert.False(t, errors.Is(p.AssignContributor("nope", "c-1"), domain.ErrValidation))
}

func TestItems_ReturnsCopy(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Groceries")
	item := newItem(t, "i-1", "Milk")
	item.ContributorID = strPtr("c-1")
	require.NoError(t, p.AddItem(item))

	items := p.Items()
	items[0].Title = "Mutated"
	*items[0].ContributorID = "c-2"

	got, _ := p.Item("i-1")
	assert.Equal(t, "Milk", got.Title)
	assert.Equal(t, "c-1", *got.ContributorID)
}

// --- Priority ---

func TestParsePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    project.Priority
		wantErr bool
	}{
		{in: "low", want: project.PriorityLow},
		{in: "MEDIUM", want: project.PriorityMedium},
		{in: " High ", want: project.PriorityHigh},
		{in: "urgent", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := project.ParsePriority(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
