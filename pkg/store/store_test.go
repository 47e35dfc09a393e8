package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/models"
	testdb "github.com/codeready-toolchain/runsheet/test/database"
)

var base = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newEvent(id string, day int) *models.Event {
	return &models.Event{
		ID:        id,
		Name:      "Event " + id,
		Date:      time.Date(2026, 10, day, 0, 0, 0, 0, time.UTC),
		Location:  ptr("Main hall"),
		Status:    models.EventStatusDraft,
		CreatedAt: base,
		UpdatedAt: base,
	}
}

func newItem(id, eventID string, order int, start time.Time) *models.TimelineItem {
	return &models.TimelineItem{
		ID:         id,
		EventID:    eventID,
		Title:      "Item " + id,
		Category:   models.CategoryGeneral,
		StartTime:  start,
		EndTime:    ptr(start.Add(20 * time.Minute)),
		Status:     models.ItemStatusPending,
		OrderIndex: order,
		CreatedAt:  base,
		UpdatedAt:  base,
	}
}

func itemIDs(items []*models.TimelineItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func eventIDs(events []*models.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestStores(t *testing.T) {
	drivers := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"disk": func(t *testing.T) Store {
			s, err := NewDiskStore(t.TempDir())
			require.NoError(t, err)
			return s
		},
		"postgres": func(t *testing.T) Store {
			return NewPostgresStore(testdb.NewTestClient(t).Client)
		},
	}

	for name, open := range drivers {
		t.Run(name, func(t *testing.T) {
			runContract(t, open)
		})
	}
}

func runContract(t *testing.T, open func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("event round trip", func(t *testing.T) {
		s := open(t)
		e := newEvent("e1", 19)
		require.NoError(t, s.CreateEvent(ctx, e))

		got, err := s.GetEvent(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, e.Name, got.Name)
		assert.True(t, e.Date.Equal(got.Date))
		require.NotNil(t, got.Location)
		assert.Equal(t, "Main hall", *got.Location)
		assert.Nil(t, got.Description)
		assert.Equal(t, models.EventStatusDraft, got.Status)
		assert.True(t, base.Equal(got.CreatedAt))

		_, err = s.GetEvent(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list events by date with filter", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.CreateEvent(ctx, newEvent("late", 25)))
		require.NoError(t, s.CreateEvent(ctx, newEvent("early", 2)))
		live := newEvent("mid", 10)
		live.Status = models.EventStatusLive
		require.NoError(t, s.CreateEvent(ctx, live))

		all, err := s.ListEvents(ctx, models.EventFilters{})
		require.NoError(t, err)
		assert.Equal(t, []string{"early", "mid", "late"}, eventIDs(all))

		filtered, err := s.ListEvents(ctx, models.EventFilters{Status: models.EventStatusLive})
		require.NoError(t, err)
		assert.Equal(t, []string{"mid"}, eventIDs(filtered))
	})

	t.Run("update event and status", func(t *testing.T) {
		s := open(t)
		e := newEvent("e1", 19)
		require.NoError(t, s.CreateEvent(ctx, e))

		e.Name = "Renamed"
		e.Location = nil
		e.Description = ptr("notes")
		require.NoError(t, s.UpdateEvent(ctx, e))

		later := base.Add(time.Hour)
		require.NoError(t, s.SetEventStatus(ctx, "e1", models.EventStatusLive, later))

		got, err := s.GetEvent(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Nil(t, got.Location)
		require.NotNil(t, got.Description)
		assert.Equal(t, "notes", *got.Description)
		assert.Equal(t, models.EventStatusLive, got.Status)
		assert.True(t, later.Equal(got.UpdatedAt))

		assert.ErrorIs(t, s.UpdateEvent(ctx, newEvent("missing", 1)), ErrNotFound)
		assert.ErrorIs(t, s.SetEventStatus(ctx, "missing", models.EventStatusLive, later), ErrNotFound)
	})

	t.Run("items in canonical order", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.CreateEvent(ctx, newEvent("e1", 19)))
		require.NoError(t, s.CreateEvent(ctx, newEvent("e2", 20)))

		// Chronological order differs from canonical order.
		require.NoError(t, s.CreateItem(ctx, newItem("b", "e1", 1, base)))
		require.NoError(t, s.CreateItem(ctx, newItem("a", "e1", 0, base.Add(time.Hour))))
		require.NoError(t, s.CreateItem(ctx, newItem("c", "e1", 2, base.Add(30*time.Minute))))
		require.NoError(t, s.CreateItem(ctx, newItem("other", "e2", 0, base)))

		items, err := s.ListItems(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, itemIDs(items))

		next, err := s.NextOrderIndex(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, 3, next)

		next, err = s.NextOrderIndex(ctx, "empty")
		require.NoError(t, err)
		assert.Equal(t, 0, next)

		empty, err := s.ListItems(ctx, "empty")
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("create item for missing event", func(t *testing.T) {
		s := open(t)
		err := s.CreateItem(ctx, newItem("x", "missing", 0, base))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("item round trip and update", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.CreateEvent(ctx, newEvent("e1", 19)))
		item := newItem("i1", "e1", 0, base)
		item.Description = ptr("welcome")
		require.NoError(t, s.CreateItem(ctx, item))

		got, err := s.GetItem(ctx, "i1")
		require.NoError(t, err)
		assert.True(t, base.Equal(got.StartTime))
		require.NotNil(t, got.EndTime)
		assert.True(t, base.Add(20*time.Minute).Equal(*got.EndTime))
		require.NotNil(t, got.Description)
		assert.Equal(t, "welcome", *got.Description)

		got.Title = "Doors"
		got.EndTime = nil
		got.Category = models.CategorySetup
		require.NoError(t, s.UpdateItem(ctx, got))

		again, err := s.GetItem(ctx, "i1")
		require.NoError(t, err)
		assert.Equal(t, "Doors", again.Title)
		assert.Nil(t, again.EndTime)
		assert.Equal(t, models.CategorySetup, again.Category)

		require.NoError(t, s.DeleteItem(ctx, "i1"))
		_, err = s.GetItem(ctx, "i1")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeleteItem(ctx, "i1"), ErrNotFound)
	})

	t.Run("apply item updates", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.CreateEvent(ctx, newEvent("e1", 19)))
		require.NoError(t, s.CreateItem(ctx, newItem("i1", "e1", 0, base)))

		now := base.Add(15 * time.Minute)
		u := models.ItemUpdate{ID: "i1", StartTime: now, EndTime: ptr(now.Add(20 * time.Minute)),
			Status: models.ItemStatusInProgress, UpdatedAt: now}
		require.NoError(t, s.ApplyItemUpdate(ctx, u))

		got, err := s.GetItem(ctx, "i1")
		require.NoError(t, err)
		assert.True(t, now.Equal(got.StartTime))
		assert.True(t, now.Add(20*time.Minute).Equal(*got.EndTime))
		assert.Equal(t, models.ItemStatusInProgress, got.Status)
		assert.True(t, now.Equal(got.UpdatedAt))
		assert.Equal(t, "Item i1", got.Title, "non-schedule fields are untouched")

		u.ID = "missing"
		assert.ErrorIs(t, s.ApplyItemUpdate(ctx, u), ErrNotFound)
	})

	t.Run("concurrent item updates", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.CreateEvent(ctx, newEvent("e1", 19)))
		ids := []string{"a", "b", "c", "d", "e"}
		for i, id := range ids {
			require.NoError(t, s.CreateItem(ctx, newItem(id, "e1", i, base)))
		}

		var wg sync.WaitGroup
		errs := make([]error, len(ids))
		for i, id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = s.ApplyItemUpdate(ctx, models.ItemUpdate{ID: id, StartTime: base,
					Status: models.ItemStatusSkipped, UpdatedAt: base})
			}()
		}
		wg.Wait()
		for _, err := range errs {
			require.NoError(t, err)
		}

		items, err := s.ListItems(ctx, "e1")
		require.NoError(t, err)
		for _, it := range items {
			assert.Equal(t, models.ItemStatusSkipped, it.Status, it.ID)
		}
	})

	t.Run("set item order", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.CreateEvent(ctx, newEvent("e1", 19)))
		require.NoError(t, s.CreateItem(ctx, newItem("a", "e1", 0, base)))
		require.NoError(t, s.CreateItem(ctx, newItem("b", "e1", 1, base)))

		require.NoError(t, s.SetItemOrder(ctx, "a", 1, base))
		require.NoError(t, s.SetItemOrder(ctx, "b", 0, base))

		items, err := s.ListItems(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, itemIDs(items))

		assert.ErrorIs(t, s.SetItemOrder(ctx, "missing", 0, base), ErrNotFound)
	})

	t.Run("delete event cascades", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.CreateEvent(ctx, newEvent("e1", 19)))
		require.NoError(t, s.CreateItem(ctx, newItem("i1", "e1", 0, base)))

		require.NoError(t, s.DeleteEvent(ctx, "e1"))
		_, err := s.GetEvent(ctx, "e1")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.GetItem(ctx, "i1")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeleteEvent(ctx, "e1"), ErrNotFound)
	})
}

type batchWriter interface {
	ApplyItemUpdates(ctx context.Context, updates []models.ItemUpdate) error
}

func TestBatchWriters(t *testing.T) {
	ctx := context.Background()
	writers := map[string]func(t *testing.T) (Store, batchWriter){
		"memory": func(t *testing.T) (Store, batchWriter) {
			s := NewMemoryStore()
			return s, s
		},
		"postgres": func(t *testing.T) (Store, batchWriter) {
			s := NewPostgresStore(testdb.NewTestClient(t).Client)
			return s, s
		},
	}

	for name, open := range writers {
		t.Run(name, func(t *testing.T) {
			s, w := open(t)
			require.NoError(t, s.CreateEvent(ctx, newEvent("e1", 19)))
			require.NoError(t, s.CreateItem(ctx, newItem("a", "e1", 0, base)))
			require.NoError(t, s.CreateItem(ctx, newItem("b", "e1", 1, base)))

			// One unknown id rolls back the whole batch.
			err := w.ApplyItemUpdates(ctx, []models.ItemUpdate{
				{ID: "a", StartTime: base, Status: models.ItemStatusSkipped, UpdatedAt: base},
				{ID: "missing", StartTime: base, Status: models.ItemStatusSkipped, UpdatedAt: base},
			})
			require.ErrorIs(t, err, ErrNotFound)
			a, err := s.GetItem(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, models.ItemStatusPending, a.Status)

			err = w.ApplyItemUpdates(ctx, []models.ItemUpdate{
				{ID: "a", StartTime: base, Status: models.ItemStatusSkipped, UpdatedAt: base},
				{ID: "b", StartTime: base, Status: models.ItemStatusInProgress, UpdatedAt: base},
			})
			require.NoError(t, err)
			items, err := s.ListItems(ctx, "e1")
			require.NoError(t, err)
			assert.Equal(t, models.ItemStatusSkipped, items[0].Status)
			assert.Equal(t, models.ItemStatusInProgress, items[1].Status)
		})
	}
}

func TestDiskStore_RequiresPath(t *testing.T) {
	_, err := NewDiskStore(" ")
	assert.Error(t, err)
}

func TestDiskStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1, err := NewDiskStore(dir)
	require.NoError(t, err)
	require.NoError(t, s1.CreateEvent(ctx, newEvent("e1", 19)))
	require.NoError(t, s1.CreateItem(ctx, newItem("i1", "e1", 0, base)))

	s2, err := NewDiskStore(dir)
	require.NoError(t, err)
	items, err := s2.ListItems(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"i1"}, itemIDs(items))
}

func TestDiskKeyTransform(t *testing.T) {
	pk := keyToPathKey("item-6f1c-42")
	assert.Equal(t, []string{"item"}, pk.Path)
	assert.Equal(t, "6f1c-42", pk.FileName)
	assert.Equal(t, "item-6f1c-42", pathKeyToKey(pk))
}
