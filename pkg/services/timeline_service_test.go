package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/events"
	"github.com/codeready-toolchain/runsheet/pkg/models"
)

func TestTimelineService_CreateItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	event, _ := env.seedEvent(t, models.EventStatusDraft)

	first, err := env.timeline.CreateItem(ctx, event.ID, models.CreateTimelineItemRequest{
		Title: "Doors", StartTime: at(18, 0), EndTime: ptrTime(at(18, 30)), Category: models.CategorySetup,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusPending, first.Status)
	assert.Equal(t, models.CategorySetup, first.Category)
	assert.Equal(t, 0, first.OrderIndex)

	second, err := env.timeline.CreateItem(ctx, event.ID, models.CreateTimelineItemRequest{
		Title: "Dinner", StartTime: at(19, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryGeneral, second.Category)
	assert.Equal(t, 1, second.OrderIndex)
	assert.Nil(t, second.EndTime)

	require.Len(t, env.publisher.items, 2)
	assert.Equal(t, events.ItemChangeCreated, env.publisher.items[0].Change)
	assert.Equal(t, first.ID, env.publisher.items[0].ItemID)

	tests := []struct {
		name  string
		req   models.CreateTimelineItemRequest
		field string
	}{
		{"missing title", models.CreateTimelineItemRequest{StartTime: at(18, 0)}, "title"},
		{"missing start", models.CreateTimelineItemRequest{Title: "x"}, "start_time"},
		{"end before start", models.CreateTimelineItemRequest{Title: "x", StartTime: at(18, 0), EndTime: ptrTime(at(17, 0))}, "end_time"},
		{"unknown category", models.CreateTimelineItemRequest{Title: "x", StartTime: at(18, 0), Category: "party"}, "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.timeline.CreateItem(ctx, event.ID, tt.req)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	t.Run("missing event", func(t *testing.T) {
		_, err := env.timeline.CreateItem(ctx, "missing", models.CreateTimelineItemRequest{Title: "x", StartTime: at(18, 0)})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTimelineService_UpdateItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, items := env.seedEvent(t, models.EventStatusDraft, at(10, 0))
	id := items[0].ID

	title := "Keynote"
	cat := models.CategoryPerformance
	end := at(10, 45)
	updated, err := env.timeline.UpdateItem(ctx, id, models.UpdateTimelineItemRequest{
		Title: &title, Category: &cat, EndTime: &end,
	})
	require.NoError(t, err)
	assert.Equal(t, "Keynote", updated.Title)
	assert.Equal(t, models.CategoryPerformance, updated.Category)
	require.NotNil(t, updated.EndTime)
	assert.True(t, updated.EndTime.Equal(end))

	cleared, err := env.timeline.UpdateItem(ctx, id, models.UpdateTimelineItemRequest{ClearEndTime: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.EndTime)
	assert.Nil(t, env.item(t, id).EndTime)

	early := at(9, 0)
	_, err = env.timeline.UpdateItem(ctx, id, models.UpdateTimelineItemRequest{
		StartTime: ptrTime(at(11, 0)), EndTime: &early,
	})
	assert.True(t, IsValidationError(err))

	_, err = env.timeline.UpdateItem(ctx, "missing", models.UpdateTimelineItemRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTimelineService_DeleteItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	event, items := env.seedEvent(t, models.EventStatusDraft, at(10, 0), at(11, 0))

	require.NoError(t, env.timeline.DeleteItem(ctx, items[0].ID))
	list, err := env.timeline.ListItems(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, items[1].ID, list[0].ID)

	assert.ErrorIs(t, env.timeline.DeleteItem(ctx, items[0].ID), ErrNotFound)
	last := env.publisher.items[len(env.publisher.items)-1]
	assert.Equal(t, events.ItemChangeDeleted, last.Change)
}

func TestTimelineService_ReorderItems(t *testing.T) {
	ctx := context.Background()

	t.Run("listed items first, rest keep order", func(t *testing.T) {
		env := newTestEnv(t)
		event, items := env.seedEvent(t, models.EventStatusDraft, at(10, 0), at(10, 30), at(11, 0), at(11, 30))
		env.now = env.now.Add(time.Minute)

		ordered, err := env.timeline.ReorderItems(ctx, event.ID, []string{items[2].ID, items[0].ID})
		require.NoError(t, err)

		want := []string{items[2].ID, items[0].ID, items[1].ID, items[3].ID}
		list, err := env.timeline.ListItems(ctx, event.ID)
		require.NoError(t, err)
		for i, item := range list {
			assert.Equal(t, want[i], item.ID)
			assert.Equal(t, i, item.OrderIndex)
			assert.Equal(t, want[i], ordered[i].ID)
		}
		assert.Equal(t, env.now, env.item(t, items[2].ID).UpdatedAt)

		last := env.publisher.items[len(env.publisher.items)-1]
		assert.Equal(t, events.ItemChangeReordered, last.Change)
		assert.Empty(t, last.ItemID)
	})

	t.Run("rejects foreign and duplicate ids", func(t *testing.T) {
		env := newTestEnv(t)
		event, items := env.seedEvent(t, models.EventStatusDraft, at(10, 0), at(10, 30))
		_, other := env.seedEvent(t, models.EventStatusDraft, at(12, 0))

		_, err := env.timeline.ReorderItems(ctx, event.ID, []string{other[0].ID})
		assert.True(t, IsValidationError(err))

		_, err = env.timeline.ReorderItems(ctx, event.ID, []string{items[1].ID, items[1].ID})
		assert.True(t, IsValidationError(err))

		_, err = env.timeline.ReorderItems(ctx, event.ID, nil)
		assert.True(t, IsValidationError(err))

		list, err := env.timeline.ListItems(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, items[0].ID, list[0].ID)
	})

	t.Run("missing event", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.timeline.ReorderItems(ctx, "missing", []string{"a"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
