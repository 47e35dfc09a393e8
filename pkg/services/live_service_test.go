package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/events"
	"github.com/codeready-toolchain/runsheet/pkg/models"
)

func TestLiveService_JumpTo(t *testing.T) {
	ctx := context.Background()

	t.Run("re-times the schedule around the anchor", func(t *testing.T) {
		env := newTestEnv(t)
		_, items := env.seedEvent(t, models.EventStatusLive, at(10, 0), at(10, 30), at(11, 0))

		result, err := env.live.JumpTo(ctx, items[1].ID)
		require.NoError(t, err)
		assert.Equal(t, models.LiveActionJump, result.Action)
		assert.Len(t, result.Updates, 3)
		assert.Equal(t, env.now, result.Now)

		first := env.item(t, items[0].ID)
		assert.Equal(t, models.ItemStatusSkipped, first.Status)
		assert.True(t, first.StartTime.Equal(at(10, 0)))

		anchor := env.item(t, items[1].ID)
		assert.Equal(t, models.ItemStatusInProgress, anchor.Status)
		assert.True(t, anchor.StartTime.Equal(at(10, 15)))

		last := env.item(t, items[2].ID)
		assert.Equal(t, models.ItemStatusPending, last.Status)
		assert.True(t, last.StartTime.Equal(at(10, 45)))

		require.Len(t, env.publisher.timeline, 1)
		published := env.publisher.timeline[0]
		assert.Equal(t, events.EventTypeTimelineUpdated, published.Type)
		assert.Equal(t, items[1].ID, published.ItemID)
		assert.Empty(t, published.FailedItemIDs)
	})

	t.Run("keeps durations", func(t *testing.T) {
		env := newTestEnv(t)
		event, _ := env.seedEvent(t, models.EventStatusPaused)
		item, err := env.timeline.CreateItem(ctx, event.ID, models.CreateTimelineItemRequest{
			Title: "Speech", StartTime: at(9, 0), EndTime: ptrTime(at(9, 30)),
		})
		require.NoError(t, err)

		_, err = env.live.JumpTo(ctx, item.ID)
		require.NoError(t, err)

		got := env.item(t, item.ID)
		require.NotNil(t, got.EndTime)
		assert.Equal(t, 30*time.Minute, got.EndTime.Sub(got.StartTime))
	})

	t.Run("event must be live or paused", func(t *testing.T) {
		for _, status := range []models.EventStatus{
			models.EventStatusDraft, models.EventStatusScheduled, models.EventStatusCompleted, models.EventStatusCancelled,
		} {
			env := newTestEnv(t)
			_, items := env.seedEvent(t, status, at(10, 0))
			_, err := env.live.JumpTo(ctx, items[0].ID)
			assert.True(t, IsInvalidTransition(err), status)
			assert.Equal(t, models.ItemStatusPending, env.item(t, items[0].ID).Status)
		}
	})

	t.Run("validation and not found", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.live.JumpTo(ctx, "")
		assert.True(t, IsValidationError(err))

		_, err = env.live.JumpTo(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("partial commit keeps applied rows", func(t *testing.T) {
		env := newTestEnv(t)
		_, items := env.seedEvent(t, models.EventStatusLive, at(10, 0), at(10, 30), at(11, 0))
		env.store.failIDs[items[1].ID] = true

		result, err := env.live.JumpTo(ctx, items[0].ID)
		pce, ok := AsPartialCommit(err)
		require.True(t, ok)
		assert.Equal(t, []string{items[1].ID}, pce.FailedIDs())
		assert.ErrorIs(t, err, errWriteFailed)

		require.NotNil(t, result)
		assert.Len(t, result.Updates, 2)

		assert.Equal(t, models.ItemStatusInProgress, env.item(t, items[0].ID).Status)
		assert.True(t, env.item(t, items[2].ID).StartTime.Equal(at(11, 15)))
		assert.True(t, env.item(t, items[1].ID).StartTime.Equal(at(10, 30)))

		require.Len(t, env.publisher.timeline, 1)
		assert.Equal(t, []string{items[1].ID}, env.publisher.timeline[0].FailedItemIDs)
		assert.Equal(t, 1.0, env.liveOps(t, "jump", "partial"))
	})

	t.Run("every write failing is an internal error", func(t *testing.T) {
		env := newTestEnv(t)
		_, items := env.seedEvent(t, models.EventStatusLive, at(10, 0))
		env.store.failIDs[items[0].ID] = true

		result, err := env.live.JumpTo(ctx, items[0].ID)
		require.Error(t, err)
		assert.Nil(t, result)
		_, partial := AsPartialCommit(err)
		assert.False(t, partial)
		assert.Empty(t, env.publisher.timeline)
	})

	t.Run("publish failure does not fail the action", func(t *testing.T) {
		env := newTestEnv(t)
		_, items := env.seedEvent(t, models.EventStatusLive, at(10, 0))
		env.publisher.err = errors.New("notify down")

		_, err := env.live.JumpTo(ctx, items[0].ID)
		require.NoError(t, err)
		assert.Equal(t, models.ItemStatusInProgress, env.item(t, items[0].ID).Status)
	})
}

func TestLiveService_CompleteAndSkip(t *testing.T) {
	ctx := context.Background()

	t.Run("complete promotes the next item", func(t *testing.T) {
		env := newTestEnv(t)
		event, items := env.seedEvent(t, models.EventStatusLive, at(10, 0), at(10, 30), at(11, 0))
		_, err := env.live.JumpTo(ctx, items[0].ID)
		require.NoError(t, err)
		env.now = at(10, 40)

		result, err := env.live.CompleteCurrent(ctx, event.ID)
		require.NoError(t, err)
		assert.Len(t, result.Updates, 2)

		assert.Equal(t, models.ItemStatusCompleted, env.item(t, items[0].ID).Status)
		next := env.item(t, items[1].ID)
		assert.Equal(t, models.ItemStatusInProgress, next.Status)
		assert.True(t, next.StartTime.Equal(at(10, 45)), "promotion keeps the scheduled time")
	})

	t.Run("skip", func(t *testing.T) {
		env := newTestEnv(t)
		event, items := env.seedEvent(t, models.EventStatusLive, at(10, 0), at(10, 30))
		_, err := env.live.JumpTo(ctx, items[0].ID)
		require.NoError(t, err)

		_, err = env.live.SkipCurrent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ItemStatusSkipped, env.item(t, items[0].ID).Status)
		assert.Equal(t, models.ItemStatusInProgress, env.item(t, items[1].ID).Status)
	})

	t.Run("no current item is a no-op", func(t *testing.T) {
		env := newTestEnv(t)
		event, _ := env.seedEvent(t, models.EventStatusLive, at(10, 0))

		result, err := env.live.CompleteCurrent(ctx, event.ID)
		require.NoError(t, err)
		assert.Empty(t, result.Updates)
		assert.Empty(t, env.publisher.timeline)
	})

	t.Run("requires a live event", func(t *testing.T) {
		env := newTestEnv(t)
		event, _ := env.seedEvent(t, models.EventStatusScheduled, at(10, 0))
		_, err := env.live.SkipCurrent(ctx, event.ID)
		assert.True(t, IsInvalidTransition(err))
		assert.Equal(t, 1.0, env.liveOps(t, "skip", "failure"))
	})
}

func TestLiveService_SetItemStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("start then complete promotes next", func(t *testing.T) {
		env := newTestEnv(t)
		_, items := env.seedEvent(t, models.EventStatusLive, at(10, 0), at(10, 30))

		_, err := env.live.SetItemStatus(ctx, items[0].ID, models.ItemStatusInProgress)
		require.NoError(t, err)
		assert.True(t, env.item(t, items[0].ID).StartTime.Equal(at(10, 0)), "status changes never re-time")

		result, err := env.live.SetItemStatus(ctx, items[0].ID, models.ItemStatusCompleted)
		require.NoError(t, err)
		assert.Len(t, result.Updates, 2)
		assert.Equal(t, models.ItemStatusInProgress, env.item(t, items[1].ID).Status)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		env := newTestEnv(t)
		_, items := env.seedEvent(t, models.EventStatusLive, at(10, 0))
		result, err := env.live.SetItemStatus(ctx, items[0].ID, models.ItemStatusPending)
		require.NoError(t, err)
		assert.Empty(t, result.Updates)
	})

	t.Run("second in-progress item is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		_, items := env.seedEvent(t, models.EventStatusLive, at(10, 0), at(10, 30))
		_, err := env.live.SetItemStatus(ctx, items[0].ID, models.ItemStatusInProgress)
		require.NoError(t, err)

		_, err = env.live.SetItemStatus(ctx, items[1].ID, models.ItemStatusInProgress)
		assert.True(t, IsInvalidTransition(err))
		assert.Equal(t, models.ItemStatusPending, env.item(t, items[1].ID).Status)
	})

	t.Run("finished items cannot be reopened", func(t *testing.T) {
		env := newTestEnv(t)
		_, items := env.seedEvent(t, models.EventStatusLive, at(10, 0))
		_, err := env.live.SetItemStatus(ctx, items[0].ID, models.ItemStatusSkipped)
		require.NoError(t, err)

		_, err = env.live.SetItemStatus(ctx, items[0].ID, models.ItemStatusPending)
		assert.True(t, IsInvalidTransition(err))
	})

	t.Run("validation", func(t *testing.T) {
		env := newTestEnv(t)
		_, items := env.seedEvent(t, models.EventStatusLive, at(10, 0))
		_, err := env.live.SetItemStatus(ctx, items[0].ID, "done")
		assert.True(t, IsValidationError(err))
		_, err = env.live.SetItemStatus(ctx, "", models.ItemStatusCompleted)
		assert.True(t, IsValidationError(err))
		_, err = env.live.SetItemStatus(ctx, "missing", models.ItemStatusCompleted)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLiveService_Board(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	event, items := env.seedEvent(t, models.EventStatusLive, at(9, 0), at(10, 0), at(11, 0))

	board, err := env.live.Board(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, board.Event.ID)
	require.NotNil(t, board.Current)
	assert.Equal(t, items[1].ID, board.Current.ID, "pending item whose window holds now")
	assert.InDelta(t, 50.0, board.Progress, 0.001)
	require.Len(t, board.Completed, 1)
	assert.Equal(t, items[0].ID, board.Completed[0].ID)
	require.Len(t, board.Upcoming, 1)
	assert.Equal(t, items[2].ID, board.Upcoming[0].ID)

	snapshot, err := env.live.Snapshot(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, board, snapshot)

	_, err = env.live.Board(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLiveService_TransactionalCommit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, items := env.seedEvent(t, models.EventStatusLive, at(10, 0), at(10, 30))

	applier, err := commit.NewApplier(env.store.MemoryStore, commit.Config{Mode: commit.ModeTransactional}, env.metrics)
	require.NoError(t, err)
	svc := NewLiveService(env.store, applier, nil, env.metrics)
	svc.clock = func() time.Time { return env.now }

	result, err := svc.JumpTo(ctx, items[1].ID)
	require.NoError(t, err)
	assert.Len(t, result.Updates, 2)
	assert.Equal(t, models.ItemStatusSkipped, env.item(t, items[0].ID).Status)
}
