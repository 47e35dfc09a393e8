package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/events"
	"github.com/codeready-toolchain/runsheet/pkg/models"
	testdb "github.com/codeready-toolchain/runsheet/test/database"
)

const wsTimeout = 10 * time.Second

func TestE2E_LiveJump(t *testing.T) {
	app := NewTestApp(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now().UTC().Add(-10 * time.Minute).Truncate(time.Second)
	event, items := app.SeedLiveEvent(t, start, 3)

	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.WaitForType("connection.established", wsTimeout)
	require.NoError(t, err)
	require.NoError(t, ws.SubscribeEvent(event.ID))
	_, err = ws.WaitForType("subscription.confirmed", wsTimeout)
	require.NoError(t, err)
	snapshot, err := ws.WaitForType(events.EventTypeTimelineSnapshot, wsTimeout)
	require.NoError(t, err)
	assert.Equal(t, event.ID, snapshot.Parsed["event_id"])

	result, err := app.Client.JumpTo(ctx, items[1].ID)
	require.NoError(t, err)
	assert.Equal(t, models.LiveActionJump, result.Action)
	require.Len(t, result.Updates, 3)

	updated, err := ws.WaitForLiveAction(string(models.LiveActionJump), wsTimeout)
	require.NoError(t, err)
	assert.Equal(t, event.ID, updated.Parsed["event_id"])
	assert.Equal(t, items[1].ID, updated.Parsed["item_id"])
	assert.Len(t, updated.Parsed["updates"], 3)

	board, err := app.Client.Board(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, board.Current)
	assert.Equal(t, items[1].ID, board.Current.ID)
	require.Len(t, board.Completed, 1)
	assert.Equal(t, models.ItemStatusSkipped, board.Completed[0].Status)
	assert.Len(t, board.Upcoming, 1)
}

func TestE2E_CompleteAndSkip(t *testing.T) {
	for _, mode := range []commit.Mode{commit.ModeBestEffort, commit.ModeTransactional} {
		t.Run(string(mode), func(t *testing.T) {
			app := NewTestApp(t, WithCommitMode(mode))
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			start := time.Now().UTC().Add(-5 * time.Minute).Truncate(time.Second)
			event, items := app.SeedLiveEvent(t, start, 3)

			_, err := app.Client.JumpTo(ctx, items[0].ID)
			require.NoError(t, err)

			_, err = app.Client.CompleteCurrent(ctx, event.ID)
			require.NoError(t, err)

			board, err := app.Client.Board(ctx, event.ID)
			require.NoError(t, err)
			require.NotNil(t, board.Current)
			assert.Equal(t, items[1].ID, board.Current.ID)

			_, err = app.Client.SkipCurrent(ctx, event.ID)
			require.NoError(t, err)

			stored, err := app.Client.ListItems(ctx, event.ID)
			require.NoError(t, err)
			require.Len(t, stored, 3)
			assert.Equal(t, models.ItemStatusCompleted, stored[0].Status)
			assert.Equal(t, models.ItemStatusSkipped, stored[1].Status)
			assert.Equal(t, models.ItemStatusInProgress, stored[2].Status)
		})
	}
}

// Two instances share one schema. A client connected to the second one
// receives the live update committed through the first, delivered by
// PostgreSQL NOTIFY/LISTEN.
func TestE2E_MultiReplica(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	writer := NewTestApp(t, WithSharedDB(t, shared))
	reader := NewTestApp(t, WithSharedDB(t, shared))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now().UTC().Add(-10 * time.Minute).Truncate(time.Second)
	event, items := writer.SeedLiveEvent(t, start, 2)

	ws, err := WSConnect(ctx, reader.WSURL)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.SubscribeEvent(event.ID))
	snapshot, err := ws.WaitForType(events.EventTypeTimelineSnapshot, wsTimeout)
	require.NoError(t, err)
	assert.Equal(t, event.ID, snapshot.Parsed["event_id"], "snapshot is served from the shared store")

	_, err = writer.Client.JumpTo(ctx, items[1].ID)
	require.NoError(t, err)

	updated, err := ws.WaitForLiveAction(string(models.LiveActionJump), wsTimeout)
	require.NoError(t, err)
	assert.Equal(t, items[1].ID, updated.Parsed["item_id"])

	board, err := reader.Client.Board(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, board.Current)
	assert.Equal(t, items[1].ID, board.Current.ID)
}
