package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/models"
	testdb "github.com/codeready-toolchain/runsheet/test/database"
	"github.com/codeready-toolchain/runsheet/test/util"
)

type recordingBroadcaster struct {
	mu   sync.Mutex
	sent map[string][][]byte
}

func (r *recordingBroadcaster) Broadcast(channel string, event []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sent == nil {
		r.sent = make(map[string][][]byte)
	}
	r.sent[channel] = append(r.sent[channel], event)
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("small payload passes through", func(t *testing.T) {
		payload, err := json.Marshal(ItemsChangedPayload{
			Type: EventTypeItemsChanged, EventID: "evt-1", Change: ItemChangeReordered,
		})
		require.NoError(t, err)

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Equal(t, string(payload), result)
	})

	t.Run("oversized payload keeps routing fields", func(t *testing.T) {
		updates := make([]models.ItemUpdate, 200)
		for i := range updates {
			updates[i] = models.ItemUpdate{ID: uuid.New().String(), Status: models.ItemStatusCompleted}
		}
		payload, err := json.Marshal(TimelineUpdatedPayload{
			Type: EventTypeTimelineUpdated, EventID: "evt-1", Action: models.LiveActionJump, Updates: updates,
		})
		require.NoError(t, err)
		require.Greater(t, len(payload), maxNotifyPayload)

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Less(t, len(result), maxNotifyPayload)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &got))
		assert.Equal(t, EventTypeTimelineUpdated, got["type"])
		assert.Equal(t, "evt-1", got["event_id"])
		assert.Equal(t, "jump", got["action"])
		assert.Equal(t, true, got["truncated"])
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := truncateIfNeeded(strings.Repeat("x", maxNotifyPayload+1))
		assert.Error(t, err)
	})
}

func TestLocalPublisher(t *testing.T) {
	ctx := context.Background()
	b := &recordingBroadcaster{}
	p := NewLocalPublisher(b)

	require.NoError(t, p.PublishTimelineUpdated(ctx, TimelineUpdatedPayload{
		Type: EventTypeTimelineUpdated, EventID: "evt-1", Action: models.LiveActionSkip,
	}))
	require.NoError(t, p.PublishItemsChanged(ctx, ItemsChangedPayload{
		Type: EventTypeItemsChanged, EventID: "evt-1", ItemID: "i1", Change: ItemChangeDeleted,
	}))
	require.NoError(t, p.PublishEventStatus(ctx, EventStatusPayload{
		Type: EventTypeEventStatus, EventID: "evt-1", Status: models.EventStatusLive, Previous: models.EventStatusScheduled,
	}))

	assert.Len(t, b.sent["event:evt-1"], 3)
	require.Len(t, b.sent[GlobalEventsChannel], 1)

	var status EventStatusPayload
	require.NoError(t, json.Unmarshal(b.sent[GlobalEventsChannel][0], &status))
	assert.Equal(t, models.EventStatusLive, status.Status)
	assert.Equal(t, models.EventStatusScheduled, status.Previous)

	assert.Error(t, NewLocalPublisher(nil).PublishItemsChanged(ctx, ItemsChangedPayload{}))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.PublishTimelineUpdated(context.Background(), TimelineUpdatedPayload{}))
	assert.NoError(t, p.PublishItemsChanged(context.Background(), ItemsChangedPayload{}))
	assert.NoError(t, p.PublishEventStatus(context.Background(), EventStatusPayload{}))
}

// TestEventPublisher_DeliversThroughListen wires a real PostgreSQL NOTIFY
// path: publisher → pg_notify → NotifyListener → ConnectionManager → client.
func TestEventPublisher_DeliversThroughListen(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	manager := NewConnectionManager(nil, 5*time.Second)
	// LISTEN is database-wide, so the listener skips the test schema.
	listener := NewNotifyListener(util.GetBaseConnectionString(t), manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)

	eventID := uuid.New().String()
	eventConn := connectWS(t, server)
	globalConn := connectWS(t, server)
	send(t, eventConn, ClientMessage{Action: "subscribe", Channel: EventChannel(eventID)})
	send(t, globalConn, ClientMessage{Action: "subscribe", Channel: GlobalEventsChannel})
	require.Equal(t, "subscription.confirmed", readJSON(t, eventConn)["type"])
	require.Equal(t, "subscription.confirmed", readJSON(t, globalConn)["type"])

	publisher := NewEventPublisher(client.DB())
	require.NoError(t, publisher.PublishTimelineUpdated(ctx, TimelineUpdatedPayload{
		Type:    EventTypeTimelineUpdated,
		EventID: eventID,
		Action:  models.LiveActionComplete,
		Updates: []models.ItemUpdate{{ID: "a", Status: models.ItemStatusCompleted}},
	}))

	msg := readJSON(t, eventConn)
	assert.Equal(t, EventTypeTimelineUpdated, msg["type"])
	assert.Equal(t, "complete", msg["action"])

	require.NoError(t, publisher.PublishEventStatus(ctx, EventStatusPayload{
		Type: EventTypeEventStatus, EventID: eventID, Status: models.EventStatusPaused, Previous: models.EventStatusLive,
	}))
	assert.Equal(t, "paused", readJSON(t, eventConn)["status"])

	global := readJSON(t, globalConn)
	assert.Equal(t, EventTypeEventStatus, global["type"])
	assert.Equal(t, eventID, global["event_id"])
}
