package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

func boardSnapshots(boards map[string]*models.LiveBoard) SnapshotFunc {
	return func(_ context.Context, eventID string) (*models.LiveBoard, error) {
		b, ok := boards[eventID]
		if !ok {
			return nil, errors.New("not found")
		}
		return b, nil
	}
}

func setupTestManager(t *testing.T, snapshots SnapshotProvider) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(snapshots, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(server.Close)
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+server.URL[len("http"):], nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	msg := readJSON(t, conn)
	require.Equal(t, "connection.established", msg["type"])
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func send(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_SubscribeSendsSnapshot(t *testing.T) {
	board := &models.LiveBoard{
		Event:   &models.Event{ID: "evt-1", Name: "Gala", Status: models.EventStatusLive},
		Current: &models.TimelineItem{ID: "item-2", EventID: "evt-1", Title: "Dinner"},
	}
	manager, server := setupTestManager(t, boardSnapshots(map[string]*models.LiveBoard{"evt-1": board}))
	conn := connectWS(t, server)

	send(t, conn, ClientMessage{Action: "subscribe", Channel: EventChannel("evt-1")})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "event:evt-1", msg["channel"])

	msg = readJSON(t, conn)
	assert.Equal(t, EventTypeTimelineSnapshot, msg["type"])
	assert.Equal(t, "evt-1", msg["event_id"])
	current := msg["board"].(map[string]any)["current"].(map[string]any)
	assert.Equal(t, "item-2", current["id"])

	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, manager.subscriberCount("event:evt-1"))
}

func TestConnectionManager_NoSnapshotForGlobalChannel(t *testing.T) {
	_, server := setupTestManager(t, boardSnapshots(nil))
	conn := connectWS(t, server)

	send(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalEventsChannel})
	assert.Equal(t, "subscription.confirmed", readJSON(t, conn)["type"])

	// The next message is the pong, so no snapshot was queued in between.
	send(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readJSON(t, conn)["type"])
}

func TestConnectionManager_SnapshotErrorIsSkipped(t *testing.T) {
	_, server := setupTestManager(t, boardSnapshots(nil))
	conn := connectWS(t, server)

	send(t, conn, ClientMessage{Action: "subscribe", Channel: EventChannel("missing")})
	assert.Equal(t, "subscription.confirmed", readJSON(t, conn)["type"])

	send(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readJSON(t, conn)["type"])
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t, nil)
	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	other := connectWS(t, server)

	channel := EventChannel("broadcast-test")
	send(t, conn1, ClientMessage{Action: "subscribe", Channel: channel})
	send(t, conn2, ClientMessage{Action: "subscribe", Channel: channel})
	send(t, other, ClientMessage{Action: "subscribe", Channel: EventChannel("elsewhere")})
	readJSON(t, conn1)
	readJSON(t, conn2)
	readJSON(t, other)

	payload, err := json.Marshal(ItemsChangedPayload{
		Type: EventTypeItemsChanged, EventID: "broadcast-test", ItemID: "i1", Change: ItemChangeCreated,
	})
	require.NoError(t, err)
	manager.Broadcast(channel, payload)

	for _, c := range []*websocket.Conn{conn1, conn2} {
		msg := readJSON(t, c)
		assert.Equal(t, EventTypeItemsChanged, msg["type"])
		assert.Equal(t, "i1", msg["item_id"])
	}

	send(t, other, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readJSON(t, other)["type"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t, nil)
	conn := connectWS(t, server)

	channel := EventChannel("unsub")
	send(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)
	require.Equal(t, 1, manager.subscriberCount(channel))

	send(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0
	}, 5*time.Second, 10*time.Millisecond)

	manager.Broadcast(channel, []byte(`{"type":"items.changed"}`))
	send(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readJSON(t, conn)["type"])
}

func TestConnectionManager_DisconnectCleansUp(t *testing.T) {
	manager, server := setupTestManager(t, nil)
	conn := connectWS(t, server)

	channel := EventChannel("gone")
	send(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0 && manager.subscriberCount(channel) == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestConnectionManager_InvalidMessages(t *testing.T) {
	_, server := setupTestManager(t, nil)
	conn := connectWS(t, server)

	send(t, conn, ClientMessage{Action: "subscribe"})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	send(t, conn, ClientMessage{Action: "catchup", Channel: "x"})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "unknown action")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("not json")))
	send(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readJSON(t, conn)["type"])
}

func TestConnectionManager_ListenFailureRejectsSubscription(t *testing.T) {
	manager, server := setupTestManager(t, nil)
	// Never started, so every LISTEN fails.
	manager.SetListener(NewNotifyListener("host=localhost dbname=test", manager))
	conn := connectWS(t, server)

	channel := EventChannel("no-listen")
	send(t, conn, ClientMessage{Action: "subscribe", Channel: channel})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.error", msg["type"])
	assert.Equal(t, channel, msg["channel"])
	assert.Equal(t, 0, manager.subscriberCount(channel))
}
