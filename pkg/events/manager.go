package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// listenTimeout bounds how long a LISTEN command may block when a channel
// gets its first subscriber.
const listenTimeout = 10 * time.Second

// SnapshotProvider returns the current live board of an event. It is
// consulted when a client subscribes to an event channel, so the client
// renders the board before the first change notification arrives.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, eventID string) (*models.LiveBoard, error)
}

// SnapshotFunc adapts a function to SnapshotProvider.
type SnapshotFunc func(ctx context.Context, eventID string) (*models.LiveBoard, error)

// Snapshot calls f.
func (f SnapshotFunc) Snapshot(ctx context.Context, eventID string) (*models.LiveBoard, error) {
	return f(ctx, eventID)
}

// ConnectionManager tracks the WebSocket clients of this process and the
// channels they follow. With a NotifyListener attached it LISTENs on a
// channel while at least one local client is subscribed to it.
type ConnectionManager struct {
	mu    sync.RWMutex
	conns map[*client]struct{}
	subs  map[string]map[*client]struct{} // channel → subscribers

	listenerMu sync.RWMutex
	listener   *NotifyListener

	snapshots    SnapshotProvider
	writeTimeout time.Duration
}

// client is one WebSocket connection. channels is only touched by the
// goroutine running HandleConnection for it.
type client struct {
	id       string
	conn     *websocket.Conn
	ctx      context.Context
	channels map[string]struct{}
}

// NewConnectionManager creates a manager. snapshots may be nil, in which
// case subscribers receive no initial board.
func NewConnectionManager(snapshots SnapshotProvider, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		conns:        make(map[*client]struct{}),
		subs:         make(map[string]map[*client]struct{}),
		snapshots:    snapshots,
		writeTimeout: writeTimeout,
	}
}

// SetListener attaches the listener used for LISTEN/UNLISTEN.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

func (m *ConnectionManager) notifyListener() *NotifyListener {
	m.listenerMu.RLock()
	defer m.listenerMu.RUnlock()
	return m.listener
}

// HandleConnection serves one accepted WebSocket until it closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &client{
		id:       uuid.NewString(),
		conn:     conn,
		ctx:      ctx,
		channels: make(map[string]struct{}),
	}

	m.mu.Lock()
	m.conns[c] = struct{}{}
	m.mu.Unlock()

	defer func() {
		for channel := range c.channels {
			m.unsubscribe(c, channel)
		}
		m.mu.Lock()
		delete(m.conns, c)
		m.mu.Unlock()
		cancel()
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}()

	m.reply(c, ServerMessage{Type: MessageConnectionEstablished, ConnectionID: c.id})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.id, "error", err)
			continue
		}
		m.dispatch(ctx, c, msg)
	}
}

func (m *ConnectionManager) dispatch(ctx context.Context, c *client, msg ClientMessage) {
	switch msg.Action {
	case ActionPing:
		m.reply(c, ServerMessage{Type: MessagePong})

	case ActionSubscribe, ActionUnsubscribe:
		if msg.Channel == "" {
			m.reply(c, ServerMessage{Type: MessageError, Message: "channel is required for " + msg.Action})
			return
		}
		if msg.Action == ActionUnsubscribe {
			m.unsubscribe(c, msg.Channel)
			return
		}
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.reply(c, ServerMessage{
				Type:    MessageSubscriptionError,
				Channel: msg.Channel,
				Message: "failed to subscribe to channel",
			})
			return
		}
		m.reply(c, ServerMessage{Type: MessageSubscriptionConfirmed, Channel: msg.Channel})
		m.sendSnapshot(ctx, c, msg.Channel)

	default:
		m.reply(c, ServerMessage{Type: MessageError, Message: "unknown action: " + msg.Action})
	}
}

// Broadcast sends a payload to every local subscriber of channel.
func (m *ConnectionManager) Broadcast(channel string, payload []byte) {
	for _, c := range m.subscribers(channel) {
		if err := m.write(c, payload); err != nil {
			slog.Warn("Failed to send to WebSocket client", "connection_id", c.id, "error", err)
		}
	}
}

// subscribers copies the subscriber set so writes happen without the lock.
func (m *ConnectionManager) subscribers(channel string) []*client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set := m.subs[channel]
	out := make([]*client, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

// ActiveConnections returns the number of open WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

func (m *ConnectionManager) subscriberCount(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs[channel])
}

// subscribe adds c to channel. The first subscriber of a channel issues
// LISTEN and waits for it, so the snapshot sent afterwards cannot miss a
// change published in between.
func (m *ConnectionManager) subscribe(c *client, channel string) error {
	m.mu.Lock()
	set, exists := m.subs[channel]
	if !exists {
		set = make(map[*client]struct{})
		m.subs[channel] = set
	}
	set[c] = struct{}{}
	m.mu.Unlock()

	if l := m.notifyListener(); l != nil && !exists {
		ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
		defer cancel()
		if err := l.Subscribe(ctx, channel); err != nil {
			slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
			m.dropChannel(c, channel)
			return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
		}
	}

	c.channels[channel] = struct{}{}
	return nil
}

// dropChannel removes a channel whose LISTEN failed. Clients that joined
// while LISTEN was in flight were already confirmed; they get a
// subscription.error now.
func (m *ConnectionManager) dropChannel(trigger *client, channel string) {
	m.mu.Lock()
	set := m.subs[channel]
	delete(m.subs, channel)
	m.mu.Unlock()

	for c := range set {
		if c == trigger {
			continue
		}
		slog.Warn("Removing subscriber after LISTEN failure", "connection_id", c.id, "channel", channel)
		m.reply(c, ServerMessage{
			Type:    MessageSubscriptionError,
			Channel: channel,
			Message: "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes c from channel and UNLISTENs once nobody is left,
// unless someone subscribed again in the meantime.
func (m *ConnectionManager) unsubscribe(c *client, channel string) {
	delete(c.channels, channel)

	m.mu.Lock()
	set, ok := m.subs[channel]
	if ok {
		delete(set, c)
		if len(set) > 0 {
			ok = false
		} else {
			delete(m.subs, channel)
		}
	}
	m.mu.Unlock()

	l := m.notifyListener()
	if !ok || l == nil {
		return
	}
	go func() {
		if m.subscriberCount(channel) > 0 {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// sendSnapshot delivers the current board of an event channel to a new
// subscriber. Other channels have no snapshot.
func (m *ConnectionManager) sendSnapshot(ctx context.Context, c *client, channel string) {
	eventID, ok := EventIDFromChannel(channel)
	if !ok || m.snapshots == nil {
		return
	}
	board, err := m.snapshots.Snapshot(ctx, eventID)
	if err != nil {
		slog.Warn("Failed to build timeline snapshot",
			"connection_id", c.id, "event_id", eventID, "error", err)
		return
	}
	m.reply(c, TimelineSnapshotPayload{Type: EventTypeTimelineSnapshot, EventID: eventID, Board: board})
}

func (m *ConnectionManager) reply(c *client, v any) {
	data, err := json.Marshal(v)
	if err == nil {
		err = m.write(c, data)
	}
	if err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.id, "error", err)
	}
}

func (m *ConnectionManager) write(c *client, data []byte) error {
	ctx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, data)
}
