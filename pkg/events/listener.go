package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	// notifyPollInterval is how long one WaitForNotification call may block
	// before the loop runs queued LISTEN/UNLISTEN statements.
	notifyPollInterval = 100 * time.Millisecond
	maxReconnectDelay  = 30 * time.Second
)

var errListenerStopped = errors.New("LISTEN connection not established")

// statement is a LISTEN or UNLISTEN queued for the receive loop, which is
// the only goroutine allowed to use the pgx connection.
type statement struct {
	sql  string
	done chan error
}

// NotifyListener owns a dedicated PostgreSQL connection, LISTENs on the
// channels that have local subscribers and passes every notification to a
// Broadcaster. Instances sharing one database thereby see each other's
// pg_notify calls.
type NotifyListener struct {
	connString  string
	broadcaster Broadcaster

	mu       sync.Mutex
	conn     *pgx.Conn
	channels map[string]struct{}

	queue   chan statement
	running atomic.Bool
	stop    context.CancelFunc
	stopped chan struct{}
}

// NewNotifyListener creates a listener that delivers to b.
func NewNotifyListener(connString string, b Broadcaster) *NotifyListener {
	return &NotifyListener{
		connString:  connString,
		broadcaster: b,
		channels:    make(map[string]struct{}),
		queue:       make(chan statement, 16),
	}
}

// Start connects and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	l.stop = cancel
	l.stopped = make(chan struct{})
	l.running.Store(true)
	go func() {
		defer close(l.stopped)
		l.loop(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe issues LISTEN for channel unless it is already active.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	return l.toggle(ctx, channel, true)
}

// Unsubscribe issues UNLISTEN for channel.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	return l.toggle(ctx, channel, false)
}

func (l *NotifyListener) toggle(ctx context.Context, channel string, listen bool) error {
	if l.isListening(channel) == listen {
		return nil
	}
	if !l.running.Load() {
		if listen {
			return errListenerStopped
		}
		return nil
	}

	verb := "UNLISTEN"
	if listen {
		verb = "LISTEN"
	}
	if err := l.exec(ctx, verb+" "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("%s %q failed: %w", verb, channel, err)
	}

	l.mu.Lock()
	if listen {
		l.channels[channel] = struct{}{}
	} else {
		delete(l.channels, channel)
	}
	l.mu.Unlock()
	slog.Debug("NOTIFY channel updated", "channel", channel, "listen", listen)
	return nil
}

func (l *NotifyListener) isListening(channel string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.channels[channel]
	return ok
}

// exec hands sql to the receive loop and waits for the outcome.
func (l *NotifyListener) exec(ctx context.Context, sql string) error {
	st := statement{sql: sql, done: make(chan error, 1)}
	select {
	case l.queue <- st:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-st.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *NotifyListener) loop(ctx context.Context) {
	l.mu.Lock()
	conn := l.conn
	l.mu.Unlock()

	for ctx.Err() == nil {
		if conn == nil {
			conn = l.reconnect(ctx)
			continue
		}
		l.drainQueue(ctx, conn)

		waitCtx, cancel := context.WithTimeout(ctx, notifyPollInterval)
		n, err := conn.WaitForNotification(waitCtx)
		cancel()
		switch {
		case err == nil:
			l.broadcaster.Broadcast(n.Channel, []byte(n.Payload))
		case ctx.Err() != nil:
			return
		case waitCtx.Err() != nil:
			// Poll interval elapsed.
		default:
			slog.Error("NOTIFY receive error", "error", err)
			conn = nil
		}
	}
}

func (l *NotifyListener) drainQueue(ctx context.Context, conn *pgx.Conn) {
	for {
		select {
		case st := <-l.queue:
			_, err := conn.Exec(ctx, st.sql)
			st.done <- err
		default:
			return
		}
	}
}

// reconnect replaces the connection with exponential backoff and re-issues
// LISTEN for every active channel. It returns nil only when ctx ends.
func (l *NotifyListener) reconnect(ctx context.Context) *pgx.Conn {
	l.mu.Lock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
	l.mu.Unlock()

	for delay := time.Second; ; delay = min(delay*2, maxReconnectDelay) {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "retry_in", delay)
			continue
		}

		l.mu.Lock()
		l.conn = conn
		for ch := range l.channels {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}
		l.mu.Unlock()

		slog.Info("NotifyListener reconnected")
		return conn
	}
}

// Stop ends the receive loop, then closes the connection, so
// WaitForNotification never races with Close.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)
	if l.stop != nil {
		l.stop()
		<-l.stopped
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
