package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// maxNotifyPayload keeps NOTIFY payloads under PostgreSQL's 8000-byte limit.
const maxNotifyPayload = 7900

// Publisher delivers change notifications. Publishing is best-effort:
// callers log failures and never roll back a committed change because of one.
type Publisher interface {
	PublishTimelineUpdated(ctx context.Context, payload TimelineUpdatedPayload) error
	PublishItemsChanged(ctx context.Context, payload ItemsChangedPayload) error
	PublishEventStatus(ctx context.Context, payload EventStatusPayload) error
}

// Broadcaster fans a raw payload out to the subscribers of a channel.
// Implemented by ConnectionManager.
type Broadcaster interface {
	Broadcast(channel string, event []byte)
}

// EventPublisher publishes notifications through pg_notify so every server
// instance listening on the channel receives them.
type EventPublisher struct {
	db *sql.DB
}

var _ Publisher = (*EventPublisher)(nil)

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishTimelineUpdated broadcasts a timeline.updated notification.
func (p *EventPublisher) PublishTimelineUpdated(ctx context.Context, payload TimelineUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TimelineUpdatedPayload: %w", err)
	}
	return p.notify(ctx, EventChannel(payload.EventID), payloadJSON)
}

// PublishItemsChanged broadcasts an items.changed notification.
func (p *EventPublisher) PublishItemsChanged(ctx context.Context, payload ItemsChangedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ItemsChangedPayload: %w", err)
	}
	return p.notify(ctx, EventChannel(payload.EventID), payloadJSON)
}

// PublishEventStatus broadcasts an event.status notification to the event
// channel and to the global events channel. The global publish is attempted
// even if the first one fails; the first error is returned.
func (p *EventPublisher) PublishEventStatus(ctx context.Context, payload EventStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal EventStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.notify(ctx, EventChannel(payload.EventID), payloadJSON); err != nil {
		slog.Warn("Failed to publish event status to event channel",
			"event_id", payload.EventID, "status", payload.Status, "error", err)
		firstErr = err
	}
	if err := p.notify(ctx, GlobalEventsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish event status to global channel",
			"event_id", payload.EventID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (p *EventPublisher) notify(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// LocalPublisher delivers notifications straight to this process's
// subscribers. Used with the memory and disk stores, where no NOTIFY
// transport exists.
type LocalPublisher struct {
	broadcaster Broadcaster
}

var _ Publisher = (*LocalPublisher)(nil)

// NewLocalPublisher creates a publisher that broadcasts in-process.
func NewLocalPublisher(b Broadcaster) *LocalPublisher {
	return &LocalPublisher{broadcaster: b}
}

// PublishTimelineUpdated broadcasts a timeline.updated notification.
func (p *LocalPublisher) PublishTimelineUpdated(_ context.Context, payload TimelineUpdatedPayload) error {
	return p.broadcast(payload, EventChannel(payload.EventID))
}

// PublishItemsChanged broadcasts an items.changed notification.
func (p *LocalPublisher) PublishItemsChanged(_ context.Context, payload ItemsChangedPayload) error {
	return p.broadcast(payload, EventChannel(payload.EventID))
}

// PublishEventStatus broadcasts to the event channel and the global channel.
func (p *LocalPublisher) PublishEventStatus(_ context.Context, payload EventStatusPayload) error {
	return p.broadcast(payload, EventChannel(payload.EventID), GlobalEventsChannel)
}

func (p *LocalPublisher) broadcast(payload any, channels ...string) error {
	if p.broadcaster == nil {
		return errors.New("local publisher has no broadcaster")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", payload, err)
	}
	for _, ch := range channels {
		p.broadcaster.Broadcast(ch, data)
	}
	return nil
}

// NopPublisher discards every notification.
type NopPublisher struct{}

var _ Publisher = NopPublisher{}

func (NopPublisher) PublishTimelineUpdated(context.Context, TimelineUpdatedPayload) error {
	return nil
}

func (NopPublisher) PublishItemsChanged(context.Context, ItemsChangedPayload) error { return nil }

func (NopPublisher) PublishEventStatus(context.Context, EventStatusPayload) error { return nil }

// truncateIfNeeded returns the payload as-is if it fits the NOTIFY limit,
// otherwise a minimal envelope telling clients to refetch over REST.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= maxNotifyPayload {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type    string `json:"type"`
		EventID string `json:"event_id"`
		Action  string `json:"action,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"event_id":  routing.EventID,
		"truncated": true,
	}
	if routing.Action != "" {
		truncated["action"] = routing.Action
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
