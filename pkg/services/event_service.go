// Package services implements the event, timeline and live operations on
// top of a store, publishing change notifications as they commit.
package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/runsheet/pkg/events"
	"github.com/codeready-toolchain/runsheet/pkg/live"
	"github.com/codeready-toolchain/runsheet/pkg/metrics"
	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

// EventService manages events and their live status
type EventService struct {
	store     store.Store
	publisher events.Publisher
	metrics   *metrics.Metrics
	clock     func() time.Time
}

// NewEventService creates a new EventService. A nil publisher disables notifications.
func NewEventService(st store.Store, pub events.Publisher, m *metrics.Metrics) *EventService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &EventService{store: st, publisher: pub, metrics: m, clock: now}
}

// CreateEvent creates a draft event
func (s *EventService) CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	ts := s.clock()
	event := &models.Event{
		ID:          uuid.New().String(),
		Name:        name,
		Date:        date,
		Location:    req.Location,
		Description: req.Description,
		Status:      models.EventStatusDraft,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, translate(err, "create event")
	}
	return event, nil
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	if id == "" {
		return nil, NewValidationError("id", "required")
	}
	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return nil, translate(err, "get event")
	}
	return event, nil
}

// ListEvents lists events by date, optionally filtered by status
func (s *EventService) ListEvents(ctx context.Context, filters models.EventFilters) ([]*models.Event, error) {
	if filters.Status != "" && !filters.Status.Valid() {
		return nil, NewValidationError("status", "unknown event status")
	}
	list, err := s.store.ListEvents(ctx, filters)
	if err != nil {
		return nil, translate(err, "list events")
	}
	return list, nil
}

// UpdateEvent edits the descriptive fields of an event
func (s *EventService) UpdateEvent(ctx context.Context, id string, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		event.Name = name
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.Location != nil {
		event.Location = req.Location
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	event.UpdatedAt = s.clock()

	if err := s.store.UpdateEvent(ctx, event); err != nil {
		return nil, translate(err, "update event")
	}
	return event, nil
}

// DeleteEvent removes an event and all of its timeline items
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return NewValidationError("id", "required")
	}
	if err := s.store.DeleteEvent(ctx, id); err != nil {
		return translate(err, "delete event")
	}
	return nil
}

// SetEventStatus moves an event to target through the live state machine.
// Requesting the current status of a paused, live or completed event is a no-op.
func (s *EventService) SetEventStatus(ctx context.Context, id string, target models.EventStatus) (*models.Event, error) {
	if !target.Valid() {
		return nil, NewValidationError("status", "unknown event status")
	}
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := transition(event.Status, target)
	if err != nil {
		s.metrics.ObserveEventTransition(string(target), metrics.ResultFailure)
		return nil, err
	}
	if next == event.Status {
		return event, nil
	}

	previous := event.Status
	ts := s.clock()
	if err := s.store.SetEventStatus(ctx, id, next, ts); err != nil {
		s.metrics.ObserveEventTransition(string(target), metrics.ResultFailure)
		return nil, translate(err, "set event status")
	}
	event.Status = next
	event.UpdatedAt = ts
	s.metrics.ObserveEventTransition(string(target), metrics.ResultSuccess)

	slog.Info("Event status changed",
		"event_id", id, "from", previous, "to", next)

	if err := s.publisher.PublishEventStatus(ctx, events.EventStatusPayload{
		Type:      events.EventTypeEventStatus,
		EventID:   id,
		Status:    next,
		Previous:  previous,
		Timestamp: timestamp(ts),
	}); err != nil {
		slog.Warn("Failed to publish event status", "event_id", id, "error", err)
	}
	return event, nil
}

func transition(current, target models.EventStatus) (models.EventStatus, error) {
	action, err := live.ActionFor(current, target)
	if err != nil {
		return current, err
	}
	return live.Transition(current, action)
}

func parseDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, NewValidationError("date", "required")
	}
	date, err := time.ParseInLocation(models.DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, NewValidationError("date", "must use YYYY-MM-DD")
	}
	return date, nil
}
