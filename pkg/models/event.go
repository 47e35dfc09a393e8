package models

import "time"

// EventStatus is the lifecycle status of an event.
type EventStatus string

// Event statuses.
const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusLive      EventStatus = "live"
	EventStatusPaused    EventStatus = "paused"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// EventStatuses lists every valid event status.
var EventStatuses = []EventStatus{
	EventStatusDraft,
	EventStatusScheduled,
	EventStatusLive,
	EventStatusPaused,
	EventStatusCompleted,
	EventStatusCancelled,
}

// Valid reports whether s is a known event status.
func (s EventStatus) Valid() bool {
	for _, v := range EventStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// DateLayout is the wire format of Event.Date.
const DateLayout = "2006-01-02"

// Event is a single occasion whose run of show is described by timeline items.
type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Date        time.Time   `json:"date"`
	Location    *string     `json:"location,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CreateEventRequest contains fields for creating an event.
// Date uses DateLayout.
type CreateEventRequest struct {
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateEventRequest contains the editable event fields. Nil fields are left unchanged.
type UpdateEventRequest struct {
	Name        *string `json:"name,omitempty"`
	Date        *string `json:"date,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// EventFilters contains filtering options for listing events.
type EventFilters struct {
	Status EventStatus `json:"status,omitempty"`
}

// EventStatusRequest is the body of PATCH /api/v1/events/:id/status.
type EventStatusRequest struct {
	Status EventStatus `json:"status"`
}

// Clone returns a deep copy of the event.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	if e.Location != nil {
		l := *e.Location
		c.Location = &l
	}
	if e.Description != nil {
		d := *e.Description
		c.Description = &d
	}
	return &c
}
