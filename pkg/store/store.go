// Package store persists events and their timeline items.
//
// Three implementations share the Store contract: PostgreSQL for production,
// an in-memory store for tests and single-process demos, and a diskv-backed
// file store for running without a database.
package store

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// ErrNotFound is returned when the requested event or item does not exist.
var ErrNotFound = errors.New("not found")

// Store is the persistent store of events and timeline items.
//
// ListItems returns items in canonical order: order_index ascending, ties
// broken by created_at then id. ApplyItemUpdate writes a single row and is
// safe to call concurrently for distinct items.
type Store interface {
	CreateEvent(ctx context.Context, e *models.Event) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, filters models.EventFilters) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, e *models.Event) error
	SetEventStatus(ctx context.Context, id string, status models.EventStatus, updatedAt time.Time) error
	DeleteEvent(ctx context.Context, id string) error

	CreateItem(ctx context.Context, item *models.TimelineItem) error
	GetItem(ctx context.Context, id string) (*models.TimelineItem, error)
	ListItems(ctx context.Context, eventID string) ([]*models.TimelineItem, error)
	UpdateItem(ctx context.Context, item *models.TimelineItem) error
	DeleteItem(ctx context.Context, id string) error
	ApplyItemUpdate(ctx context.Context, u models.ItemUpdate) error
	SetItemOrder(ctx context.Context, itemID string, orderIndex int, updatedAt time.Time) error
	NextOrderIndex(ctx context.Context, eventID string) (int, error)

	Close() error
}

// Driver names a Store implementation.
type Driver string

// Store drivers.
const (
	DriverPostgres Driver = "postgres"
	DriverMemory   Driver = "memory"
	DriverDisk     Driver = "disk"
)

// sortEvents orders events by date, then creation time, then id.
func sortEvents(events []*models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// sortItems orders items canonically.
func sortItems(items []*models.TimelineItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.OrderIndex != b.OrderIndex {
			return a.OrderIndex < b.OrderIndex
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
