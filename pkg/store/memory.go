package store

import (
	"context"
	"sync"
	"time"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// MemoryStore keeps events and items in process memory.
// Values are copied on the way in and out.
type MemoryStore struct {
	mu     sync.RWMutex
	events map[string]*models.Event
	items  map[string]*models.TimelineItem
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events: make(map[string]*models.Event),
		items:  make(map[string]*models.TimelineItem),
	}
}

func (s *MemoryStore) CreateEvent(_ context.Context, e *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = e.Clone()
	return nil
}

func (s *MemoryStore) GetEvent(_ context.Context, id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e.Clone(), nil
}

func (s *MemoryStore) ListEvents(_ context.Context, filters models.EventFilters) ([]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Event, 0, len(s.events))
	for _, e := range s.events {
		if filters.Status != "" && e.Status != filters.Status {
			continue
		}
		out = append(out, e.Clone())
	}
	sortEvents(out)
	return out, nil
}

func (s *MemoryStore) UpdateEvent(_ context.Context, e *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[e.ID]; !ok {
		return ErrNotFound
	}
	s.events[e.ID] = e.Clone()
	return nil
}

func (s *MemoryStore) SetEventStatus(_ context.Context, id string, status models.EventStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return ErrNotFound
	}
	e.Status = status
	e.UpdatedAt = updatedAt
	return nil
}

func (s *MemoryStore) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return ErrNotFound
	}
	delete(s.events, id)
	for itemID, item := range s.items {
		if item.EventID == id {
			delete(s.items, itemID)
		}
	}
	return nil
}

func (s *MemoryStore) CreateItem(_ context.Context, item *models.TimelineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[item.EventID]; !ok {
		return ErrNotFound
	}
	s.items[item.ID] = item.Clone()
	return nil
}

func (s *MemoryStore) GetItem(_ context.Context, id string) (*models.TimelineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return item.Clone(), nil
}

func (s *MemoryStore) ListItems(_ context.Context, eventID string) ([]*models.TimelineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.TimelineItem, 0)
	for _, item := range s.items {
		if item.EventID == eventID {
			out = append(out, item.Clone())
		}
	}
	sortItems(out)
	return out, nil
}

func (s *MemoryStore) UpdateItem(_ context.Context, item *models.TimelineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ID]; !ok {
		return ErrNotFound
	}
	s.items[item.ID] = item.Clone()
	return nil
}

func (s *MemoryStore) DeleteItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *MemoryStore) ApplyItemUpdate(ctx context.Context, u models.ItemUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[u.ID]
	if !ok {
		return ErrNotFound
	}
	item.Apply(u)
	return nil
}

// ApplyItemUpdates writes all updates or none.
func (s *MemoryStore) ApplyItemUpdates(ctx context.Context, updates []models.ItemUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range updates {
		if _, ok := s.items[u.ID]; !ok {
			return ErrNotFound
		}
	}
	for _, u := range updates {
		s.items[u.ID].Apply(u)
	}
	return nil
}

func (s *MemoryStore) SetItemOrder(_ context.Context, itemID string, orderIndex int, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[itemID]
	if !ok {
		return ErrNotFound
	}
	item.OrderIndex = orderIndex
	item.UpdatedAt = updatedAt
	return nil
}

func (s *MemoryStore) NextOrderIndex(_ context.Context, eventID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	next := 0
	for _, item := range s.items {
		if item.EventID == eventID && item.OrderIndex >= next {
			next = item.OrderIndex + 1
		}
	}
	return next, nil
}

func (s *MemoryStore) Close() error { return nil }
