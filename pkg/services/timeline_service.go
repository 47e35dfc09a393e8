package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/runsheet/pkg/events"
	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

// TimelineService manages the timeline items of an event
type TimelineService struct {
	store     store.Store
	publisher events.Publisher
	clock     func() time.Time
}

// NewTimelineService creates a new TimelineService. A nil publisher disables notifications.
func NewTimelineService(st store.Store, pub events.Publisher) *TimelineService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &TimelineService{store: st, publisher: pub, clock: now}
}

// CreateItem appends a pending item to an event's timeline
func (s *TimelineService) CreateItem(ctx context.Context, eventID string, req models.CreateTimelineItemRequest) (*models.TimelineItem, error) {
	if eventID == "" {
		return nil, NewValidationError("event_id", "required")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.StartTime.IsZero() {
		return nil, NewValidationError("start_time", "required")
	}
	category := req.Category
	if category == "" {
		category = models.CategoryGeneral
	}
	if !category.Valid() {
		return nil, NewValidationError("category", "unknown category")
	}
	start, end := normalizeWindow(req.StartTime, req.EndTime)
	if err := validateWindow(start, end); err != nil {
		return nil, err
	}

	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, translate(err, "get event")
	}
	orderIndex, err := s.store.NextOrderIndex(ctx, eventID)
	if err != nil {
		return nil, translate(err, "allocate order index")
	}

	ts := s.clock()
	item := &models.TimelineItem{
		ID:          uuid.New().String(),
		EventID:     eventID,
		Title:       title,
		Description: req.Description,
		Category:    category,
		StartTime:   start,
		EndTime:     end,
		Status:      models.ItemStatusPending,
		OrderIndex:  orderIndex,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, translate(err, "create timeline item")
	}

	s.publishChange(ctx, eventID, item.ID, events.ItemChangeCreated, ts)
	return item, nil
}

// GetItem retrieves a timeline item by ID
func (s *TimelineService) GetItem(ctx context.Context, id string) (*models.TimelineItem, error) {
	if id == "" {
		return nil, NewValidationError("id", "required")
	}
	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return nil, translate(err, "get timeline item")
	}
	return item, nil
}

// ListItems returns an event's items in canonical order
func (s *TimelineService) ListItems(ctx context.Context, eventID string) ([]*models.TimelineItem, error) {
	if eventID == "" {
		return nil, NewValidationError("event_id", "required")
	}
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, translate(err, "get event")
	}
	items, err := s.store.ListItems(ctx, eventID)
	if err != nil {
		return nil, translate(err, "list timeline items")
	}
	return items, nil
}

// UpdateItem edits an item's descriptive fields and planned window.
// Status is changed only through live actions.
func (s *TimelineService) UpdateItem(ctx context.Context, id string, req models.UpdateTimelineItemRequest) (*models.TimelineItem, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, NewValidationError("title", "must not be empty")
		}
		item.Title = title
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, NewValidationError("category", "unknown category")
		}
		item.Category = *req.Category
	}
	start := item.StartTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	end := item.EndTime
	if req.EndTime != nil {
		end = req.EndTime
	}
	if req.ClearEndTime {
		end = nil
	}
	item.StartTime, item.EndTime = normalizeWindow(start, end)
	if err := validateWindow(item.StartTime, item.EndTime); err != nil {
		return nil, err
	}
	item.UpdatedAt = s.clock()

	if err := s.store.UpdateItem(ctx, item); err != nil {
		return nil, translate(err, "update timeline item")
	}

	s.publishChange(ctx, item.EventID, item.ID, events.ItemChangeUpdated, item.UpdatedAt)
	return item, nil
}

// DeleteItem removes a timeline item
func (s *TimelineService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return translate(err, "delete timeline item")
	}
	s.publishChange(ctx, item.EventID, id, events.ItemChangeDeleted, s.clock())
	return nil
}

// ReorderItems rewrites the canonical order of an event's items. Listed
// items take positions 0..n-1 in list order; unlisted items follow in their
// previous order. Each row is written independently.
func (s *TimelineService) ReorderItems(ctx context.Context, eventID string, itemIDs []string) ([]*models.TimelineItem, error) {
	if len(itemIDs) == 0 {
		return nil, NewValidationError("item_ids", "required")
	}
	items, err := s.ListItems(ctx, eventID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.TimelineItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	seen := make(map[string]bool, len(itemIDs))
	ordered := make([]*models.TimelineItem, 0, len(items))
	for _, id := range itemIDs {
		item, ok := byID[id]
		if !ok {
			return nil, NewValidationError("item_ids", fmt.Sprintf("item %s does not belong to event %s", id, eventID))
		}
		if seen[id] {
			return nil, NewValidationError("item_ids", fmt.Sprintf("item %s listed twice", id))
		}
		seen[id] = true
		ordered = append(ordered, item)
	}
	for _, item := range items {
		if !seen[item.ID] {
			ordered = append(ordered, item)
		}
	}

	ts := s.clock()
	for i, item := range ordered {
		if item.OrderIndex == i {
			continue
		}
		if err := s.store.SetItemOrder(ctx, item.ID, i, ts); err != nil {
			return nil, translate(err, "reorder timeline items")
		}
		item.OrderIndex = i
		item.UpdatedAt = ts
	}

	slog.Info("Timeline reordered", "event_id", eventID, "items", len(ordered))
	s.publishChange(ctx, eventID, "", events.ItemChangeReordered, ts)
	return ordered, nil
}

func (s *TimelineService) publishChange(ctx context.Context, eventID, itemID, change string, ts time.Time) {
	if err := s.publisher.PublishItemsChanged(ctx, events.ItemsChangedPayload{
		Type:      events.EventTypeItemsChanged,
		EventID:   eventID,
		ItemID:    itemID,
		Change:    change,
		Timestamp: timestamp(ts),
	}); err != nil {
		slog.Warn("Failed to publish timeline item change",
			"event_id", eventID, "item_id", itemID, "change", change, "error", err)
	}
}

func normalizeWindow(start time.Time, end *time.Time) (time.Time, *time.Time) {
	start = start.UTC().Truncate(time.Microsecond)
	if end == nil {
		return start, nil
	}
	e := end.UTC().Truncate(time.Microsecond)
	return start, &e
}

func validateWindow(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return NewValidationError("end_time", "must not be before start_time")
	}
	return nil
}
