package models

import "time"

// ItemStatus is the progress status of a timeline item.
type ItemStatus string

// Timeline item statuses.
const (
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusInProgress ItemStatus = "in_progress"
	ItemStatusCompleted  ItemStatus = "completed"
	ItemStatusSkipped    ItemStatus = "skipped"
)

// Valid reports whether s is a known item status.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusPending, ItemStatusInProgress, ItemStatusCompleted, ItemStatusSkipped:
		return true
	}
	return false
}

// Done reports whether the item has been completed or skipped.
func (s ItemStatus) Done() bool {
	return s == ItemStatusCompleted || s == ItemStatusSkipped
}

// Category tags a timeline item. It is informational only.
type Category string

// Timeline item categories.
const (
	CategorySetup       Category = "setup"
	CategoryPerformance Category = "performance"
	CategoryCatering    Category = "catering"
	CategoryBreakdown   Category = "breakdown"
	CategoryGeneral     Category = "general"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategorySetup, CategoryPerformance, CategoryCatering, CategoryBreakdown, CategoryGeneral:
		return true
	}
	return false
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	switch c {
	case CategorySetup:
		return "Setup"
	case CategoryPerformance:
		return "Performance"
	case CategoryCatering:
		return "Catering"
	case CategoryBreakdown:
		return "Breakdown"
	default:
		return "General"
	}
}

// TimelineItem is one scheduled entry of an event's run of show.
// OrderIndex defines the canonical (originally planned) sequence, which may
// differ from StartTime order after edits. A nil EndTime means the item runs
// for the default duration.
type TimelineItem struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Category    Category   `json:"category"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Status      ItemStatus `json:"status"`
	OrderIndex  int        `json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Clone returns a deep copy of the item.
func (i *TimelineItem) Clone() *TimelineItem {
	if i == nil {
		return nil
	}
	c := *i
	if i.Description != nil {
		d := *i.Description
		c.Description = &d
	}
	if i.EndTime != nil {
		e := *i.EndTime
		c.EndTime = &e
	}
	return &c
}

// Apply copies the schedule fields of u onto the item.
func (i *TimelineItem) Apply(u ItemUpdate) {
	i.StartTime = u.StartTime
	if u.EndTime != nil {
		e := *u.EndTime
		i.EndTime = &e
	} else {
		i.EndTime = nil
	}
	i.Status = u.Status
	i.UpdatedAt = u.UpdatedAt
}

// ItemUpdate is the full replacement of one item's schedule fields,
// as produced by the re-scheduling engine and written by the commit layer.
type ItemUpdate struct {
	ID        string     `json:"id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Status    ItemStatus `json:"status"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateTimelineItemRequest contains fields for creating a timeline item.
type CreateTimelineItemRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Category    Category   `json:"category,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// UpdateTimelineItemRequest contains the editable item fields. Nil fields are left unchanged.
// ClearEndTime removes the end time so the default duration applies.
type UpdateTimelineItemRequest struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Category     *Category  `json:"category,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	ClearEndTime bool       `json:"clear_end_time,omitempty"`
}

// ReorderItemsRequest is the body of PUT /api/v1/events/:id/items/order.
type ReorderItemsRequest struct {
	ItemIDs []string `json:"item_ids"`
}

// ItemStatusRequest is the body of PATCH /api/v1/timeline-items/:id/status.
type ItemStatusRequest struct {
	Status ItemStatus `json:"status"`
}

// JumpToRequest is the body of POST /api/v1/timeline-items/jump-to.
type JumpToRequest struct {
	ItemID string `json:"item_id"`
}
