package events

import (
	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// TimelineUpdatedPayload is the payload for timeline.updated notifications.
// Published after a live action committed at least one item update.
type TimelineUpdatedPayload struct {
	Type          string              `json:"type"`                      // always EventTypeTimelineUpdated
	EventID       string              `json:"event_id"`                  // owning event
	Action        models.LiveAction   `json:"action"`                    // jump, complete, skip, item_status
	ItemID        string              `json:"item_id,omitempty"`         // anchor or target item, if any
	Updates       []models.ItemUpdate `json:"updates"`                   // applied updates
	FailedItemIDs []string            `json:"failed_item_ids,omitempty"` // set on partial commit
	Timestamp     string              `json:"timestamp"`                 // RFC3339Nano
}

// ItemsChangedPayload is the payload for items.changed notifications.
type ItemsChangedPayload struct {
	Type      string `json:"type"`              // always EventTypeItemsChanged
	EventID   string `json:"event_id"`          // owning event
	ItemID    string `json:"item_id,omitempty"` // empty for reorder
	Change    string `json:"change"`            // created, updated, deleted, reordered
	Timestamp string `json:"timestamp"`         // RFC3339Nano
}

// EventStatusPayload is the payload for event.status notifications.
type EventStatusPayload struct {
	Type      string             `json:"type"`      // always EventTypeEventStatus
	EventID   string             `json:"event_id"`  // event UUID
	Status    models.EventStatus `json:"status"`    // new status
	Previous  models.EventStatus `json:"previous"`  // status before the transition
	Timestamp string             `json:"timestamp"` // RFC3339Nano
}

// TimelineSnapshotPayload is sent to a client right after it subscribes to
// an event channel.
type TimelineSnapshotPayload struct {
	Type    string            `json:"type"` // always EventTypeTimelineSnapshot
	EventID string            `json:"event_id"`
	Board   *models.LiveBoard `json:"board"`
}
