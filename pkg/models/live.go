package models

import "time"

// LiveBoard is the display classification of an event's items at one instant.
// It is recomputed on every read and never persisted.
type LiveBoard struct {
	Event     *Event          `json:"event"`
	Now       time.Time       `json:"now"`
	Current   *TimelineItem   `json:"current"`
	Progress  float64         `json:"progress"`
	Upcoming  []*TimelineItem `json:"upcoming"`
	Completed []*TimelineItem `json:"completed"`
}

// LiveAction names an operator action on a live timeline.
type LiveAction string

// Live actions.
const (
	LiveActionJump       LiveAction = "jump"
	LiveActionComplete   LiveAction = "complete"
	LiveActionSkip       LiveAction = "skip"
	LiveActionItemStatus LiveAction = "item_status"
)

// LiveResult reports the updates a live action committed.
type LiveResult struct {
	EventID string       `json:"event_id"`
	Action  LiveAction   `json:"action"`
	Now     time.Time    `json:"now"`
	Updates []ItemUpdate `json:"updates"`
}
