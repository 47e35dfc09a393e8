// Package events delivers change notifications to WebSocket clients,
// using PostgreSQL NOTIFY/LISTEN to reach clients connected to other
// server instances.
//
// Every notification is a JSON object with a "type" and an "event_id".
// Notifications about one event go to EventChannel(eventID); event status
// changes are also copied to GlobalEventsChannel for list views.
//
//	timeline.updated   live action committed (jump, complete, skip, item status)
//	items.changed      item created, edited, deleted or reordered
//	event.status       event moved through its live state machine
//	timeline.snapshot  sent once to a new subscriber of an event channel
package events

import "strings"

// Notification types.
const (
	EventTypeTimelineUpdated  = "timeline.updated"
	EventTypeItemsChanged     = "items.changed"
	EventTypeEventStatus      = "event.status"
	EventTypeTimelineSnapshot = "timeline.snapshot"
)

// Item change kinds (used in ItemsChangedPayload.Change).
const (
	ItemChangeCreated   = "created"
	ItemChangeUpdated   = "updated"
	ItemChangeDeleted   = "deleted"
	ItemChangeReordered = "reordered"
)

// GlobalEventsChannel receives every event status change.
const GlobalEventsChannel = "events"

const eventChannelPrefix = "event:"

// EventChannel returns the channel name for one event's notifications.
// Format: "event:{event_id}"
func EventChannel(eventID string) string {
	return eventChannelPrefix + eventID
}

// EventIDFromChannel extracts the event id from an EventChannel name.
func EventIDFromChannel(channel string) (string, bool) {
	id, ok := strings.CutPrefix(channel, eventChannelPrefix)
	return id, ok && id != ""
}

// Client actions.
const (
	ActionSubscribe   = "subscribe"
	ActionUnsubscribe = "unsubscribe"
	ActionPing        = "ping"
)

// ClientMessage is sent by WebSocket clients.
type ClientMessage struct {
	Action  string `json:"action"`
	Channel string `json:"channel,omitempty"` // e.g. "event:abc-123"
}

// Control message types sent by the server.
const (
	MessageConnectionEstablished = "connection.established"
	MessageSubscriptionConfirmed = "subscription.confirmed"
	MessageSubscriptionError     = "subscription.error"
	MessagePong                  = "pong"
	MessageError                 = "error"
)

// ServerMessage is a control message sent to a WebSocket client.
// Notifications use the payload types instead.
type ServerMessage struct {
	Type         string `json:"type"`
	ConnectionID string `json:"connection_id,omitempty"`
	Channel      string `json:"channel,omitempty"`
	Message      string `json:"message,omitempty"`
}
