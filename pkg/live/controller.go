// Package live implements the live status controller: the event state
// machine (not live -> live <-> paused -> completed) and the item status
// transitions an operator may request while an event runs.
package live

import (
	"fmt"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// State is the live-view state of an event.
type State string

// Live states.
const (
	StateNotLive   State = "not_live"
	StateLive      State = "live"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
)

// StateOf maps a stored event status onto its live state.
func StateOf(status models.EventStatus) State {
	switch status {
	case models.EventStatusLive:
		return StateLive
	case models.EventStatusPaused:
		return StatePaused
	case models.EventStatusCompleted:
		return StateCompleted
	case models.EventStatusCancelled:
		return StateCancelled
	default:
		return StateNotLive
	}
}

// Action is an event-level transition.
type Action string

// Event transitions.
const (
	ActionStart      Action = "start"
	ActionPause      Action = "pause"
	ActionResume     Action = "resume"
	ActionEnd        Action = "end"
	ActionCancel     Action = "cancel"
	ActionSchedule   Action = "schedule"
	ActionUnschedule Action = "unschedule"
)

// InvalidTransitionError is returned when a transition is requested from a
// state that does not permit it.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition from '%s' to '%s'", e.Entity, e.From, e.To)
}

// Start moves a not-live event to live.
func Start(current models.EventStatus) (models.EventStatus, error) {
	return apply(current, ActionStart)
}

// Pause moves a live event to paused. Pausing a paused event is a no-op.
func Pause(current models.EventStatus) (models.EventStatus, error) {
	return apply(current, ActionPause)
}

// Resume moves a paused event back to live. Resuming a live event is a no-op.
func Resume(current models.EventStatus) (models.EventStatus, error) {
	return apply(current, ActionResume)
}

// End moves a live or paused event to completed. Ending a completed event is a no-op.
func End(current models.EventStatus) (models.EventStatus, error) {
	return apply(current, ActionEnd)
}

// Transition applies action to the current status and returns the new status.
func Transition(current models.EventStatus, action Action) (models.EventStatus, error) {
	return apply(current, action)
}

func apply(current models.EventStatus, action Action) (models.EventStatus, error) {
	state := StateOf(current)
	target, ok := actionTargets[action]
	if !ok {
		return current, fmt.Errorf("unknown event action %q", action)
	}

	// Retrying a transition that already happened is safe, except start,
	// which must observe a not-live event.
	if current == target && action != ActionStart {
		return current, nil
	}

	for _, from := range allowedFrom[action] {
		if from == state && allowedStatus(action, current) {
			return target, nil
		}
	}
	return current, &InvalidTransitionError{Entity: "event", From: string(current), To: string(target)}
}

var actionTargets = map[Action]models.EventStatus{
	ActionStart:      models.EventStatusLive,
	ActionPause:      models.EventStatusPaused,
	ActionResume:     models.EventStatusLive,
	ActionEnd:        models.EventStatusCompleted,
	ActionCancel:     models.EventStatusCancelled,
	ActionSchedule:   models.EventStatusScheduled,
	ActionUnschedule: models.EventStatusDraft,
}

var allowedFrom = map[Action][]State{
	ActionStart:      {StateNotLive},
	ActionPause:      {StateLive},
	ActionResume:     {StatePaused},
	ActionEnd:        {StateLive, StatePaused},
	ActionCancel:     {StateNotLive, StateLive, StatePaused},
	ActionSchedule:   {StateNotLive},
	ActionUnschedule: {StateNotLive},
}

// allowedStatus narrows the draft/scheduled distinction hidden by StateNotLive.
func allowedStatus(action Action, current models.EventStatus) bool {
	switch action {
	case ActionSchedule:
		return current == models.EventStatusDraft
	case ActionUnschedule:
		return current == models.EventStatusScheduled
	}
	return true
}

// ActionFor resolves the transition that moves an event from current to target,
// as used by PATCH requests that name the desired status.
func ActionFor(current, target models.EventStatus) (Action, error) {
	switch target {
	case models.EventStatusLive:
		if s := StateOf(current); s == StatePaused || s == StateLive {
			return ActionResume, nil
		}
		return ActionStart, nil
	case models.EventStatusPaused:
		return ActionPause, nil
	case models.EventStatusCompleted:
		return ActionEnd, nil
	case models.EventStatusCancelled:
		return ActionCancel, nil
	case models.EventStatusScheduled:
		return ActionSchedule, nil
	case models.EventStatusDraft:
		return ActionUnschedule, nil
	}
	return "", &InvalidTransitionError{Entity: "event", From: string(current), To: string(target)}
}

// AcceptsLiveActions reports whether operators may jump, skip or complete
// items of an event in this status.
func AcceptsLiveActions(status models.EventStatus) bool {
	s := StateOf(status)
	return s == StateLive || s == StatePaused
}

var itemTransitions = map[models.ItemStatus][]models.ItemStatus{
	models.ItemStatusPending:    {models.ItemStatusInProgress, models.ItemStatusCompleted, models.ItemStatusSkipped},
	models.ItemStatusInProgress: {models.ItemStatusCompleted, models.ItemStatusSkipped},
}

// ValidateItemTransition checks an operator-requested item status change.
// Requesting the status an item already has is allowed and changes nothing.
func ValidateItemTransition(from, to models.ItemStatus) error {
	if from == to {
		return nil
	}
	for _, allowed := range itemTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{Entity: "timeline item", From: string(from), To: string(to)}
}
