package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/events"
	"github.com/codeready-toolchain/runsheet/pkg/live"
	"github.com/codeready-toolchain/runsheet/pkg/metrics"
	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/schedule"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

// LiveService runs operator actions against a live timeline: it loads the
// event's items, asks the re-scheduling engine for updates and commits them.
//
// Each action reads the clock once; that instant anchors every update it
// produces.
type LiveService struct {
	store     store.Store
	applier   *commit.Applier
	publisher events.Publisher
	metrics   *metrics.Metrics
	clock     func() time.Time
}

var _ events.SnapshotProvider = (*LiveService)(nil)

// NewLiveService creates a new LiveService. A nil publisher disables notifications.
func NewLiveService(st store.Store, applier *commit.Applier, pub events.Publisher, m *metrics.Metrics) *LiveService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &LiveService{store: st, applier: applier, publisher: pub, metrics: m, clock: now}
}

// planner computes the updates of one live action.
type planner func(items []*models.TimelineItem, now time.Time) ([]models.ItemUpdate, error)

// JumpTo makes itemID the current item, anchored at the current instant,
// and shifts every later item by its original spacing.
func (s *LiveService) JumpTo(ctx context.Context, itemID string) (*models.LiveResult, error) {
	if itemID == "" {
		return nil, NewValidationError("item_id", "required")
	}
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, translate(err, "get timeline item")
	}
	return s.run(ctx, item.EventID, models.LiveActionJump, itemID,
		func(items []*models.TimelineItem, now time.Time) ([]models.ItemUpdate, error) {
			return schedule.JumpTo(items, itemID, now)
		})
}

// CompleteCurrent completes the in-progress item and promotes the next one.
func (s *LiveService) CompleteCurrent(ctx context.Context, eventID string) (*models.LiveResult, error) {
	if eventID == "" {
		return nil, NewValidationError("event_id", "required")
	}
	return s.run(ctx, eventID, models.LiveActionComplete, "", schedule.CompleteCurrent)
}

// SkipCurrent skips the in-progress item and promotes the next one.
func (s *LiveService) SkipCurrent(ctx context.Context, eventID string) (*models.LiveResult, error) {
	if eventID == "" {
		return nil, NewValidationError("event_id", "required")
	}
	return s.run(ctx, eventID, models.LiveActionSkip, "", schedule.SkipCurrent)
}

// SetItemStatus changes one item's status without re-timing anything.
// Completing or skipping the in-progress item promotes the next one.
func (s *LiveService) SetItemStatus(ctx context.Context, itemID string, status models.ItemStatus) (*models.LiveResult, error) {
	if itemID == "" {
		return nil, NewValidationError("item_id", "required")
	}
	if !status.Valid() {
		return nil, NewValidationError("status", "unknown item status")
	}
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, translate(err, "get timeline item")
	}
	if err := live.ValidateItemTransition(item.Status, status); err != nil {
		return nil, err
	}

	return s.run(ctx, item.EventID, models.LiveActionItemStatus, itemID,
		func(items []*models.TimelineItem, now time.Time) ([]models.ItemUpdate, error) {
			var target *models.TimelineItem
			for _, it := range items {
				if it.ID == itemID {
					target = it
				}
			}
			if target == nil {
				return nil, schedule.ErrItemNotFound
			}
			if target.Status == status {
				return []models.ItemUpdate{}, nil
			}
			if status == models.ItemStatusInProgress {
				for _, it := range items {
					if it.ID != itemID && it.Status == models.ItemStatusInProgress {
						return nil, &InvalidTransitionError{
							Entity: "timeline item",
							From:   string(target.Status),
							To:     string(status) + " while " + it.ID + " is in progress",
						}
					}
				}
			}
			return schedule.SetStatus(items, itemID, status, now)
		})
}

// Board classifies an event's items at the current instant.
func (s *LiveService) Board(ctx context.Context, eventID string) (*models.LiveBoard, error) {
	if eventID == "" {
		return nil, NewValidationError("event_id", "required")
	}
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, translate(err, "get event")
	}
	items, err := s.store.ListItems(ctx, eventID)
	if err != nil {
		return nil, translate(err, "list timeline items")
	}

	ts := s.clock()
	b := schedule.Classify(items, ts)
	return &models.LiveBoard{
		Event:     event,
		Now:       ts,
		Current:   b.Current,
		Progress:  schedule.Progress(b.Current, ts),
		Upcoming:  b.Upcoming,
		Completed: b.Completed,
	}, nil
}

// Snapshot returns the board sent to new WebSocket subscribers.
func (s *LiveService) Snapshot(ctx context.Context, eventID string) (*models.LiveBoard, error) {
	return s.Board(ctx, eventID)
}

// run loads the event and its items, checks the event accepts live actions,
// plans the updates and commits them. On a partial commit the result holds
// the applied updates and the error is a *PartialCommitError.
func (s *LiveService) run(ctx context.Context, eventID string, action models.LiveAction, itemID string, plan planner) (*models.LiveResult, error) {
	log := slog.With("event_id", eventID, "action", action)
	if itemID != "" {
		log = log.With("item_id", itemID)
	}

	result, err := s.execute(ctx, eventID, action, plan, log)
	switch {
	case err == nil:
		s.metrics.ObserveLiveOperation(string(action), metrics.ResultSuccess)
	case result != nil:
		s.metrics.ObserveLiveOperation(string(action), metrics.ResultPartial)
	default:
		s.metrics.ObserveLiveOperation(string(action), metrics.ResultFailure)
		return nil, err
	}

	if len(result.Updates) > 0 {
		payload := events.TimelineUpdatedPayload{
			Type:      events.EventTypeTimelineUpdated,
			EventID:   eventID,
			Action:    action,
			ItemID:    itemID,
			Updates:   result.Updates,
			Timestamp: timestamp(result.Now),
		}
		if pce, ok := AsPartialCommit(err); ok {
			payload.FailedItemIDs = pce.FailedIDs()
		}
		if perr := s.publisher.PublishTimelineUpdated(ctx, payload); perr != nil {
			log.Warn("Failed to publish timeline update", "error", perr)
		}
	}
	return result, err
}

func (s *LiveService) execute(ctx context.Context, eventID string, action models.LiveAction, plan planner, log *slog.Logger) (*models.LiveResult, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, translate(err, "get event")
	}
	if !live.AcceptsLiveActions(event.Status) {
		return nil, &InvalidTransitionError{Entity: "live action", From: string(event.Status), To: string(action)}
	}

	items, err := s.store.ListItems(ctx, eventID)
	if err != nil {
		return nil, translate(err, "list timeline items")
	}

	ts := s.clock()
	updates, err := plan(items, ts)
	if err != nil {
		return nil, translate(err, "plan "+string(action))
	}

	applied, err := s.applier.Apply(ctx, updates)
	if err != nil {
		if pce, ok := AsPartialCommit(err); ok {
			log.Error("Live action partially applied",
				"applied", len(applied), "failed_item_ids", pce.FailedIDs())
			return &models.LiveResult{EventID: eventID, Action: action, Now: ts, Updates: applied}, err
		}
		log.Error("Live action failed", "updates", len(updates), "error", err)
		return nil, translate(err, "apply "+string(action))
	}

	log.Info("Live action applied", "updates", len(applied))
	return &models.LiveResult{EventID: eventID, Action: action, Now: ts, Updates: applied}, nil
}
