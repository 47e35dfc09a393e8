package schedule

import (
	"errors"
	"time"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

var (
	// ErrAnchorNotFound is returned when the anchor id is not among the items.
	ErrAnchorNotFound = errors.New("anchor item not found in timeline")

	// ErrMixedEvents is returned when the items do not all belong to one event.
	ErrMixedEvents = errors.New("timeline items belong to more than one event")

	// ErrItemNotFound is returned when a status change targets an unknown item.
	ErrItemNotFound = errors.New("timeline item not found in timeline")
)

// JumpTo re-times an event's timeline so that the anchor item starts at now.
//
// Items canonically before the anchor keep their times and become skipped.
// The anchor becomes in_progress at now. Items after the anchor become
// pending and start at now plus the sum of the original gaps between the
// anchor and them. Every item with an end time keeps its original duration.
//
// The result holds one update per item in canonical order. The function is
// pure: the same items, anchor and now always produce the same updates.
func JumpTo(items []*models.TimelineItem, anchorID string, now time.Time) ([]models.ItemUpdate, error) {
	if err := sameEvent(items); err != nil {
		return nil, err
	}

	ordered := Canonical(items)
	p := indexOf(ordered, anchorID)
	if p < 0 {
		return nil, ErrAnchorNotFound
	}

	gaps := Gaps(ordered)
	updates := make([]models.ItemUpdate, 0, len(ordered))

	var offset time.Duration
	for i, item := range ordered {
		if i < p {
			updates = append(updates, models.ItemUpdate{
				ID:        item.ID,
				StartTime: item.StartTime,
				EndTime:   copyTime(item.EndTime),
				Status:    models.ItemStatusSkipped,
				UpdatedAt: now,
			})
			continue
		}

		if i > p {
			offset += gaps[i-1]
		}
		start := now.Add(offset)

		status := models.ItemStatusPending
		if i == p {
			status = models.ItemStatusInProgress
		}

		updates = append(updates, models.ItemUpdate{
			ID:        item.ID,
			StartTime: start,
			EndTime:   shiftedEnd(item, start),
			Status:    status,
			UpdatedAt: now,
		})
	}

	return updates, nil
}

// CompleteCurrent marks the in_progress item completed and promotes the next
// pending item to in_progress. Times are not changed. Without an in_progress
// item it returns no updates and no error.
func CompleteCurrent(items []*models.TimelineItem, now time.Time) ([]models.ItemUpdate, error) {
	return finishCurrent(items, models.ItemStatusCompleted, now)
}

// SkipCurrent is CompleteCurrent with the current item marked skipped.
func SkipCurrent(items []*models.TimelineItem, now time.Time) ([]models.ItemUpdate, error) {
	return finishCurrent(items, models.ItemStatusSkipped, now)
}

func finishCurrent(items []*models.TimelineItem, status models.ItemStatus, now time.Time) ([]models.ItemUpdate, error) {
	if err := sameEvent(items); err != nil {
		return nil, err
	}
	ordered := Canonical(items)
	cur := currentIndex(ordered)
	if cur < 0 {
		return []models.ItemUpdate{}, nil
	}
	return setStatus(ordered, cur, status, now), nil
}

// SetStatus changes one item's status without touching any times. When an
// in_progress item is completed or skipped, the next pending item is
// promoted to in_progress in the same result. Transition legality is the
// caller's concern.
func SetStatus(items []*models.TimelineItem, itemID string, status models.ItemStatus, now time.Time) ([]models.ItemUpdate, error) {
	if err := sameEvent(items); err != nil {
		return nil, err
	}
	ordered := Canonical(items)
	idx := indexOf(ordered, itemID)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	return setStatus(ordered, idx, status, now), nil
}

// NextPending returns the item that follows current during forward progress:
// the first pending item, in canonical order, that starts no earlier than
// current. It returns nil when there is none.
func NextPending(items []*models.TimelineItem, current *models.TimelineItem) *models.TimelineItem {
	ordered := Canonical(items)
	if idx := nextPendingIndex(ordered, indexOf(ordered, current.ID)); idx >= 0 {
		return ordered[idx]
	}
	return nil
}

func setStatus(ordered []*models.TimelineItem, idx int, status models.ItemStatus, now time.Time) []models.ItemUpdate {
	item := ordered[idx]
	updates := []models.ItemUpdate{statusOnly(item, status, now)}

	if item.Status == models.ItemStatusInProgress && status.Done() {
		if next := nextPendingIndex(ordered, idx); next >= 0 {
			updates = append(updates, statusOnly(ordered[next], models.ItemStatusInProgress, now))
		}
	}
	return updates
}

func nextPendingIndex(ordered []*models.TimelineItem, cur int) int {
	if cur < 0 {
		return -1
	}
	from := ordered[cur].StartTime
	for i, item := range ordered {
		if i == cur || item.Status != models.ItemStatusPending {
			continue
		}
		if !item.StartTime.Before(from) {
			return i
		}
	}
	return -1
}

func statusOnly(item *models.TimelineItem, status models.ItemStatus, now time.Time) models.ItemUpdate {
	return models.ItemUpdate{
		ID:        item.ID,
		StartTime: item.StartTime,
		EndTime:   copyTime(item.EndTime),
		Status:    status,
		UpdatedAt: now,
	}
}

func currentIndex(ordered []*models.TimelineItem) int {
	for i, item := range ordered {
		if item.Status == models.ItemStatusInProgress {
			return i
		}
	}
	return -1
}

func indexOf(ordered []*models.TimelineItem, id string) int {
	for i, item := range ordered {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func sameEvent(items []*models.TimelineItem) error {
	for _, item := range items {
		if item.EventID != items[0].EventID {
			return ErrMixedEvents
		}
	}
	return nil
}

func shiftedEnd(item *models.TimelineItem, start time.Time) *time.Time {
	d, ok := Duration(item)
	if !ok {
		return nil
	}
	end := start.Add(d)
	return &end
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
