package schedule

import (
	"time"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// DefaultItemDuration is how long an item without an end time runs.
const DefaultItemDuration = 30 * time.Minute

// EffectiveEnd returns the item's end time, or its start plus DefaultItemDuration.
func EffectiveEnd(item *models.TimelineItem) time.Time {
	if item.EndTime != nil {
		return *item.EndTime
	}
	return item.StartTime.Add(DefaultItemDuration)
}

// Board is the classification of items at one instant.
type Board struct {
	Current   *models.TimelineItem
	Upcoming  []*models.TimelineItem
	Completed []*models.TimelineItem
}

// Classify buckets items for display at now. It never mutates the items.
//
// The current item is the first in_progress item in canonical order, or,
// when none is in progress, the first pending item whose window
// [start, effective end] contains now. Completed and skipped items, and
// pending items whose effective end has passed, are completed. Pending items
// that start after now are upcoming. A pending item whose window holds now but
// lost the current slot is in no bucket. Buckets keep canonical order.
func Classify(items []*models.TimelineItem, now time.Time) Board {
	ordered := Canonical(items)
	board := Board{
		Upcoming:  []*models.TimelineItem{},
		Completed: []*models.TimelineItem{},
	}

	if idx := currentIndex(ordered); idx >= 0 {
		board.Current = ordered[idx]
	} else {
		for _, item := range ordered {
			if item.Status == models.ItemStatusPending && inWindow(item, now) {
				board.Current = item
				break
			}
		}
	}

	for _, item := range ordered {
		if item == board.Current {
			continue
		}
		switch {
		case item.Status.Done():
			board.Completed = append(board.Completed, item)
		case item.Status == models.ItemStatusPending && EffectiveEnd(item).Before(now):
			board.Completed = append(board.Completed, item)
		case item.Status == models.ItemStatusPending && item.StartTime.After(now):
			board.Upcoming = append(board.Upcoming, item)
		}
	}

	return board
}

// Progress returns how far now is through the item's window as a
// percentage clamped to [0, 100].
func Progress(item *models.TimelineItem, now time.Time) float64 {
	if item == nil {
		return 0
	}
	total := EffectiveEnd(item).Sub(item.StartTime)
	if total <= 0 {
		if now.Before(item.StartTime) {
			return 0
		}
		return 100
	}
	pct := float64(now.Sub(item.StartTime)) / float64(total) * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

func inWindow(item *models.TimelineItem, now time.Time) bool {
	return !now.Before(item.StartTime) && !now.After(EffectiveEnd(item))
}
