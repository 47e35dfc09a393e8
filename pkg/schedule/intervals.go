// Package schedule holds the pure timeline algorithms: the interval model,
// the re-scheduling engine used during a live event, and the display
// classification of items into current, upcoming and completed buckets.
//
// Nothing in this package reads a clock. Every function that needs "now"
// takes it as a parameter so one operation uses a single instant throughout.
package schedule

import (
	"sort"
	"time"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// Canonical returns a copy of items sorted by OrderIndex ascending.
// Items with equal OrderIndex keep their input order.
func Canonical(items []*models.TimelineItem) []*models.TimelineItem {
	ordered := make([]*models.TimelineItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].OrderIndex < ordered[b].OrderIndex
	})
	return ordered
}

// Gaps returns the start-time differences between consecutive items:
// gaps[k] = items[k+1].StartTime - items[k].StartTime.
// Items must already be in canonical order. Zero and negative gaps are
// returned as they are. Fewer than two items yield an empty slice.
func Gaps(items []*models.TimelineItem) []time.Duration {
	if len(items) < 2 {
		return []time.Duration{}
	}
	gaps := make([]time.Duration, len(items)-1)
	for k := 0; k < len(items)-1; k++ {
		gaps[k] = items[k+1].StartTime.Sub(items[k].StartTime)
	}
	return gaps
}

// Duration returns the planned length of an item, or false when it has no end time.
func Duration(item *models.TimelineItem) (time.Duration, bool) {
	if item.EndTime == nil {
		return 0, false
	}
	return item.EndTime.Sub(item.StartTime), true
}
