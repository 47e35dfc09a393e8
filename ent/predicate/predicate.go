// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// TimelineItem is the predicate function for timelineitem builders.
type TimelineItem func(*sql.Selector)
