// Package ical renders an event's timeline as an iCalendar feed.
package ical

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/schedule"
	"github.com/codeready-toolchain/runsheet/pkg/version"
)

// ContentType is the media type of the exported feed.
const ContentType = "text/calendar; charset=utf-8"

// Calendar builds one VEVENT per timeline item, in canonical order.
// Items without an end time end after the default item duration. Skipped
// items are CANCELLED, everything else CONFIRMED.
func Calendar(event *models.Event, items []*models.TimelineItem, stamp time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(fmt.Sprintf("-//%s//%s//EN", version.AppName, version.GitCommit))
	cal.SetName(event.Name)

	for _, item := range schedule.Canonical(items) {
		vevent := cal.AddEvent(item.ID)
		vevent.SetDtStampTime(stamp.UTC())
		vevent.SetCreatedTime(item.CreatedAt.UTC())
		vevent.SetModifiedAt(item.UpdatedAt.UTC())
		vevent.SetStartAt(item.StartTime.UTC())
		vevent.SetEndAt(schedule.EffectiveEnd(item).UTC())
		vevent.SetSummary(item.Title)
		if item.Description != nil && *item.Description != "" {
			vevent.SetDescription(*item.Description)
		}
		if event.Location != nil && *event.Location != "" {
			vevent.SetLocation(*event.Location)
		}
		vevent.AddProperty(ics.ComponentPropertyCategories, item.Category.Label())
		if item.Status == models.ItemStatusSkipped {
			vevent.SetStatus(ics.ObjectStatusCancelled)
		} else {
			vevent.SetStatus(ics.ObjectStatusConfirmed)
		}
	}
	return cal
}

// Write serializes the calendar for event to w.
func Write(w io.Writer, event *models.Event, items []*models.TimelineItem, stamp time.Time) error {
	if _, err := io.WriteString(w, Calendar(event, items, stamp).Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}
