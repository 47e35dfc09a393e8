package ical

import (
	"bytes"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

func TestWrite(t *testing.T) {
	loc := "Main hall"
	desc := "Welcome speech"
	start := time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)

	event := &models.Event{ID: "evt-1", Name: "Gala", Location: &loc}
	items := []*models.TimelineItem{
		{
			ID: "b", EventID: "evt-1", Title: "Dinner", Category: models.CategoryCatering,
			StartTime: start.Add(time.Hour), Status: models.ItemStatusSkipped, OrderIndex: 1,
		},
		{
			ID: "a", EventID: "evt-1", Title: "Opening", Description: &desc, Category: models.CategoryPerformance,
			StartTime: start, EndTime: &end, Status: models.ItemStatusCompleted, OrderIndex: 0,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, event, items, start))
	assert.Contains(t, buf.String(), "BEGIN:VCALENDAR")
	assert.Contains(t, buf.String(), "Gala")

	cal, err := ics.ParseCalendar(&buf)
	require.NoError(t, err)
	vevents := cal.Events()
	require.Len(t, vevents, 2)

	opening := vevents[0]
	assert.Equal(t, "a", opening.Id())
	assert.Equal(t, "Opening", opening.GetProperty(ics.ComponentPropertySummary).Value)
	assert.Equal(t, "Welcome speech", opening.GetProperty(ics.ComponentPropertyDescription).Value)
	assert.Equal(t, "Main hall", opening.GetProperty(ics.ComponentPropertyLocation).Value)
	assert.Equal(t, "Performance", opening.GetProperty(ics.ComponentPropertyCategories).Value)
	assert.Equal(t, "CONFIRMED", opening.GetProperty(ics.ComponentPropertyStatus).Value)
	gotStart, err := opening.GetStartAt()
	require.NoError(t, err)
	assert.True(t, gotStart.Equal(start))
	gotEnd, err := opening.GetEndAt()
	require.NoError(t, err)
	assert.True(t, gotEnd.Equal(end))

	dinner := vevents[1]
	assert.Equal(t, "b", dinner.Id())
	assert.Equal(t, "CANCELLED", dinner.GetProperty(ics.ComponentPropertyStatus).Value)
	dinnerEnd, err := dinner.GetEndAt()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, dinnerEnd.Sub(start.Add(time.Hour)), "default duration")
}
