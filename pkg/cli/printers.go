package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/schedule"
)

const clock = "15:04"

var (
	bold  = color.New(color.Bold).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
	title = color.New(color.Bold, color.Underline).SprintFunc()
)

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	return tbl
}

func eventStatusColor(s models.EventStatus) string {
	switch s {
	case models.EventStatusLive:
		return color.GreenString(string(s))
	case models.EventStatusPaused:
		return color.YellowString(string(s))
	case models.EventStatusCancelled:
		return color.RedString(string(s))
	}
	return string(s)
}

func itemStatusColor(s models.ItemStatus) string {
	switch s {
	case models.ItemStatusInProgress:
		return color.GreenString(string(s))
	case models.ItemStatusSkipped:
		return color.New(color.Faint, color.CrossedOut).Sprint(string(s))
	case models.ItemStatusCompleted:
		return faint(string(s))
	}
	return string(s)
}

func printEvents(w io.Writer, events []*models.Event) {
	if len(events) == 0 {
		_, _ = fmt.Fprintln(w, faint("No events."))
		return
	}
	tbl := newTable()
	tbl.AddRow(bold("ID"), bold("DATE"), bold("NAME"), bold("STATUS"), bold("LOCATION"))
	for _, e := range events {
		tbl.AddRow(e.ID, e.Date.Format(models.DateLayout), e.Name, eventStatusColor(e.Status), deref(e.Location))
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func printEvent(w io.Writer, e *models.Event) {
	tbl := newTable()
	tbl.AddRow(bold("ID:"), e.ID)
	tbl.AddRow(bold("Name:"), e.Name)
	tbl.AddRow(bold("Date:"), e.Date.Format(models.DateLayout))
	tbl.AddRow(bold("Status:"), eventStatusColor(e.Status))
	if e.Location != nil {
		tbl.AddRow(bold("Location:"), *e.Location)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func printItems(w io.Writer, items []*models.TimelineItem) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, faint("No timeline items."))
		return
	}
	tbl := newTable()
	tbl.AddRow(bold("ID"), bold("START"), bold("END"), bold("TITLE"), bold("CATEGORY"), bold("STATUS"))
	for _, it := range items {
		tbl.AddRow(it.ID, it.StartTime.Format(clock), schedule.EffectiveEnd(it).Format(clock),
			it.Title, it.Category.Label(), itemStatusColor(it.Status))
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func printBoard(w io.Writer, b *models.LiveBoard) {
	_, _ = fmt.Fprintf(w, "%s  %s  %s\n\n", title(b.Event.Name), eventStatusColor(b.Event.Status), faint(b.Now.Format(time.RFC3339)))

	_, _ = fmt.Fprintln(w, bold("Now"))
	if b.Current == nil {
		_, _ = fmt.Fprintln(w, faint("  nothing in progress"))
	} else {
		_, _ = fmt.Fprintf(w, "  %s  %s-%s  %s\n", b.Current.Title,
			b.Current.StartTime.Format(clock), schedule.EffectiveEnd(b.Current).Format(clock), progressBar(b.Progress))
	}

	_, _ = fmt.Fprintln(w, bold("\nUp next"))
	printBucket(w, b.Upcoming)
	_, _ = fmt.Fprintln(w, bold("\nDone"))
	printBucket(w, b.Completed)
}

func printBucket(w io.Writer, items []*models.TimelineItem) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, faint("  none"))
		return
	}
	tbl := newTable()
	for _, it := range items {
		tbl.AddRow("", it.StartTime.Format(clock), it.Title, itemStatusColor(it.Status))
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func printResult(w io.Writer, r *models.LiveResult) {
	if len(r.Updates) == 0 {
		_, _ = fmt.Fprintln(w, faint("Nothing to update."))
		return
	}
	_, _ = fmt.Fprintf(w, "%s: %d item(s) updated\n", bold(string(r.Action)), len(r.Updates))
	tbl := newTable()
	tbl.AddRow(bold("ID"), bold("START"), bold("STATUS"))
	for _, u := range r.Updates {
		tbl.AddRow(u.ID, u.StartTime.Format(clock), itemStatusColor(u.Status))
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func progressBar(pct float64) string {
	const width = 20
	filled := int(pct / 100 * width)
	filled = max(0, min(width, filled))
	return fmt.Sprintf("[%s%s] %3.0f%%", strings.Repeat("#", filled), strings.Repeat(".", width-filled), pct)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
