package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/codeready-toolchain/runsheet/pkg/client"
	"github.com/codeready-toolchain/runsheet/pkg/models"
)

func addItems(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "List and add timeline items.",
	}
	addItemsList(cmd, o)
	addItemsAdd(cmd, o)
	topLevel.AddCommand(cmd)
}

func addItemsList(parent *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:   "list EVENT_ID",
		Short: "List an event's timeline in order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			items, err := c.ListItems(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printItems(cmd.OutOrStdout(), items)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

type itemFlags struct {
	start       string
	end         string
	category    string
	description string
}

func addItemsAdd(parent *cobra.Command, o *rootOptions) {
	f := &itemFlags{}
	cmd := &cobra.Command{
		Use:   "add EVENT_ID TITLE",
		Short: "Append an item to an event's timeline.",
		Long: `Append an item to an event's timeline.

--start and --end take RFC 3339 timestamps, or HH:MM on the event's date (UTC).
Without --end the item lasts the default duration.`,
		Example: `
runsheetctl items add 5f0c... "Doors open" --start 18:30 --category setup
runsheetctl items add 5f0c... "Keynote" --start 2026-04-18T19:00:00Z --end 2026-04-18T19:45:00Z
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			req, err := f.request(cmd.Context(), c, args[0], args[1])
			if err != nil {
				return err
			}
			item, err := c.CreateItem(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			printItems(cmd.OutOrStdout(), []*models.TimelineItem{item})
			return nil
		},
	}
	cmd.Flags().StringVar(&f.start, "start", "", "Start time.")
	cmd.Flags().StringVar(&f.end, "end", "", "End time.")
	cmd.Flags().StringVar(&f.category, "category", "", "setup, performance, catering, breakdown or general.")
	cmd.Flags().StringVar(&f.description, "description", "", "Free-form notes.")
	_ = cmd.MarkFlagRequired("start")
	parent.AddCommand(cmd)
}

func (f *itemFlags) request(ctx context.Context, c *client.Client, eventID, itemTitle string) (models.CreateTimelineItemRequest, error) {
	req := models.CreateTimelineItemRequest{Title: itemTitle, Category: models.Category(f.category)}
	if f.description != "" {
		req.Description = &f.description
	}

	var day time.Time
	resolve := func(flag, value string) (time.Time, error) {
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t, nil
		}
		hm, err := time.Parse(clock, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --%s %q: want RFC 3339 or HH:MM", flag, value)
		}
		if day.IsZero() {
			event, err := c.GetEvent(ctx, eventID)
			if err != nil {
				return time.Time{}, err
			}
			day = event.Date
		}
		return time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, time.UTC), nil
	}

	start, err := resolve("start", f.start)
	if err != nil {
		return req, err
	}
	req.StartTime = start
	if f.end != "" {
		end, err := resolve("end", f.end)
		if err != nil {
			return req, err
		}
		req.EndTime = &end
	}
	return req, nil
}
