package cli

import (
	"github.com/spf13/cobra"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

func addEvents(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event", "ev"},
		Short:   "List, create and change the status of events.",
	}
	addEventsList(cmd, o)
	addEventsCreate(cmd, o)
	addEventsStatus(cmd, o)
	topLevel.AddCommand(cmd)
}

func addEventsList(parent *cobra.Command, o *rootOptions) {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events by date.",
		Example: `
runsheetctl events list
runsheetctl events list --status live
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			events, err := c.ListEvents(cmd.Context(), models.EventStatus(status))
			if err != nil {
				return err
			}
			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Only list events in this status.")
	parent.AddCommand(cmd)
}

func addEventsCreate(parent *cobra.Command, o *rootOptions) {
	var req models.CreateEventRequest
	var location string
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a draft event.",
		Example: `
runsheetctl events create "Spring Gala" --date 2026-04-18 --location "Town Hall"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			req.Name = args[0]
			if location != "" {
				req.Location = &location
			}
			event, err := c.CreateEvent(cmd.Context(), req)
			if err != nil {
				return err
			}
			printEvent(cmd.OutOrStdout(), event)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Date, "date", "", "Event date, YYYY-MM-DD.")
	cmd.Flags().StringVar(&location, "location", "", "Where the event takes place.")
	_ = cmd.MarkFlagRequired("date")
	parent.AddCommand(cmd)
}

func addEventsStatus(parent *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:   "status EVENT_ID STATUS",
		Short: "Move an event to a new status.",
		Long: `Move an event to a new status.

STATUS is one of draft, scheduled, live, paused, completed or cancelled.
"live" starts a draft or scheduled event and resumes a paused one.`,
		Example: `
runsheetctl events status 5f0c... live
runsheetctl events status 5f0c... paused
`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: eventStatusNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			event, err := c.SetEventStatus(cmd.Context(), args[0], models.EventStatus(args[1]))
			if err != nil {
				return err
			}
			printEvent(cmd.OutOrStdout(), event)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func eventStatusNames() []string {
	names := make([]string, 0, len(models.EventStatuses))
	for _, s := range models.EventStatuses {
		names = append(names, string(s))
	}
	return names
}
