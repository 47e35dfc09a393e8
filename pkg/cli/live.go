package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/codeready-toolchain/runsheet/pkg/client"
	"github.com/codeready-toolchain/runsheet/pkg/models"
)

func addLive(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:   "live",
		Short: "Run an event's timeline while it is happening.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "board EVENT_ID",
		Short: "Show what is on now, what is next and what is done.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			board, err := c.Board(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printBoard(cmd.OutOrStdout(), board)
			return nil
		},
	})

	cmd.AddCommand(liveAction(o, "jump ITEM_ID", "Start an item now and shift everything after it.",
		func(ctx context.Context, c *client.Client, id string) (*models.LiveResult, error) {
			return c.JumpTo(ctx, id)
		}))
	cmd.AddCommand(liveAction(o, "complete EVENT_ID", "Complete the current item and start the next one.",
		func(ctx context.Context, c *client.Client, id string) (*models.LiveResult, error) {
			return c.CompleteCurrent(ctx, id)
		}))
	cmd.AddCommand(liveAction(o, "skip EVENT_ID", "Skip the current item and start the next one.",
		func(ctx context.Context, c *client.Client, id string) (*models.LiveResult, error) {
			return c.SkipCurrent(ctx, id)
		}))

	topLevel.AddCommand(cmd)
}

type liveCall func(ctx context.Context, c *client.Client, id string) (*models.LiveResult, error)

func liveAction(o *rootOptions, use, short string, call liveCall) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			result, err := call(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
