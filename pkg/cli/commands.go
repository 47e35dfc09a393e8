// Package cli implements the runsheetctl commands.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// New returns the runsheetctl root command.
func New() *cobra.Command {
	o := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "runsheetctl",
		Short: "Drive runsheet event timelines from the command line.",
		Long: `runsheetctl talks to a runsheet server.

The server URL comes from --server, then RUNSHEET_SERVER, then the "server"
key of ~/.runsheetctl.yaml, and defaults to http://localhost:8080.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	o.addFlags(cmd)
	addCommands(cmd, o)
	return cmd
}

// addCommands registers the subcommands on topLevel.
func addCommands(topLevel *cobra.Command, o *rootOptions) {
	addEvents(topLevel, o)
	addItems(topLevel, o)
	addLive(topLevel, o)
	addVersion(topLevel)
}
