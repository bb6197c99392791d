package main

import "github.com/spf13/cobra"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "inspector",
		Short:         "MCP Inspector desktop CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dialAddress, "address", "", "daemon address (defaults to $INSPECTOR_ADDRESS or 127.0.0.1:50057)")

	root.AddCommand(newStartCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newStopCmd())
	root.AddCommand(newLogsCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newProfilesCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newSettingsCmd())

	return root
}
