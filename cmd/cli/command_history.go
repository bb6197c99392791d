package main

import (
	"context"
	"os"
	"time"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int32
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past inspector sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.History(ctx, &apiv1.HistoryRequest{Limit: limit})
			if err != nil {
				return friendlyError(err)
			}
			newPrinter(os.Stdout).sessions(resp.GetSessions())
			return nil
		},
	}
	cmd.Flags().Int32VarP(&limit, "limit", "n", 20, "number of sessions to show")
	return cmd
}
