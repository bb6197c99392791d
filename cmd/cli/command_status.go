package main

import (
	"context"
	"fmt"
	"os"
	"time"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var urlOnly bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the running inspector and its URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.Status(ctx, &apiv1.StatusRequest{})
			if err != nil {
				return friendlyError(err)
			}
			if urlOnly {
				if resp.GetRunning() {
					fmt.Println(resp.GetUrl())
				}
				return nil
			}
			newPrinter(os.Stdout).status(resp)
			return nil
		},
	}
	cmd.Flags().BoolVar(&urlOnly, "url", false, "print only the access URL")
	return cmd
}
