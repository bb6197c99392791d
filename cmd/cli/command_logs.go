package main

import (
	"context"
	"io"
	"os"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/spf13/cobra"
)

func newLogsCmd() *cobra.Command {
	var follow bool
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print recent inspector output; -f keeps following",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			client, closeConn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			stream, err := client.Events(ctx, &apiv1.EventsRequest{Follow: follow})
			if err != nil {
				return friendlyError(err)
			}
			p := newPrinter(os.Stdout)
			for {
				msg, err := stream.Recv()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return friendlyError(err)
				}
				p.event(msg)
			}
		},
	}
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep streaming new output")
	return cmd
}
