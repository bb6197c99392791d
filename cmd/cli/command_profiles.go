package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/spf13/cobra"
)

func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage saved launch profiles",
	}
	cmd.AddCommand(newProfilesListCmd(), newProfilesSaveCmd(), newProfilesDeleteCmd())
	return cmd
}

func newProfilesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles, most recently used first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.ListProfiles(ctx, &apiv1.ListProfilesRequest{})
			if err != nil {
				return friendlyError(err)
			}
			newPrinter(os.Stdout).profiles(resp.GetProfiles())
			return nil
		},
	}
}

func newProfilesSaveCmd() *cobra.Command {
	var (
		dir  string
		envs []string
	)
	cmd := &cobra.Command{
		Use:   "save <name> [-- <upstream server command>]",
		Short: "Save or replace a profile by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := parseEnv(envs)
			if err != nil {
				return err
			}
			if dir == "" {
				if dir, err = os.Getwd(); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.SaveProfile(ctx, &apiv1.SaveProfileRequest{
				Name:             args[0],
				Command:          strings.Join(args[1:], " "),
				WorkingDirectory: dir,
				Env:              env,
			})
			if err != nil {
				return friendlyError(err)
			}
			fmt.Println(resp.GetProfile().GetId())
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "C", "", "working directory (defaults to the current directory)")
	cmd.Flags().StringArrayVarP(&envs, "env", "e", nil, "environment variable KEY=VALUE (repeatable)")
	return cmd
}

func newProfilesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			if _, err := client.DeleteProfile(ctx, &apiv1.DeleteProfileRequest{Id: args[0]}); err != nil {
				return friendlyError(err)
			}
			return nil
		},
	}
}
