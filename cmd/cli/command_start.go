package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
)

func newStartCmd() *cobra.Command {
	var (
		dir     string
		envs    []string
		profile string
	)
	cmd := &cobra.Command{
		Use:   "start [-- <upstream server command>]",
		Short: "Start the inspector, optionally proxying an upstream MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := parseEnv(envs)
			if err != nil {
				return err
			}
			if dir == "" && profile == "" {
				if dir, err = os.Getwd(); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			client, closeConn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			return startSession(ctx, client, &apiv1.StartRequest{
				Command:          strings.Join(args, " "),
				WorkingDirectory: dir,
				Env:              env,
				ProfileId:        profile,
			}, os.Stdout)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "C", "", "working directory (defaults to the current directory)")
	cmd.Flags().StringArrayVarP(&envs, "env", "e", nil, "environment override KEY=VALUE (repeatable)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "start a saved profile by id")
	return cmd
}

var errAlreadyRunning = errors.New("the inspector is already running; stop it first with: inspector stop")

// startSession asks the daemon to launch and prints the session id and URL.
func startSession(ctx context.Context, client apiv1.InspectorServiceClient, req *apiv1.StartRequest, out io.Writer) error {
	resp, err := client.Start(ctx, req)
	if err != nil {
		if grpcCode(err) == codes.FailedPrecondition {
			return errAlreadyRunning
		}
		return friendlyError(err)
	}
	fmt.Fprintln(out, resp.GetSessionId())
	fmt.Fprintln(out, resp.GetClientUrl())
	return nil
}

// parseEnv turns KEY=VALUE pairs into a map.
func parseEnv(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid env %q; expected KEY=VALUE", kv)
		}
		env[k] = v
	}
	return env, nil
}
