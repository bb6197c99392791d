package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/timestamppb"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/app"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/config"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/daemonconfig"
)

// newRunCmd runs the inspector in the foreground without a daemon. Ctrl-C
// tears the process down.
func newRunCmd() *cobra.Command {
	var (
		dir       string
		envs      []string
		profile   string
		ephemeral bool
	)
	cmd := &cobra.Command{
		Use:   "run [-- <upstream server command>]",
		Short: "Run the inspector in the foreground and stream its output",
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

			loaded, err := daemonconfig.Load()
			if err != nil {
				return err
			}
			for _, w := range loaded.Warnings {
				_, _ = fmt.Fprintf(os.Stderr, "config warning: %s\n", w)
			}
			opts := loaded.Config

			profilesPath := ""
			if !ephemeral {
				if profilesPath, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			a := app.New(app.Options{
				ConfigPath: profilesPath,
				Tool:       opts.SupervisorTool(),
				Allocator:  opts.Allocator(),
				Ranges:     opts.PortRanges(),
			})
			defer a.Shutdown()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			events := a.Subscribe(256, ctx.Done())

			var res app.StartResult
			if profile != "" {
				res, err = a.StartProfile(profile)
			} else {
				res, err = a.Start(lib.LaunchSpec{
					Command:          strings.Join(args, " "),
					WorkingDirectory: dir,
					Env:              env,
				})
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(os.Stderr, "session %s on %s\n", res.SessionID, res.ClientURL)

			p := newPrinter(os.Stdout)
			for e := range events {
				p.event(fromLibEvent(e))
				if e.Kind == lib.EventExited {
					if e.ExitCode != nil && *e.ExitCode != 0 {
						return fmt.Errorf("inspector exited with code %d", *e.ExitCode)
					}
					return nil
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "C", "", "working directory (defaults to the current directory)")
	cmd.Flags().StringArrayVarP(&envs, "env", "e", nil, "environment override KEY=VALUE (repeatable)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "run a saved profile by id")
	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "do not read or write saved profiles")
	return cmd
}

var streams = map[lib.StreamKind]apiv1.Stream{
	lib.StreamStdout: apiv1.Stream_STREAM_STDOUT,
	lib.StreamStderr: apiv1.Stream_STREAM_STDERR,
	lib.StreamSystem: apiv1.Stream_STREAM_SYSTEM,
}

// fromLibEvent renders in-process events through the same printer as streamed ones.
func fromLibEvent(e lib.Event) *apiv1.Event {
	out := &apiv1.Event{SessionId: e.SessionID}
	if !e.Time.IsZero() {
		out.Time = timestamppb.New(e.Time)
	}
	switch e.Kind {
	case lib.EventLog:
		out.Kind = apiv1.EventKind_EVENT_KIND_LOG
		out.Stream = streams[e.Stream]
		out.Text = e.Text
	case lib.EventReady:
		out.Kind = apiv1.EventKind_EVENT_KIND_READY
		out.Url = e.URL
	case lib.EventExited:
		out.Kind = apiv1.EventKind_EVENT_KIND_EXITED
		if e.ExitCode != nil {
			code := int32(*e.ExitCode)
			out.ExitCode = &code
		}
		out.Premature = e.Premature
	}
	return out
}
