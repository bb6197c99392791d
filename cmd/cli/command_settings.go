package main

import (
	"context"
	"fmt"
	"os"
	"time"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/spf13/cobra"
)

var themes = map[string]bool{"system": true, "light": true, "dark": true}

func newSettingsCmd() *cobra.Command {
	var (
		theme     string
		autoStart bool
		envs      []string
		clearEnv  bool
	)
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change application settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if theme != "" && !themes[theme] {
				return fmt.Errorf("invalid theme %q; expected system, light or dark", theme)
			}
			env, err := parseEnv(envs)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			current, err := client.GetSettings(ctx, &apiv1.GetSettingsRequest{})
			if err != nil {
				return friendlyError(err)
			}

			flags := cmd.Flags()
			changed := flags.Changed("theme") || flags.Changed("auto-start") || flags.Changed("env") || clearEnv
			if changed {
				next := &apiv1.Settings{
					Theme:          current.GetTheme(),
					AutoStart:      current.GetAutoStart(),
					DefaultEnvVars: current.GetDefaultEnvVars(),
				}
				if flags.Changed("theme") {
					next.Theme = theme
				}
				if flags.Changed("auto-start") {
					next.AutoStart = autoStart
				}
				switch {
				case clearEnv:
					next.DefaultEnvVars = map[string]string{}
				case env != nil:
					next.DefaultEnvVars = env
				}
				if current, err = client.UpdateSettings(ctx, &apiv1.UpdateSettingsRequest{Settings: next}); err != nil {
					return friendlyError(err)
				}
			}
			newPrinter(os.Stdout).settings(current)
			return nil
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "theme: system, light or dark")
	cmd.Flags().BoolVar(&autoStart, "auto-start", false, "start the most recent profile when the daemon starts")
	cmd.Flags().StringArrayVarP(&envs, "env", "e", nil, "replace default environment with KEY=VALUE pairs (repeatable)")
	cmd.Flags().BoolVar(&clearEnv, "clear-env", false, "remove all default environment variables")
	return cmd
}
