package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/app"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/config"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/daemonconfig"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/eventlog"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/history"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/ports"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/relay"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/supervisor"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("inspectord: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:           "inspectord",
		Short:         "Supervises the MCP Inspector and serves its control API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, verbose)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to daemon.toml (defaults to the user config dir)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
	return cmd
}

func run(ctx context.Context, configPath string, verbose bool) error {
	loaded, err := loadDaemonConfig(configPath)
	if err != nil {
		return err
	}
	opts := loaded.Config
	for _, w := range loaded.Warnings {
		log.Printf("config warning: %s", w)
	}
	if verbose || opts.Log.Verbose {
		setLogOutput(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	historyPath, err := opts.HistoryPath()
	if err != nil {
		return err
	}
	store, err := history.Open(ctx, historyPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	profilesPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	a := app.New(app.Options{
		ConfigPath:  profilesPath,
		Tool:        opts.SupervisorTool(),
		Allocator:   opts.Allocator(),
		Ranges:      opts.PortRanges(),
		History:     store,
		HistoryKeep: opts.History.Keep,
	})
	defer a.Shutdown()

	srv, err := NewGRPCServer(opts.Server.Address, a)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if res, attempted, err := a.AutoStart(); attempted {
		if err != nil {
			log.Printf("auto start failed: %v", err)
		} else {
			log.Printf("auto started session %s at %s", res.SessionID, res.ClientURL)
		}
	}

	go func() {
		<-ctx.Done()
		log.Printf("shutting down")
		a.Shutdown()
		srv.Stop()
	}()

	log.Printf("server listening at %v", srv.Addr())
	if err := srv.Serve(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

func loadDaemonConfig(path string) (*daemonconfig.LoadResult, error) {
	if path == "" {
		return daemonconfig.Load()
	}
	return daemonconfig.LoadFrom(path)
}

func setLogOutput(w io.Writer) {
	logger.SetOutput(w)
	app.SetLogOutput(w)
	config.SetLogOutput(w)
	eventlog.SetLogOutput(w)
	history.SetLogOutput(w)
	ports.SetLogOutput(w)
	relay.SetLogOutput(w)
	supervisor.SetLogOutput(w)
}
