// Package app is the application context shared by every entry point: one
// slot for the running inspector and the loaded user configuration, each
// behind its own mutex.
package app

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/config"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/eventlog"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/history"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/ports"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/relay"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/supervisor"
)

var logger = log.New(io.Discard, "app: ", log.LstdFlags)

// SetLogOutput redirects the package logger.
func SetLogOutput(w io.Writer) { logger.SetOutput(w) }

// ErrClosed is returned by operations on an App after Shutdown.
var ErrClosed = errors.New("application is shutting down")

// shutdownWait bounds how long Shutdown waits for the final events of the
// stopped session.
const shutdownWait = 2 * time.Second

type Options struct {
	// ConfigPath is where profiles and settings are stored. Empty keeps the
	// configuration in memory only.
	ConfigPath string

	Tool      supervisor.Tool
	Allocator *ports.Allocator
	Ranges    ports.Ranges
	Matcher   relay.Matcher

	// History, when set, records every session. HistoryKeep bounds the
	// number of rows kept.
	History     *history.Store
	HistoryKeep int

	// Sink receives every event in addition to the event log.
	Sink lib.Sink
	// Retention is the number of events replayed to new subscribers.
	Retention int

	Now func() time.Time
}

type App struct {
	mu             sync.Mutex
	current        *supervisor.Handle
	currentProfile string
	closed         bool

	cfgMu   sync.Mutex
	cfg     config.AppConfig
	cfgPath string

	supervisorOpts supervisor.Options
	events         *eventlog.EventLog
	history        *history.Store
	historyKeep    int
	now            func() time.Time

	shutdownOnce sync.Once
}

// StartResult describes a freshly spawned inspector.
type StartResult struct {
	SessionID  string
	ClientPort uint16
	ServerPort uint16
	ClientURL  string
}

// Status is a snapshot of the process slot.
type Status struct {
	Running bool
	Ready   bool
	// URL is the access URL once the session token was seen, and the bare
	// client URL before that.
	URL       string
	ClientURL string
	SessionID string
	ProfileID string
	Ports     lib.PortPair
	PID       int
	StartedAt time.Time
}

// New loads the configuration at opts.ConfigPath and returns a ready App.
func New(opts Options) *App {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		cfg = config.Load(opts.ConfigPath)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	a := &App{
		cfg:         cfg,
		cfgPath:     opts.ConfigPath,
		events:      eventlog.New(opts.Retention),
		history:     opts.History,
		historyKeep: opts.HistoryKeep,
		now:         now,
	}

	sinks := lib.MultiSink{a.events}
	if opts.History != nil {
		sinks = append(sinks, history.NewRecorder(opts.History))
	}
	if opts.Sink != nil {
		sinks = append(sinks, opts.Sink)
	}
	a.supervisorOpts = supervisor.Options{
		Tool:      opts.Tool,
		Allocator: opts.Allocator,
		Ranges:    opts.Ranges,
		Sink:      sinks,
		Matcher:   opts.Matcher,
	}
	return a
}

// Start spawns the inspector for spec. It fails with lib.ErrAlreadyRunning,
// leaving the current process alone, while another instance is running.
func (a *App) Start(spec lib.LaunchSpec) (StartResult, error) {
	return a.start(spec, "")
}

func (a *App) start(spec lib.LaunchSpec, profileID string) (StartResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return StartResult{}, ErrClosed
	}
	if a.current != nil {
		if a.current.IsRunning() {
			return StartResult{}, lib.ErrAlreadyRunning
		}
		a.clearLocked()
	}

	opts := a.supervisorOpts
	opts.DefaultEnv = a.DefaultEnv()

	h, err := supervisor.Spawn(spec, opts)
	if err != nil {
		logger.Printf("Start failed: %v", err)
		return StartResult{}, err
	}
	a.current = h
	a.currentProfile = profileID
	a.recordStart(h, profileID)

	pair := h.Ports()
	return StartResult{
		SessionID:  h.SessionID(),
		ClientPort: pair.ClientPort,
		ServerPort: pair.ServerPort,
		ClientURL:  h.ClientURL(),
	}, nil
}

func (a *App) recordStart(h *supervisor.Handle, profileID string) {
	if a.history == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	spec := h.Spec()
	pair := h.Ports()
	err := a.history.RecordStart(ctx, history.Session{
		SessionID:        h.SessionID(),
		ProfileID:        profileID,
		Command:          spec.Command,
		WorkingDirectory: spec.WorkingDirectory,
		ClientPort:       pair.ClientPort,
		ServerPort:       pair.ServerPort,
		StartedAt:        h.StartedAt(),
	})
	if err != nil {
		logger.Printf("Recording session %s failed: %v", h.SessionID(), err)
		return
	}
	if _, err := a.history.Prune(ctx, a.historyKeep); err != nil {
		logger.Printf("Pruning history failed: %v", err)
	}
}

// StartProfile launches the saved profile with id and marks it as used.
func (a *App) StartProfile(id string) (StartResult, error) {
	profile, ok := a.Profile(id)
	if !ok {
		return StartResult{}, lib.ErrProfileNotFound
	}
	res, err := a.start(profile.LaunchSpec(), id)
	if err != nil {
		return StartResult{}, err
	}
	if err := a.updateConfig(func(cfg *config.AppConfig) bool {
		return cfg.Touch(id, a.now())
	}); err != nil {
		logger.Printf("Marking profile %s as used failed: %v", id, err)
	}
	return res, nil
}

// AutoStart launches the most recently used profile when the auto_start
// setting is on. It reports whether a start was attempted.
func (a *App) AutoStart() (StartResult, bool, error) {
	a.cfgMu.Lock()
	enabled := a.cfg.Settings.AutoStart
	var id string
	if len(a.cfg.RecentProfiles) > 0 {
		id = a.cfg.RecentProfiles[0].ID
	}
	a.cfgMu.Unlock()

	if !enabled || id == "" {
		return StartResult{}, false, nil
	}
	res, err := a.StartProfile(id)
	return res, true, err
}

// Stop terminates the current process. An empty slot or an already exited
// process is not an error.
func (a *App) Stop() error {
	a.mu.Lock()
	h := a.current
	a.current = nil
	a.currentProfile = ""
	a.mu.Unlock()

	if h == nil {
		return nil
	}
	logger.Printf("Stopping session %s", h.SessionID())
	return h.Stop()
}

// Status reports on the process slot. A process found to have exited is
// released from the slot.
func (a *App) Status() (Status, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return Status{}, ErrClosed
	}
	h := a.current
	if h == nil {
		return Status{}, nil
	}
	if !h.IsRunning() {
		a.clearLocked()
		return Status{}, nil
	}

	st := Status{
		Running:   true,
		Ready:     h.Ready(),
		ClientURL: h.ClientURL(),
		SessionID: h.SessionID(),
		ProfileID: a.currentProfile,
		Ports:     h.Ports(),
		PID:       h.PID(),
		StartedAt: h.StartedAt(),
	}
	st.URL = st.ClientURL
	if st.Ready {
		st.URL = h.URL()
	}
	return st, nil
}

func (a *App) clearLocked() {
	if a.current == nil {
		return
	}
	_ = a.current.Close()
	a.current = nil
	a.currentProfile = ""
}

// Subscribe replays recent events and follows new ones until done is closed
// or the App shuts down.
func (a *App) Subscribe(capacity int, done <-chan struct{}) <-chan lib.Event {
	return a.events.Subscribe(capacity, done)
}

// Events returns the retained events.
func (a *App) Events() []lib.Event {
	return a.events.Events()
}

// History lists recorded sessions, newest first. Without a history store it
// returns nothing.
func (a *App) History(ctx context.Context, limit int) ([]history.Session, error) {
	if a.history == nil {
		return nil, nil
	}
	return a.history.List(ctx, limit)
}

// Shutdown stops the current process and ends every subscription. It is
// safe to call more than once.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.mu.Lock()
		h := a.current
		a.current = nil
		a.currentProfile = ""
		a.closed = true
		a.mu.Unlock()

		if h != nil {
			logger.Printf("Shutting down session %s", h.SessionID())
			if err := h.Stop(); err != nil {
				logger.Printf("Stopping session %s failed: %v", h.SessionID(), err)
			}
			select {
			case <-h.Done():
			case <-time.After(shutdownWait):
			}
		}
		a.events.Close()
	})
}
