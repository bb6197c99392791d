//go:build unix

package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/config"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/history"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/supervisor"
)

const readyScript = `
echo "extra=$EXTRA shared=$SHARED arg=$1"
echo "Session token: tok"
sleep 30
`

func fakeTool(t *testing.T, body string) supervisor.Tool {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-inspector.sh")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}
	return supervisor.Tool{Executable: "sh", Args: []string{path}}
}

type collector struct {
	mu     sync.Mutex
	events []lib.Event
}

func (c *collector) Emit(e lib.Event) {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
}

func (c *collector) waitFor(t *testing.T, pred func(lib.Event) bool) lib.Event {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		for _, e := range c.events {
			if pred(e) {
				c.mu.Unlock()
				return e
			}
		}
		c.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for event")
	return lib.Event{}
}

func newTestApp(t *testing.T, script string, c *collector) *App {
	t.Helper()
	opts := Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.json"),
		Tool:       fakeTool(t, script),
	}
	if c != nil {
		opts.Sink = c
	}
	a := New(opts)
	t.Cleanup(a.Shutdown)
	return a
}

func waitNotRunning(t *testing.T, a *App) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		st, err := a.Status()
		if err != nil {
			t.Fatalf("Status: %v", err)
		}
		if !st.Running {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("process still running")
}

func TestStart_SecondStartFailsAndKeepsFirst(t *testing.T) {
	a := newTestApp(t, readyScript, nil)

	first, err := a.Start(lib.LaunchSpec{WorkingDirectory: t.TempDir()})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	_, err = a.Start(lib.LaunchSpec{WorkingDirectory: t.TempDir()})
	if !errors.Is(err, lib.ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}

	st, err := a.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !st.Running || st.SessionID != first.SessionID ||
		st.Ports.ClientPort != first.ClientPort || st.Ports.ServerPort != first.ServerPort {
		t.Fatalf("first process disturbed: status=%+v first=%+v", st, first)
	}
}

func TestStatus_ReportsReadyURL(t *testing.T) {
	c := &collector{}
	a := newTestApp(t, readyScript, c)

	res, err := a.Start(lib.LaunchSpec{WorkingDirectory: t.TempDir()})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !strings.HasPrefix(res.ClientURL, "http://localhost:") {
		t.Fatalf("unexpected client URL %q", res.ClientURL)
	}
	ready := c.waitFor(t, func(e lib.Event) bool { return e.Kind == lib.EventReady })

	st, err := a.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !st.Ready || st.URL != ready.URL || !strings.HasSuffix(st.URL, "MCP_PROXY_AUTH_TOKEN=tok") {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestStop_IsIdempotent(t *testing.T) {
	a := newTestApp(t, readyScript, nil)

	if err := a.Stop(); err != nil {
		t.Fatalf("Stop on empty slot: %v", err)
	}
	if _, err := a.Start(lib.LaunchSpec{WorkingDirectory: t.TempDir()}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := a.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := a.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	if st, _ := a.Status(); st.Running {
		t.Fatalf("still running after Stop")
	}
}

func TestStop_AlreadyExitedIsNoop(t *testing.T) {
	c := &collector{}
	a := newTestApp(t, "echo bye\nexit 2\n", c)

	if _, err := a.Start(lib.LaunchSpec{WorkingDirectory: t.TempDir()}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	c.waitFor(t, func(e lib.Event) bool { return e.Kind == lib.EventExited })

	if err := a.Stop(); err != nil {
		t.Fatalf("Stop on exited process: %v", err)
	}
}

func TestStatus_ClearsExitedProcessAndAllowsRestart(t *testing.T) {
	a := newTestApp(t, "exit 0\n", nil)

	if _, err := a.Start(lib.LaunchSpec{WorkingDirectory: t.TempDir()}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitNotRunning(t, a)

	if _, err := a.Start(lib.LaunchSpec{WorkingDirectory: t.TempDir()}); err != nil {
		t.Fatalf("restart after exit: %v", err)
	}
}

func TestStart_ToolNotFound(t *testing.T) {
	a := New(Options{Tool: supervisor.Tool{Executable: "definitely-not-an-inspector-binary"}})
	defer a.Shutdown()

	_, err := a.Start(lib.LaunchSpec{})
	if !errors.Is(err, lib.ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
	if st, _ := a.Status(); st.Running {
		t.Fatalf("slot should be empty after failed start")
	}
}

func TestStart_DefaultEnvUnderOverrides(t *testing.T) {
	c := &collector{}
	a := newTestApp(t, readyScript, c)

	if err := a.SetDefaultEnv(map[string]string{"EXTRA": "default", "SHARED": "yes"}); err != nil {
		t.Fatalf("SetDefaultEnv: %v", err)
	}
	_, err := a.Start(lib.LaunchSpec{
		Command:          "node srv.js",
		WorkingDirectory: t.TempDir(),
		Env:              map[string]string{"EXTRA": "override"},
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	line := c.waitFor(t, func(e lib.Event) bool {
		return e.Kind == lib.EventLog && strings.HasPrefix(e.Text, "extra=")
	})
	if line.Text != "extra=override shared=yes arg=node srv.js" {
		t.Fatalf("unexpected environment line %q", line.Text)
	}
}

func TestStartProfile_TouchesProfile(t *testing.T) {
	clock := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "config.json")
	a := New(Options{
		ConfigPath: path,
		Tool:       fakeTool(t, readyScript),
		Now:        func() time.Time { return clock },
	})
	defer a.Shutdown()

	first, err := a.SaveProfile("first", "", t.TempDir(), nil)
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	clock = clock.Add(time.Minute)
	if _, err := a.SaveProfile("second", "", t.TempDir(), nil); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if a.Profiles()[0].Name != "second" {
		t.Fatalf("expected second profile first")
	}

	clock = clock.Add(time.Minute)
	if _, err := a.StartProfile(first.ID); err != nil {
		t.Fatalf("StartProfile: %v", err)
	}
	if a.Profiles()[0].ID != first.ID {
		t.Fatalf("started profile should move to the front")
	}
	if st, _ := a.Status(); st.ProfileID != first.ID {
		t.Fatalf("status should carry profile id, got %q", st.ProfileID)
	}
	if config.Load(path).RecentProfiles[0].ID != first.ID {
		t.Fatalf("touch not persisted")
	}

	if _, err := a.StartProfile("missing"); !errors.Is(err, lib.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestAutoStart(t *testing.T) {
	a := newTestApp(t, readyScript, nil)

	if _, attempted, err := a.AutoStart(); attempted || err != nil {
		t.Fatalf("auto start should be off by default: attempted=%v err=%v", attempted, err)
	}

	p, err := a.SaveProfile("only", "", t.TempDir(), nil)
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if err := a.UpdateSettings(config.Settings{Theme: "dark", AutoStart: true}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	_, attempted, err := a.AutoStart()
	if !attempted || err != nil {
		t.Fatalf("expected auto start: attempted=%v err=%v", attempted, err)
	}
	if st, _ := a.Status(); !st.Running || st.ProfileID != p.ID {
		t.Fatalf("expected profile %s running, got %+v", p.ID, st)
	}
}

func TestProfiles_SaveReplaceDeletePersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	a := New(Options{ConfigPath: path})
	defer a.Shutdown()

	p, err := a.SaveProfile("weather", "node a.js", "/srv", map[string]string{"K": "1"})
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	replaced, err := a.SaveProfile("weather", "node b.js", "/srv", nil)
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if replaced.ID != p.ID || !replaced.CreatedAt.Equal(p.CreatedAt) {
		t.Fatalf("replacing by name should keep identity: %+v vs %+v", replaced, p)
	}
	if got := a.Profiles(); len(got) != 1 || got[0].Command != "node b.js" {
		t.Fatalf("unexpected profiles %+v", got)
	}

	reloaded := New(Options{ConfigPath: path})
	defer reloaded.Shutdown()
	if got := reloaded.Profiles(); len(got) != 1 || got[0].ID != p.ID {
		t.Fatalf("profiles not persisted: %+v", got)
	}

	if err := a.DeleteProfile("unknown"); err != nil {
		t.Fatalf("DeleteProfile(unknown): %v", err)
	}
	if err := a.DeleteProfile(p.ID); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	if len(a.Profiles()) != 0 || len(config.Load(path).RecentProfiles) != 0 {
		t.Fatalf("profile not deleted")
	}
}

func TestSaveFailureLeavesStateUnchanged(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	a := New(Options{ConfigPath: filepath.Join(blocker, "config.json")})
	defer a.Shutdown()

	_, err := a.SaveProfile("x", "", "/", nil)
	var pe *lib.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if len(a.Profiles()) != 0 {
		t.Fatalf("failed save must not change in-memory profiles")
	}
	if err := a.UpdateSettings(config.Settings{Theme: "dark"}); err == nil {
		t.Fatalf("expected settings save to fail")
	}
	if a.Settings() != config.DefaultSettings() {
		t.Fatalf("failed save must not change settings")
	}
}

func TestSubscribe_ReceivesSessionEvents(t *testing.T) {
	a := newTestApp(t, "echo hello\nexit 0\n", nil)

	done := make(chan struct{})
	defer close(done)
	ch := a.Subscribe(16, done)

	res, err := a.Start(lib.LaunchSpec{WorkingDirectory: t.TempDir()})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	timeout := time.After(5 * time.Second)
	sawHello := false
	for {
		select {
		case e := <-ch:
			if e.Kind == lib.EventLog && e.Text == "hello" && e.SessionID == res.SessionID {
				sawHello = true
			}
			if e.Kind == lib.EventExited {
				if !sawHello {
					t.Fatalf("exited arrived before the log line")
				}
				if !e.Premature {
					t.Fatalf("exit without token should be flagged premature")
				}
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for session events")
		}
	}
}

func TestHistory_RecordsSessions(t *testing.T) {
	ctx := context.Background()
	store, err := history.Open(ctx, filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer store.Close()

	c := &collector{}
	a := New(Options{Tool: fakeTool(t, readyScript), History: store, HistoryKeep: 10, Sink: c})

	res, err := a.Start(lib.LaunchSpec{Command: "node srv.js", WorkingDirectory: t.TempDir()})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	c.waitFor(t, func(e lib.Event) bool { return e.Kind == lib.EventReady })
	a.Shutdown()

	sessions, err := a.History(ctx, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions))
	}
	s := sessions[0]
	if s.SessionID != res.SessionID || s.Command != "node srv.js" || s.ClientPort != res.ClientPort {
		t.Fatalf("unexpected session %+v", s)
	}
	if !strings.HasSuffix(s.URL, "MCP_PROXY_AUTH_TOKEN=tok") || s.EndedAt == nil || s.Premature {
		t.Fatalf("lifecycle not recorded: %+v", s)
	}
}

func TestShutdown_StopsProcessAndRejectsStart(t *testing.T) {
	a := New(Options{Tool: fakeTool(t, readyScript)})

	if _, err := a.Start(lib.LaunchSpec{WorkingDirectory: t.TempDir()}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	ch := a.Subscribe(64, nil)

	a.Shutdown()
	a.Shutdown()

	for range ch {
	}
	if _, err := a.Start(lib.LaunchSpec{}); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if _, err := a.Status(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed from Status, got %v", err)
	}
}
