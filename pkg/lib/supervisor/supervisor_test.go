//go:build unix

package supervisor

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/ports"
)

type collector struct {
	mu     sync.Mutex
	events []lib.Event
}

func (c *collector) Emit(e lib.Event) {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
}

func (c *collector) snapshot() []lib.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]lib.Event(nil), c.events...)
}

// waitFor polls until an event matching pred has been emitted.
func (c *collector) waitFor(t *testing.T, pred func(lib.Event) bool) lib.Event {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		for _, e := range c.snapshot() {
			if pred(e) {
				return e
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for event; got %v", c.snapshot())
	return lib.Event{}
}

func isKind(kind lib.EventKind) func(lib.Event) bool {
	return func(e lib.Event) bool { return e.Kind == kind }
}

// fakeTool writes a shell script standing in for the inspector.
func fakeTool(t *testing.T, body string) Tool {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-inspector.sh")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}
	return Tool{Executable: "sh", Args: []string{path}}
}

func waitClosed(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

const readyScript = `
echo "client=$CLIENT_PORT server=$SERVER_PORT open=$MCP_AUTO_OPEN_ENABLED extra=$EXTRA arg=$1"
echo "starting" 1>&2
echo "Session token: tok42"
sleep 30
`

func TestSpawn_ReadyURLAndEnvironment(t *testing.T) {
	c := &collector{}
	h, err := Spawn(lib.LaunchSpec{
		Command:          "node build/index.js",
		WorkingDirectory: t.TempDir(),
		Env:              map[string]string{"EXTRA": "override"},
	}, Options{
		Tool:       fakeTool(t, readyScript),
		Sink:       c,
		DefaultEnv: map[string]string{"EXTRA": "default"},
	})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	defer h.Close()

	pair := h.Ports()
	if pair.ClientPort == pair.ServerPort || pair.ClientPort == 0 {
		t.Fatalf("unexpected ports: %+v", pair)
	}
	if !lib.IsID(h.SessionID()) {
		t.Fatalf("session id is not a UUID: %q", h.SessionID())
	}

	ready := c.waitFor(t, isKind(lib.EventReady))
	wantURL := "http://localhost:" + strconv.Itoa(int(pair.ClientPort)) +
		"?MCP_PROXY_PORT=" + strconv.Itoa(int(pair.ServerPort)) + "&MCP_PROXY_AUTH_TOKEN=tok42"
	if ready.URL != wantURL || h.URL() != wantURL {
		t.Fatalf("ready URL mismatch: event=%q handle=%q want=%q", ready.URL, h.URL(), wantURL)
	}
	if ready.SessionID != h.SessionID() {
		t.Fatalf("ready event session %q, want %q", ready.SessionID, h.SessionID())
	}

	envLine := c.waitFor(t, func(e lib.Event) bool {
		return e.Kind == lib.EventLog && e.Stream == lib.StreamStdout && strings.HasPrefix(e.Text, "client=")
	})
	wantEnv := "client=" + strconv.Itoa(int(pair.ClientPort)) + " server=" + strconv.Itoa(int(pair.ServerPort)) +
		" open=false extra=override arg=node build/index.js"
	if envLine.Text != wantEnv {
		t.Fatalf("env line mismatch:\ngot  %q\nwant %q", envLine.Text, wantEnv)
	}

	c.waitFor(t, func(e lib.Event) bool {
		return e.Kind == lib.EventLog && e.Stream == lib.StreamStderr && e.Text == "starting"
	})

	if !h.IsRunning() {
		t.Fatalf("expected process to be running")
	}
	if err := h.Kill(); err != nil {
		t.Fatalf("Kill failed: %v", err)
	}
	waitClosed(t, h.Done(), "relay completion")

	events := c.snapshot()
	last := events[len(events)-1]
	if last.Kind != lib.EventExited || last.SessionID != h.SessionID() || last.Premature {
		t.Fatalf("unexpected final event: %+v", last)
	}
}

func TestSpawn_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	c := &collector{}
	h, err := Spawn(lib.LaunchSpec{WorkingDirectory: dir}, Options{Tool: fakeTool(t, "pwd\n"), Sink: c})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	defer h.Close()
	waitClosed(t, h.Done(), "relay completion")

	want, _ := filepath.EvalSymlinks(dir)
	var line lib.Event
	for _, e := range c.snapshot() {
		if e.Kind == lib.EventLog && e.Stream == lib.StreamStdout {
			line = e
		}
	}
	got, _ := filepath.EvalSymlinks(line.Text)
	if got != want {
		t.Fatalf("working directory mismatch: got %q want %q", got, want)
	}
}

func TestSpawn_ToolNotFound(t *testing.T) {
	_, err := Spawn(lib.LaunchSpec{}, Options{Tool: Tool{Executable: "definitely-not-an-inspector-binary"}})
	if !errors.Is(err, lib.ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestSpawn_BadWorkingDirectory(t *testing.T) {
	_, err := Spawn(lib.LaunchSpec{WorkingDirectory: filepath.Join(t.TempDir(), "missing")},
		Options{Tool: fakeTool(t, "exit 0\n")})
	var spawnErr *lib.SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected SpawnError, got %v", err)
	}
}

func TestSpawn_RangeConstrainedPorts(t *testing.T) {
	r := ports.Ranges{
		Client: ports.Range{Min: 44000, Max: 44100},
		Server: ports.Range{Min: 45000, Max: 45100},
	}
	h, err := Spawn(lib.LaunchSpec{}, Options{Tool: fakeTool(t, "exit 0\n"), Ranges: r})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	defer h.Close()

	pair := h.Ports()
	if !r.Client.Contains(pair.ClientPort) || !r.Server.Contains(pair.ServerPort) {
		t.Fatalf("ports outside ranges: %+v", pair)
	}
}

func TestKill_AlreadyExitedIsNoop(t *testing.T) {
	h, err := Spawn(lib.LaunchSpec{}, Options{Tool: fakeTool(t, "exit 7\n")})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	waitClosed(t, h.Exited(), "process exit")

	if h.IsRunning() {
		t.Fatalf("expected process to be reported as not running")
	}
	if code := h.ExitCode(); code == nil || *code != 7 {
		t.Fatalf("expected exit code 7, got %v", code)
	}
	if err := h.Kill(); err != nil {
		t.Fatalf("Kill on exited process failed: %v", err)
	}
	if err := h.Kill(); err != nil {
		t.Fatalf("second Kill failed: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestPrematureExitIsFlagged(t *testing.T) {
	c := &collector{}
	h, err := Spawn(lib.LaunchSpec{}, Options{Tool: fakeTool(t, "echo boom 1>&2\nexit 1\n"), Sink: c})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	waitClosed(t, h.Done(), "relay completion")

	exited := c.waitFor(t, isKind(lib.EventExited))
	if !exited.Premature || exited.ExitCode == nil || *exited.ExitCode != 1 {
		t.Fatalf("unexpected exited event: %+v", exited)
	}
}

func TestStop_KillsProcessGroup(t *testing.T) {
	c := &collector{}
	script := "sleep 30 &\necho \"child=$!\"\nwait\n"
	h, err := Spawn(lib.LaunchSpec{}, Options{Tool: fakeTool(t, script), Sink: c})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	line := c.waitFor(t, func(e lib.Event) bool { return strings.HasPrefix(e.Text, "child=") })
	childPid, err := strconv.Atoi(strings.TrimPrefix(line.Text, "child="))
	if err != nil {
		t.Fatalf("parse child pid: %v", err)
	}

	if err := h.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if h.IsRunning() {
		t.Fatalf("expected process to be stopped")
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if gone(childPid) {
			waitClosed(t, h.Done(), "relay completion")
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("grandchild %d survived Stop", childPid)
}

func TestKill_ReapsBackgroundChildrenAfterLeaderExit(t *testing.T) {
	c := &collector{}
	script := "sleep 30 &\necho \"child=$!\"\necho \"Session token: tok\"\nexit 0\n"
	h, err := Spawn(lib.LaunchSpec{}, Options{Tool: fakeTool(t, script), Sink: c})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	line := c.waitFor(t, func(e lib.Event) bool { return strings.HasPrefix(e.Text, "child=") })
	childPid, err := strconv.Atoi(strings.TrimPrefix(line.Text, "child="))
	if err != nil {
		t.Fatalf("parse child pid: %v", err)
	}
	waitClosed(t, h.Exited(), "leader exit")
	if gone(childPid) {
		t.Fatalf("background child %d died with its leader", childPid)
	}

	if err := h.Kill(); err != nil {
		t.Fatalf("Kill after leader exit failed: %v", err)
	}
	waitClosed(t, h.Done(), "relay completion")
	exited := c.waitFor(t, isKind(lib.EventExited))
	if exited.ExitCode == nil || *exited.ExitCode != 0 || exited.Premature {
		t.Fatalf("unexpected exited event: %+v", exited)
	}

	deadline := time.Now().Add(3 * time.Second)
	for !gone(childPid) {
		if time.Now().After(deadline) {
			t.Fatalf("background child %d survived Kill", childPid)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestClose_TerminatesProcess(t *testing.T) {
	h, err := Spawn(lib.LaunchSpec{}, Options{Tool: fakeTool(t, "sleep 30\n")})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	waitClosed(t, h.Exited(), "process exit")
}

// gone treats zombies as dead: in containers nobody may reap the orphan.
func gone(pid int) bool {
	if !processExists(pid) {
		return true
	}
	data, err := os.ReadFile("/proc/" + strconv.Itoa(pid) + "/stat")
	if err != nil {
		return false
	}
	fields := strings.Fields(string(data))
	return len(fields) > 2 && fields[2] == "Z"
}

func spawnAndDrop(t *testing.T, tool Tool) int {
	t.Helper()
	h, err := Spawn(lib.LaunchSpec{}, Options{Tool: tool})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	return h.PID()
}

func TestDroppedHandle_TerminatesProcess(t *testing.T) {
	pid := spawnAndDrop(t, fakeTool(t, "sleep 30\n"))

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		runtime.GC()
		if !processExists(pid) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("process %d still exists after its handle was dropped", pid)
}

func TestSpawn_PrematureExitAnnounced(t *testing.T) {
	c := &collector{}
	h, err := Spawn(lib.LaunchSpec{WorkingDirectory: t.TempDir()}, Options{Tool: fakeTool(t, "exit 4\n"), Sink: c})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	defer h.Close()
	waitClosed(t, h.Done(), "relay completion")

	events := c.snapshot()
	if len(events) < 2 {
		t.Fatalf("expected notice and exited events, got %+v", events)
	}
	notice, last := events[len(events)-2], events[len(events)-1]
	if last.Kind != lib.EventExited || !last.Premature || last.ExitCode == nil || *last.ExitCode != 4 {
		t.Fatalf("unexpected final event: %+v", last)
	}
	if notice.Stream != lib.StreamSystem || notice.Text != "inspector exited prematurely with code 4" {
		t.Fatalf("unexpected notice: %+v", notice)
	}
}
