package supervisor

import (
	"fmt"
	"time"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
)

// IsRunning polls the process without blocking. A process whose wait failed
// is reported as not running.
func (h *Handle) IsRunning() bool {
	return h.p.running()
}

func (p *process) running() bool {
	select {
	case <-p.waitDone:
		return false
	default:
		return true
	}
}

// SessionID is the opaque identifier generated at spawn time.
func (h *Handle) SessionID() string { return h.p.sessionID }

// Ports returns the allocated client and server ports.
func (h *Handle) Ports() lib.PortPair { return h.p.ports }

// Spec returns the launch spec the process was started with.
func (h *Handle) Spec() lib.LaunchSpec { return h.p.spec.Clone() }

// PID of the inspector process.
func (h *Handle) PID() int { return h.p.cmd.Process.Pid }

// StartedAt is the time the process was spawned.
func (h *Handle) StartedAt() time.Time { return h.p.startedAt }

// ClientURL is the inspector web client address without credentials.
func (h *Handle) ClientURL() string {
	return fmt.Sprintf("http://localhost:%d", h.p.ports.ClientPort)
}

// URL returns the full access URL once the session token was seen, or "".
func (h *Handle) URL() string { return h.p.relay.URL() }

// Ready reports whether the session token has been observed.
func (h *Handle) Ready() bool { return h.p.relay.Ready() }

// Exited is closed once the process has been reaped.
func (h *Handle) Exited() <-chan struct{} { return h.p.waitDone }

// Done is closed once the relay emitted the exited event, i.e. after every
// log line of the session has been delivered.
func (h *Handle) Done() <-chan struct{} { return h.p.relay.Done() }

// ExitCode returns the exit code, or nil while running or when it is unknown.
// A process killed by a signal reports -1.
func (h *Handle) ExitCode() *int { return h.p.lockAndGetExitCode() }

func (p *process) lockAndGetExitCode() *int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.exitCode == nil {
		return nil
	}
	code := *p.exitCode
	return &code
}
