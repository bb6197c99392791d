package supervisor

import (
	"errors"
	"os"
	"time"
)

// Kill terminates the process and everything left in its process group.
// Killing an already exited process succeeds.
func (h *Handle) Kill() error {
	return h.p.kill()
}

// Stop kills the process and waits up to a second for it to be reaped.
func (h *Handle) Stop() error {
	if err := h.p.kill(); err != nil {
		return err
	}
	select {
	case <-h.p.waitDone:
	case <-time.After(stopWaitPeriod):
		logger.Printf("Session %s: not reaped %v after kill", h.p.sessionID, stopWaitPeriod)
	}
	return nil
}

// Close is the teardown path for owners: a best-effort kill whose errors are
// swallowed because the process may already be gone.
func (h *Handle) Close() error {
	if h == nil || h.p == nil {
		return nil
	}
	_ = h.p.kill()
	return nil
}

func (p *process) kill() error {
	pid := p.cmd.Process.Pid
	if !p.running() {
		// The leader is reaped but children it backgrounded may still hold
		// the group and the output pipes.
		if err := killGroup(pid); err != nil {
			logger.Printf("Session %s: killing group %d: %v", p.sessionID, pid, err)
		}
		return nil
	}
	logger.Printf("Session %s: killing pid %d", p.sessionID, pid)
	err := killTree(p.cmd.Process)
	if err == nil || errors.Is(err, os.ErrProcessDone) || !p.running() || !processExists(pid) {
		return nil
	}
	return err
}
