//go:build unix

package supervisor

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

const defaultExecutable = "mcp-inspector"

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		// New process group so node and its children die together
		Setpgid: true,
	}
}

// killTree kills the process group led by proc, falling back to the process
// itself when the group is gone or not ours.
func killTree(proc *os.Process) error {
	err := unix.Kill(-proc.Pid, unix.SIGKILL)
	if err == nil {
		return nil
	}
	if errors.Is(err, unix.ESRCH) || errors.Is(err, unix.EPERM) {
		return proc.Kill()
	}
	return err
}

// killGroup kills what is left of the process group led by pid. A group
// with no members left is not an error.
func killGroup(pid int) error {
	err := unix.Kill(-pid, unix.SIGKILL)
	if err == nil || errors.Is(err, unix.ESRCH) {
		return nil
	}
	return err
}

// processExists reports whether pid still names a live or unreaped process.
func processExists(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}
