//go:build windows

package supervisor

import (
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

const defaultExecutable = "mcp-inspector.cmd"

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		// The inspector is a console program; keep it from opening a window.
		CreationFlags: windows.CREATE_NO_WINDOW,
		HideWindow:    true,
	}
}

func killTree(proc *os.Process) error {
	return proc.Kill()
}

// killGroup is a no-op: children are not grouped with the inspector on Windows.
func killGroup(pid int) error {
	return nil
}

func processExists(pid int) bool {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h)

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return false
	}
	const stillActive = 259
	return code == stillActive
}
