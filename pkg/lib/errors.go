package lib

import (
	"errors"
	"fmt"
)

var (
	// ErrToolNotFound is returned when the inspector executable cannot be located.
	ErrToolNotFound = errors.New("inspector tool not found")
	// ErrAlreadyRunning is returned by a start request while an instance is active.
	ErrAlreadyRunning = errors.New("inspector already running; stop the current instance first")
	// ErrProfileNotFound is returned when a profile id does not exist.
	ErrProfileNotFound = errors.New("profile not found")
)

// NoAvailablePortError reports that no unused port could be found in [Min, Max].
type NoAvailablePortError struct {
	Min uint16
	Max uint16
}

func (e *NoAvailablePortError) Error() string {
	return fmt.Sprintf("no available port in range %d-%d", e.Min, e.Max)
}

// SpawnError wraps a failure to create the child process or capture its streams.
type SpawnError struct {
	Op  string
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("process spawn failed: %s: %v", e.Op, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// PrematureExitError describes a child that exited before it became ready.
type PrematureExitError struct {
	Code *int
}

func (e *PrematureExitError) Error() string {
	if e.Code == nil {
		return "inspector exited prematurely"
	}
	return fmt.Sprintf("inspector exited prematurely with code %d", *e.Code)
}

// PersistenceError wraps a failure to read or write persisted state.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save config %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
