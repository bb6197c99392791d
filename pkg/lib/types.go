package lib

import (
	"fmt"
	"time"
)

// LaunchSpec describes how to launch the inspector for one session.
// Command is the upstream server command handed to the inspector as its only
// positional argument; it may be empty.
type LaunchSpec struct {
	Command          string
	WorkingDirectory string
	Env              map[string]string
}

// Clone returns a deep copy so the spawned process never observes later caller mutations.
func (s LaunchSpec) Clone() LaunchSpec {
	out := LaunchSpec{Command: s.Command, WorkingDirectory: s.WorkingDirectory}
	if s.Env != nil {
		out.Env = make(map[string]string, len(s.Env))
		for k, v := range s.Env {
			out.Env[k] = v
		}
	}
	return out
}

// PortPair holds the two ports the inspector binds.
type PortPair struct {
	ClientPort uint16
	ServerPort uint16
}

// StreamKind tags the origin of a log line.
type StreamKind int

const (
	StreamStdout StreamKind = iota
	StreamStderr
	StreamSystem
)

func (k StreamKind) String() string {
	switch k {
	case StreamStdout:
		return "stdout"
	case StreamStderr:
		return "stderr"
	case StreamSystem:
		return "system"
	default:
		return "unknown"
	}
}

// EventKind distinguishes the three signals delivered to the presentation layer.
type EventKind int

const (
	EventLog EventKind = iota
	EventReady
	EventExited
)

func (k EventKind) String() string {
	switch k {
	case EventLog:
		return "log"
	case EventReady:
		return "ready"
	case EventExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Event is a single observation emitted by the supervisor.
//
// Log events carry Stream and Text. Ready events carry URL. Exited events
// carry ExitCode (nil when the exit status could not be determined) and
// Premature when the process exited before publishing its session token.
type Event struct {
	Kind      EventKind
	Stream    StreamKind
	Text      string
	SessionID string
	URL       string
	ExitCode  *int
	Premature bool
	Time      time.Time
}

func (e Event) String() string {
	switch e.Kind {
	case EventReady:
		return fmt.Sprintf("[%s] ready %s", e.SessionID, e.URL)
	case EventExited:
		code := "unknown"
		if e.ExitCode != nil {
			code = fmt.Sprint(*e.ExitCode)
		}
		return fmt.Sprintf("[%s] exited code=%s", e.SessionID, code)
	default:
		return fmt.Sprintf("[%s] %s: %s", e.SessionID, e.Stream, e.Text)
	}
}

// SystemEvent builds a log event on the system stream.
func SystemEvent(sessionID, format string, args ...any) Event {
	return Event{
		Kind:      EventLog,
		Stream:    StreamSystem,
		Text:      fmt.Sprintf(format, args...),
		SessionID: sessionID,
		Time:      time.Now(),
	}
}

// Sink receives events. Implementations must be safe for concurrent use:
// stdout and stderr are relayed from separate goroutines.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// MultiSink fans an event out to every non-nil sink in order.
type MultiSink []Sink

func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(e)
		}
	}
}

// DiscardSink drops every event.
var DiscardSink Sink = SinkFunc(func(Event) {})
