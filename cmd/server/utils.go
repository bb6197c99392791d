package main

import (
	"errors"
	"time"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/app"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/config"
	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib/history"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatusError maps library errors onto gRPC codes.
func toStatusError(op string, err error) error {
	var (
		noPort  *lib.NoAvailablePortError
		spawn   *lib.SpawnError
		persist *lib.PersistenceError
	)
	code := codes.Internal
	switch {
	case errors.Is(err, lib.ErrAlreadyRunning):
		code = codes.FailedPrecondition
	case errors.Is(err, lib.ErrToolNotFound), errors.Is(err, lib.ErrProfileNotFound):
		code = codes.NotFound
	case errors.As(err, &noPort):
		code = codes.ResourceExhausted
	case errors.As(err, &spawn):
		code = codes.Aborted
	case errors.Is(err, app.ErrClosed):
		code = codes.Unavailable
	case errors.As(err, &persist):
		code = codes.Internal
	}
	return status.Errorf(code, "%s: %v", op, err)
}

func toAPIEvent(e lib.Event) *apiv1.Event {
	out := &apiv1.Event{
		Kind:      toAPIEventKind(e.Kind),
		SessionId: e.SessionID,
		Time:      toTimestamp(e.Time),
	}
	switch e.Kind {
	case lib.EventLog:
		out.Stream = toAPIStream(e.Stream)
		out.Text = e.Text
	case lib.EventReady:
		out.Url = e.URL
	case lib.EventExited:
		out.ExitCode = toExitCode(e.ExitCode)
		out.Premature = e.Premature
	}
	return out
}

func toAPIEventKind(k lib.EventKind) apiv1.EventKind {
	switch k {
	case lib.EventLog:
		return apiv1.EventKind_EVENT_KIND_LOG
	case lib.EventReady:
		return apiv1.EventKind_EVENT_KIND_READY
	case lib.EventExited:
		return apiv1.EventKind_EVENT_KIND_EXITED
	}
	return apiv1.EventKind_EVENT_KIND_UNSPECIFIED
}

func toAPIStream(s lib.StreamKind) apiv1.Stream {
	switch s {
	case lib.StreamStdout:
		return apiv1.Stream_STREAM_STDOUT
	case lib.StreamStderr:
		return apiv1.Stream_STREAM_STDERR
	case lib.StreamSystem:
		return apiv1.Stream_STREAM_SYSTEM
	}
	return apiv1.Stream_STREAM_UNSPECIFIED
}

func toAPIProfile(p config.Profile) *apiv1.Profile {
	return &apiv1.Profile{
		Id:               p.ID,
		Name:             p.Name,
		Command:          p.Command,
		WorkingDirectory: p.WorkingDirectory,
		Env:              p.EnvVars,
		CreatedAt:        toTimestamp(p.CreatedAt),
		LastUsedAt:       toTimestamp(p.LastUsedAt),
	}
}

func toAPISession(s history.Session) *apiv1.Session {
	out := &apiv1.Session{
		SessionId:        s.SessionID,
		ProfileId:        s.ProfileID,
		Command:          s.Command,
		WorkingDirectory: s.WorkingDirectory,
		ClientPort:       uint32(s.ClientPort),
		ServerPort:       uint32(s.ServerPort),
		Url:              s.URL,
		StartTime:        toTimestamp(s.StartedAt),
		ExitCode:         toExitCode(s.ExitCode),
		Premature:        s.Premature,
	}
	if s.ReadyAt != nil {
		out.ReadyTime = timestamppb.New(*s.ReadyAt)
	}
	if s.EndedAt != nil {
		out.EndTime = timestamppb.New(*s.EndedAt)
	}
	return out
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toExitCode(code *int) *int32 {
	if code == nil {
		return nil
	}
	v := int32(*code)
	return &v
}
