package history

import (
	"context"
	"time"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
)

const writeTimeout = 5 * time.Second

// Recorder is a lib.Sink that persists Ready and Exited events. Log events
// are ignored. Failures are logged; they never reach the relay.
type Recorder struct {
	store *Store
}

func NewRecorder(store *Store) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) Emit(e lib.Event) {
	if r == nil || r.store == nil || e.SessionID == "" {
		return
	}
	at := e.Time
	if at.IsZero() {
		at = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var err error
	switch e.Kind {
	case lib.EventReady:
		err = r.store.RecordReady(ctx, e.SessionID, e.URL, at)
	case lib.EventExited:
		err = r.store.RecordExit(ctx, e.SessionID, e.ExitCode, e.Premature, at)
	default:
		return
	}
	if err != nil {
		logger.Printf("Recording %s for session %s failed: %v", e.Kind, e.SessionID, err)
	}
}
