package history

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/SanjoDeundiak/inspector-desktop/pkg/lib"
)

func openTempStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store, ctx
}

var t0 = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func TestOpen_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	store, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.RecordStart(ctx, Session{SessionID: "s1", StartedAt: t0}); err != nil {
		t.Fatalf("record start: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	store, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()
	if _, err := store.Get(ctx, "s1"); err != nil {
		t.Fatalf("session lost after reopen: %v", err)
	}
}

func TestLifecycle(t *testing.T) {
	store, ctx := openTempStore(t)

	err := store.RecordStart(ctx, Session{
		SessionID:        "s1",
		ProfileID:        "p1",
		Command:          "node server.js",
		WorkingDirectory: "/srv",
		ClientPort:       6274,
		ServerPort:       6277,
		StartedAt:        t0,
	})
	if err != nil {
		t.Fatalf("record start: %v", err)
	}

	sess, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !sess.Running() || sess.ReadyAt != nil || sess.ExitCode != nil {
		t.Fatalf("fresh session should be running without ready/exit: %+v", sess)
	}

	url := "http://localhost:6274?MCP_PROXY_PORT=6277&MCP_PROXY_AUTH_TOKEN=abc"
	if err := store.RecordReady(ctx, "s1", url, t0.Add(time.Second)); err != nil {
		t.Fatalf("record ready: %v", err)
	}
	code := 0
	if err := store.RecordExit(ctx, "s1", &code, false, t0.Add(time.Minute)); err != nil {
		t.Fatalf("record exit: %v", err)
	}

	sess, err = store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess.URL != url || sess.ReadyAt == nil || !sess.ReadyAt.Equal(t0.Add(time.Second)) {
		t.Fatalf("ready not recorded: %+v", sess)
	}
	if sess.Running() || sess.ExitCode == nil || *sess.ExitCode != 0 || sess.Premature {
		t.Fatalf("exit not recorded: %+v", sess)
	}
	if sess.ProfileID != "p1" || sess.Command != "node server.js" || sess.ClientPort != 6274 || sess.ServerPort != 6277 {
		t.Fatalf("launch columns lost: %+v", sess)
	}
}

func TestRecordExit_BeforeStartCreatesRow(t *testing.T) {
	store, ctx := openTempStore(t)

	if err := store.RecordExit(ctx, "early", nil, true, t0); err != nil {
		t.Fatalf("record exit: %v", err)
	}
	if err := store.RecordStart(ctx, Session{SessionID: "early", Command: "x", StartedAt: t0.Add(-time.Second)}); err != nil {
		t.Fatalf("record start: %v", err)
	}

	sess, err := store.Get(ctx, "early")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !sess.Premature || sess.ExitCode != nil || sess.EndedAt == nil || sess.Command != "x" {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestGet_NotFound(t *testing.T) {
	store, ctx := openTempStore(t)
	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAndPrune(t *testing.T) {
	store, ctx := openTempStore(t)
	for i := 0; i < 5; i++ {
		if err := store.RecordStart(ctx, Session{SessionID: fmt.Sprintf("s%d", i), StartedAt: t0.Add(time.Duration(i) * time.Minute)}); err != nil {
			t.Fatalf("record start: %v", err)
		}
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 5 || all[0].SessionID != "s4" || all[4].SessionID != "s0" {
		t.Fatalf("expected newest first, got %v", ids(all))
	}

	two, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(two) != 2 || two[0].SessionID != "s4" || two[1].SessionID != "s3" {
		t.Fatalf("unexpected limited list %v", ids(two))
	}

	n, err := store.Prune(ctx, 3)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 pruned, got %d", n)
	}
	left, _ := store.List(ctx, 0)
	if len(left) != 3 || left[2].SessionID != "s2" {
		t.Fatalf("unexpected sessions after prune: %v", ids(left))
	}

	if n, err := store.Prune(ctx, 0); err != nil || n != 0 {
		t.Fatalf("prune(0) should be a no-op, got n=%d err=%v", n, err)
	}
}

func TestList_OrdersBySubsecondStart(t *testing.T) {
	store, ctx := openTempStore(t)
	if err := store.RecordStart(ctx, Session{SessionID: "newer", StartedAt: t0.Add(500 * time.Millisecond)}); err != nil {
		t.Fatalf("record start: %v", err)
	}
	if err := store.RecordStart(ctx, Session{SessionID: "older", StartedAt: t0}); err != nil {
		t.Fatalf("record start: %v", err)
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].SessionID != "newer" || all[1].SessionID != "older" {
		t.Fatalf("expected newer first, got %v", ids(all))
	}
	if !all[0].StartedAt.Equal(t0.Add(500 * time.Millisecond)) {
		t.Fatalf("start time round trip: got %v", all[0].StartedAt)
	}

	if n, err := store.Prune(ctx, 1); err != nil || n != 1 {
		t.Fatalf("prune: n=%d err=%v", n, err)
	}
	left, _ := store.List(ctx, 0)
	if len(left) != 1 || left[0].SessionID != "newer" {
		t.Fatalf("prune kept the wrong session: %v", ids(left))
	}
}

func TestRecorder_PersistsLifecycleEvents(t *testing.T) {
	store, ctx := openTempStore(t)
	rec := NewRecorder(store)

	if err := store.RecordStart(ctx, Session{SessionID: "s1", StartedAt: t0}); err != nil {
		t.Fatalf("record start: %v", err)
	}

	code := 3
	rec.Emit(lib.Event{Kind: lib.EventLog, Stream: lib.StreamStdout, Text: "hello", SessionID: "s1"})
	rec.Emit(lib.Event{Kind: lib.EventReady, SessionID: "s1", URL: "http://localhost:1?x", Time: t0.Add(time.Second)})
	rec.Emit(lib.Event{Kind: lib.EventExited, SessionID: "s1", ExitCode: &code, Premature: false})
	rec.Emit(lib.Event{Kind: lib.EventExited})

	sess, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess.URL != "http://localhost:1?x" || sess.ExitCode == nil || *sess.ExitCode != 3 || sess.EndedAt == nil {
		t.Fatalf("recorder did not persist events: %+v", sess)
	}
	all, _ := store.List(ctx, 0)
	if len(all) != 1 {
		t.Fatalf("events without a session id must be ignored, got %v", ids(all))
	}
}

func TestRecorder_NilSafe(t *testing.T) {
	var rec *Recorder
	rec.Emit(lib.Event{Kind: lib.EventReady, SessionID: "s"})
	NewRecorder(nil).Emit(lib.Event{Kind: lib.EventReady, SessionID: "s"})
}

func ids(sessions []Session) []string {
	out := make([]string, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.SessionID)
	}
	return out
}
