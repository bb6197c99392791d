// Package history records inspector sessions in a SQLite database so past
// launches can be listed after the daemon restarts.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

var logger = log.New(io.Discard, "history: ", log.LstdFlags)

// SetLogOutput redirects the package logger.
func SetLogOutput(w io.Writer) { logger.SetOutput(w) }

// Session is one launch of the inspector.
type Session struct {
	SessionID        string
	ProfileID        string
	Command          string
	WorkingDirectory string
	ClientPort       uint16
	ServerPort       uint16
	StartedAt        time.Time
	ReadyAt          *time.Time
	URL              string
	EndedAt          *time.Time
	ExitCode         *int
	Premature        bool
}

// Running reports whether no exit has been recorded.
func (s Session) Running() bool { return s.EndedAt == nil }

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies pending
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil && !errors.Is(err, os.ErrNotExist) {
		_ = db.Close()
		return nil, fmt.Errorf("chmod db path: %w", err)
	}
	if err := applyMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordStart inserts the session, or fills in its launch columns if a
// lifecycle event already created the row.
func (s *Store) RecordStart(ctx context.Context, sess Session) error {
	if sess.StartedAt.IsZero() {
		sess.StartedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO sessions(session_id, profile_id, command, working_directory, client_port, server_port, started_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(session_id) DO UPDATE SET
	profile_id=excluded.profile_id,
	command=excluded.command,
	working_directory=excluded.working_directory,
	client_port=excluded.client_port,
	server_port=excluded.server_port,
	started_at=excluded.started_at
`, sess.SessionID, sess.ProfileID, sess.Command, sess.WorkingDirectory, int(sess.ClientPort), int(sess.ServerPort), ts(sess.StartedAt))
	if err != nil {
		return fmt.Errorf("record start: %w", err)
	}
	return nil
}

// RecordReady stores the captured URL.
func (s *Store) RecordReady(ctx context.Context, sessionID, url string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO sessions(session_id, started_at, ready_at, url)
VALUES (?, ?, ?, ?)
ON CONFLICT(session_id) DO UPDATE SET
	ready_at=excluded.ready_at,
	url=excluded.url
`, sessionID, ts(at), ts(at), url)
	if err != nil {
		return fmt.Errorf("record ready: %w", err)
	}
	return nil
}

// RecordExit stores how the session ended.
func (s *Store) RecordExit(ctx context.Context, sessionID string, code *int, premature bool, at time.Time) error {
	var exitCode any
	if code != nil {
		exitCode = *code
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO sessions(session_id, started_at, ended_at, exit_code, premature)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(session_id) DO UPDATE SET
	ended_at=excluded.ended_at,
	exit_code=excluded.exit_code,
	premature=excluded.premature
`, sessionID, ts(at), ts(at), exitCode, boolToInt(premature))
	if err != nil {
		return fmt.Errorf("record exit: %w", err)
	}
	return nil
}

// Get returns a single session.
func (s *Store) Get(ctx context.Context, sessionID string) (Session, error) {
	row := s.db.QueryRowContext(ctx, selectSessions+` WHERE session_id = ?`, sessionID)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return sess, err
}

// ErrNotFound is returned by Get for unknown sessions.
var ErrNotFound = errors.New("not found")

// List returns the most recent sessions first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Session, error) {
	query := selectSessions + ` ORDER BY started_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}

// Prune deletes all but the keep most recent sessions and reports how many
// rows went away. keep <= 0 is a no-op.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx, `
DELETE FROM sessions WHERE rowid NOT IN (
	SELECT rowid FROM sessions ORDER BY started_at DESC, rowid DESC LIMIT ?
)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	if n > 0 {
		logger.Printf("Pruned %d sessions", n)
	}
	return n, nil
}

const selectSessions = `
SELECT session_id, profile_id, command, working_directory, client_port, server_port,
	started_at, ready_at, url, ended_at, exit_code, premature
FROM sessions`

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var (
		sess       Session
		clientPort int
		serverPort int
		startedAt  string
		readyAt    sql.NullString
		endedAt    sql.NullString
		exitCode   sql.NullInt64
		premature  int
	)
	if err := row.Scan(&sess.SessionID, &sess.ProfileID, &sess.Command, &sess.WorkingDirectory,
		&clientPort, &serverPort, &startedAt, &readyAt, &sess.URL, &endedAt, &exitCode, &premature); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, err
		}
		return Session{}, fmt.Errorf("scan session: %w", err)
	}
	sess.ClientPort = uint16(clientPort)
	sess.ServerPort = uint16(serverPort)
	sess.Premature = premature != 0

	var err error
	if sess.StartedAt, err = parseTS(startedAt); err != nil {
		return Session{}, fmt.Errorf("parse started_at: %w", err)
	}
	if sess.ReadyAt, err = parseNullableTS(readyAt); err != nil {
		return Session{}, fmt.Errorf("parse ready_at: %w", err)
	}
	if sess.EndedAt, err = parseNullableTS(endedAt); err != nil {
		return Session{}, fmt.Errorf("parse ended_at: %w", err)
	}
	if exitCode.Valid {
		code := int(exitCode.Int64)
		sess.ExitCode = &code
	}
	return sess, nil
}

// tsLayout keeps the fraction at a fixed width so that timestamps stored as
// TEXT sort chronologically.
const tsLayout = "2006-01-02T15:04:05.000000000Z07:00"

func ts(t time.Time) string {
	return t.UTC().Format(tsLayout)
}

// parseTS also accepts rows written with a trimmed fraction.
func parseTS(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func parseNullableTS(v sql.NullString) (*time.Time, error) {
	if !v.Valid {
		return nil, nil
	}
	t, err := parseTS(v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
