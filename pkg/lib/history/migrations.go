package history

import (
	"context"
	"database/sql"
	"fmt"
)

type migration struct {
	Version int
	Stmts   []string
}

var migrations = []migration{
	{
		Version: 1,
		Stmts: []string{
			`CREATE TABLE sessions(
	session_id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL DEFAULT '',
	command TEXT NOT NULL DEFAULT '',
	working_directory TEXT NOT NULL DEFAULT '',
	client_port INTEGER NOT NULL DEFAULT 0,
	server_port INTEGER NOT NULL DEFAULT 0,
	started_at TEXT NOT NULL,
	ready_at TEXT,
	url TEXT NOT NULL DEFAULT '',
	ended_at TEXT,
	exit_code INTEGER,
	premature INTEGER NOT NULL DEFAULT 0
)`,
			`CREATE INDEX idx_sessions_started_at ON sessions(started_at DESC)`,
		},
	},
}

func applyMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations(version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM schema_migrations WHERE version = ?`, m.Version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx for migration %d: %w", m.Version, err)
		}
		for _, stmt := range m.Stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("apply migration %d: %w", m.Version, err)
			}
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations(version, applied_at) VALUES (?, datetime('now'))`, m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
		logger.Printf("Applied migration %d", m.Version)
	}
	return nil
}
