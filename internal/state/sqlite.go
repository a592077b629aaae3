package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// counterName is the row holding the task-trace counter.
const counterName = "next-id"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS counters (
    name       TEXT PRIMARY KEY,
    next       INTEGER NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore keeps the counter in a local SQLite database in WAL mode.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLiteStore opens (or creates) the database at path, creating its
// parent directory and the schema if needed.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("state: open database: %w", err)
	}

	// SQLite has a single writer; one pooled connection keeps the PRAGMAs
	// below in effect for every statement.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("state: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("state: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("state: create schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.path }

// Load returns the stored counter, or 1 when no row exists yet.
func (s *SQLiteStore) Load(ctx context.Context) (int, error) {
	var next int
	err := s.db.QueryRowContext(ctx, "SELECT next FROM counters WHERE name = ?", counterName).Scan(&next)
	if errors.Is(err, sql.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("state: load counter: %w", err)
	}
	if next < 0 {
		return 0, fmt.Errorf("state: load counter: %w: negative next %d", ErrCorrupt, next)
	}
	return next, nil
}

// Store upserts the counter row.
func (s *SQLiteStore) Store(ctx context.Context, next int) error {
	if err := checkNext(next); err != nil {
		return err
	}
	const q = `
		INSERT INTO counters (name, next, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET next = excluded.next, updated_at = CURRENT_TIMESTAMP`
	if _, err := s.db.ExecContext(ctx, q, counterName, next); err != nil {
		return fmt.Errorf("state: store counter %d: %w", next, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("state: close database: %w", err)
	}
	return nil
}
