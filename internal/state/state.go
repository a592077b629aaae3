// Package state persists the next task-trace counter value. Stores share the
// Load/Store contract of traceid.Store: a missing value reads as 1 and a
// present value that cannot be read as a non-negative integer is ErrCorrupt.
package state

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// DefaultDir is the state directory, relative to the working directory.
const DefaultDir = ".trace"

// Backing file names inside the state directory.
const (
	JSONFileName   = "next-id.json"
	SQLiteFileName = "next-id.db"
)

// ErrCorrupt is returned when persisted counter state exists but cannot be
// read as a non-negative integer.
var ErrCorrupt = errors.New("counter state is corrupt")

// Kind names a counter store backend.
type Kind string

// Supported store kinds.
const (
	KindJSON   Kind = "json"
	KindSQLite Kind = "sqlite"
)

// ParseKind validates a store kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindJSON, KindSQLite:
		return k, nil
	default:
		return "", fmt.Errorf("unknown store %q (want %q or %q)", s, KindJSON, KindSQLite)
	}
}

// Counter is an opened counter store.
type Counter interface {
	Load(ctx context.Context) (int, error)
	Store(ctx context.Context, next int) error
	// Path is the file backing the store.
	Path() string
	Close() error
}

// Open opens the store of the given kind inside dir, creating dir first.
func Open(ctx context.Context, kind Kind, dir string) (Counter, error) {
	switch kind {
	case KindJSON:
		return OpenFileStore(filepath.Join(dir, JSONFileName))
	case KindSQLite:
		return OpenSQLiteStore(ctx, filepath.Join(dir, SQLiteFileName))
	default:
		return nil, fmt.Errorf("state: unknown store %q", kind)
	}
}

// checkNext rejects values a counter may never hold.
func checkNext(next int) error {
	if next < 0 {
		return fmt.Errorf("state: negative counter %d", next)
	}
	return nil
}
