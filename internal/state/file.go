package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// record is the on-disk JSON shape: {"next": N}.
type record struct {
	Next *int `json:"next"`
}

// FileStore keeps the counter in a small JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a store for the JSON file at path without touching the
// filesystem.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// OpenFileStore returns a store for path after making sure its parent
// directory exists.
func OpenFileStore(path string) (*FileStore, error) {
	s := NewFileStore(path)
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	return s, nil
}

// Ensure creates the parent directory tree of the state file. It is
// idempotent.
func (s *FileStore) Ensure() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// Path returns the state file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the next counter value. A missing file reads as 1.
func (s *FileStore) Load(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("parsing %s: %w: %v", s.path, ErrCorrupt, err)
	}
	if rec.Next == nil {
		return 0, fmt.Errorf("parsing %s: %w: missing \"next\"", s.path, ErrCorrupt)
	}
	if *rec.Next < 0 {
		return 0, fmt.Errorf("parsing %s: %w: negative \"next\" %d", s.path, ErrCorrupt, *rec.Next)
	}
	return *rec.Next, nil
}

// Store overwrites the state file with next (write temp + rename).
func (s *FileStore) Store(ctx context.Context, next int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkNext(next); err != nil {
		return err
	}

	data, err := json.Marshal(record{Next: &next})
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming state file: %w", err)
	}
	return nil
}

// Close is a no-op; FileStore holds no open handles.
func (s *FileStore) Close() error { return nil }
