package state

import (
	"context"
	"sync"
)

// Memory is an in-process counter store. The zero value is empty and loads
// as 1.
type Memory struct {
	mu   sync.Mutex
	next int
	set  bool
}

// NewMemory returns a Memory store that already holds next.
func NewMemory(next int) *Memory {
	return &Memory{next: next, set: true}
}

// Load returns the held value, or 1 when nothing has been stored.
func (m *Memory) Load(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return 1, nil
	}
	if m.next < 0 {
		return 0, ErrCorrupt
	}
	return m.next, nil
}

// Store replaces the held value.
func (m *Memory) Store(ctx context.Context, next int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkNext(next); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next, m.set = next, true
	return nil
}
