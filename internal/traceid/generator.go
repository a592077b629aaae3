package traceid

import (
	"context"
	"fmt"
)

// Store persists the next counter value between invocations.
type Store interface {
	// Load returns the next counter value to issue, or 1 when nothing has
	// been stored yet.
	Load(ctx context.Context) (int, error)

	// Store replaces the persisted value with next.
	Store(ctx context.Context, next int) error
}

// Generator issues IDs backed by a Store.
type Generator struct {
	Store Store
}

// NewGenerator returns a Generator reading and writing counters through s.
func NewGenerator(s Store) *Generator {
	return &Generator{Store: s}
}

// Next loads the counter, builds the ID, and stores counter+1. The ID is only
// returned once the advanced counter has been persisted.
func (g *Generator) Next(ctx context.Context, phase, checkpoint string) (ID, error) {
	counter, err := g.Store.Load(ctx)
	if err != nil {
		return ID{}, fmt.Errorf("loading counter: %w", err)
	}

	id := ID{Counter: counter, Phase: phase, Checkpoint: checkpoint}

	if err := g.Store.Store(ctx, counter+1); err != nil {
		return ID{}, fmt.Errorf("storing counter: %w", err)
	}
	return id, nil
}
