package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
)

// LoadStore reads the cached tree into a store owned by owner
func LoadStore(ctx context.Context, cs CountableStorage, owner uuid.UUID, opts ...countable.Option) (*countable.Store, error) {
	nodes, err := cs.GetAllCountables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load countables: %w", err)
	}

	s, err := countable.FromNodes(owner, nodes, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build store: %w", err)
	}

	return s, nil
}

// SaveStore writes the store back to the cache if it changed since the last save.
// It reports whether anything was written.
func SaveStore(ctx context.Context, cs CountableStorage, s *countable.Store) (bool, error) {
	if !s.IsChanged() {
		return false, nil
	}

	nodes, err := s.Nodes()
	if err != nil {
		return false, fmt.Errorf("failed to snapshot store: %w", err)
	}

	if err := cs.ReplaceAll(ctx, nodes); err != nil {
		return false, fmt.Errorf("failed to save countables: %w", err)
	}

	s.MarkSaved()
	return true, nil
}
