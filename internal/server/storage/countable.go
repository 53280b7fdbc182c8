package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// CountableStorage defines interface for the authoritative countable tree persistence
type CountableStorage interface {
	// GetOwnerCountables retrieves every counter and phase row of an owner, archived ones included.
	// Rows only know their parent: children lists of returned counters are empty
	// Returns empty slice if the owner has no rows
	GetOwnerCountables(ctx context.Context, owner uuid.UUID) ([]models.Countable, error)

	// SaveCountables creates or replaces the given nodes in a single transaction.
	// A node whose kind changed moves to the other table
	// Returns ErrOwnerMismatch if a node belongs to another owner
	SaveCountables(ctx context.Context, owner uuid.UUID, nodes []models.Countable) error

	// ListOwners returns every owner that has at least one row, in ascending order
	ListOwners(ctx context.Context) ([]uuid.UUID, error)
}
