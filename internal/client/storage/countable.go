package storage

import (
	"context"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

//go:generate moq -out countablestorage_mock.go . CountableStorage

// CountableStorage defines interface for the offline cache of the countable tree
type CountableStorage interface {
	// SaveCountable stores or replaces a single node
	SaveCountable(ctx context.Context, c models.Countable) error

	// GetCountable retrieves a node by ID
	// Returns ErrCountableNotFound if the node doesn't exist
	GetCountable(ctx context.Context, id models.CountableID) (models.Countable, error)

	// GetAllCountables returns every node, archived ones included, in ID order
	GetAllCountables(ctx context.Context) ([]models.Countable, error)

	// ReplaceAll atomically replaces the whole cache with nodes
	// Used after a sync and by import
	ReplaceAll(ctx context.Context, nodes []models.Countable) error

	// Clear removes all nodes from storage
	Clear(ctx context.Context) error
}
