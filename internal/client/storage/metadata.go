package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveOwnerID saves the owner of the local tree
	SaveOwnerID(ctx context.Context, owner uuid.UUID) error

	// GetOwnerID retrieves the owner of the local tree
	// Returns ErrOwnerNotSet if no owner has been saved yet
	GetOwnerID(ctx context.Context) (uuid.UUID, error)

	// SaveLastSyncTime saves the time of the last successful sync
	SaveLastSyncTime(ctx context.Context, t time.Time) error

	// GetLastSyncTime retrieves the time of the last successful sync
	// Returns the zero time if no sync has been performed yet
	GetLastSyncTime(ctx context.Context) (time.Time, error)
}
