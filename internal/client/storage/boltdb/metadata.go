package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/P3rtang/tallyWeb-sub000/internal/client/storage"
)

const (
	keyOwnerID      = "owner_id"
	keyLastSyncTime = "last_sync_time"
)

// SaveOwnerID saves the owner of the local tree
func (s *Storage) SaveOwnerID(ctx context.Context, owner uuid.UUID) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyOwnerID), owner[:]); err != nil {
			return fmt.Errorf("failed to save owner id: %w", err)
		}

		return nil
	})
}

// GetOwnerID retrieves the owner of the local tree
func (s *Storage) GetOwnerID(ctx context.Context) (uuid.UUID, error) {
	if s.db == nil {
		return uuid.Nil, storage.ErrStorageClosed
	}

	var owner uuid.UUID

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(keyOwnerID))
		if data == nil {
			return storage.ErrOwnerNotSet
		}

		parsed, err := uuid.FromBytes(data)
		if err != nil {
			return fmt.Errorf("failed to parse owner id: %w", err)
		}
		owner = parsed
		return nil
	})

	if err != nil {
		return uuid.Nil, err
	}

	return owner, nil
}

// SaveLastSyncTime saves the time of the last successful sync
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Храним unix nano в big-endian
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(t.UnixNano()))

		if err := bucket.Put([]byte(keyLastSyncTime), timestampBytes); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSyncTime retrieves the time of the last successful sync
// Returns the zero time if no sync has been performed yet
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var last time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		timestampBytes := bucket.Get([]byte(keyLastSyncTime))
		if timestampBytes == nil {
			// Синхронизации еще не было
			return nil
		}

		last = time.Unix(0, int64(binary.BigEndian.Uint64(timestampBytes))).UTC()
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return last, nil
}
