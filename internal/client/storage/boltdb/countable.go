package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/P3rtang/tallyWeb-sub000/internal/client/storage"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// SaveCountable stores or replaces a node in BoltDB
func (s *Storage) SaveCountable(ctx context.Context, c models.Countable) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	id := c.ID()
	if id.IsNil() {
		return fmt.Errorf("countable has no id")
	}

	// Сериализуем узел в JSON
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal countable: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketCountables)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		// Сохраняем по ключу ID
		if err := bucket.Put([]byte(id.String()), data); err != nil {
			return fmt.Errorf("failed to save countable: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetCountable retrieves a node by ID
func (s *Storage) GetCountable(ctx context.Context, id models.CountableID) (models.Countable, error) {
	if s.db == nil {
		return models.Countable{}, storage.ErrStorageClosed
	}

	var c models.Countable

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCountables)
		if bucket == nil {
			return storage.ErrCountableNotFound
		}

		data := bucket.Get([]byte(id.String()))
		if data == nil {
			return storage.ErrCountableNotFound
		}

		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("failed to unmarshal countable: %w", err)
		}

		return nil
	})

	if err != nil {
		return models.Countable{}, err
	}

	return c, nil
}

// GetAllCountables returns all nodes (including archived ones)
// Keys are canonical uuid strings, so cursor order is id order
func (s *Storage) GetAllCountables(ctx context.Context) ([]models.Countable, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var nodes []models.Countable

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCountables)
		if bucket == nil {
			// Нет bucket - возвращаем пустой массив
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var c models.Countable
			if err := json.Unmarshal(v, &c); err != nil {
				return fmt.Errorf("failed to unmarshal countable %s: %w", k, err)
			}
			nodes = append(nodes, c)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get all countables: %w", err)
	}

	return nodes, nil
}

// ReplaceAll replaces the cached tree with nodes in a single transaction
func (s *Storage) ReplaceAll(ctx context.Context, nodes []models.Countable) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	encoded := make(map[string][]byte, len(nodes))
	for _, c := range nodes {
		id := c.ID()
		if id.IsNil() {
			return fmt.Errorf("countable has no id")
		}
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal countable %s: %w", id, err)
		}
		encoded[id.String()] = data
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketCountables); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("failed to drop bucket: %w", err)
		}

		bucket, err := tx.CreateBucket(bucketCountables)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		for key, data := range encoded {
			if err := bucket.Put([]byte(key), data); err != nil {
				return fmt.Errorf("failed to save countable %s: %w", key, err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// Clear removes all nodes from storage
func (s *Storage) Clear(ctx context.Context) error {
	return s.ReplaceAll(ctx, nil)
}
