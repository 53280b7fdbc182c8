package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// SnapshotVersion текущая версия формата экспорта
const SnapshotVersion = 1

var (
	// ErrUnsupportedVersion indicates a snapshot written by an incompatible version
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrEmptySnapshot indicates a snapshot without a store payload
	ErrEmptySnapshot = errors.New("snapshot has no store")
)

// Snapshot is the export envelope of a countable tree
type Snapshot struct {
	ExportedAt time.Time       `json:"exported_at"` // время экспорта
	Store      json.RawMessage `json:"store"`       // структурная кодировка дерева
	Version    int             `json:"version"`     // версия формата
}

// NewSnapshot wraps an encoded store
func NewSnapshot(store []byte, exportedAt time.Time) *Snapshot {
	return &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: exportedAt.UTC(),
		Store:      json.RawMessage(store),
	}
}

// Validate checks the version and payload of the envelope
func (s *Snapshot) Validate() error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	if len(s.Store) == 0 || string(s.Store) == "null" {
		return ErrEmptySnapshot
	}
	return nil
}

// Encode writes the snapshot as indented JSON
func (s *Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads and validates a snapshot
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
