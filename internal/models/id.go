package models

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// CountableID is the handle of a node in a countable store.
// It is a plain value type: comparable, usable as a map key and totally ordered.
type CountableID uuid.UUID

// NilCountableID is the zero identifier.
var NilCountableID CountableID

// NewCountableID generates a fresh random identifier.
func NewCountableID() CountableID {
	return CountableID(uuid.New())
}

// ParseCountableID parses the canonical textual form of an identifier.
func ParseCountableID(s string) (CountableID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilCountableID, fmt.Errorf("invalid countable id %q: %w", s, err)
	}
	return CountableID(u), nil
}

// UUID returns the underlying uuid.
func (id CountableID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

func (id CountableID) String() string {
	return uuid.UUID(id).String()
}

// Compare orders identifiers by their raw bytes. It returns -1, 0 or +1.
func (id CountableID) Compare(other CountableID) int {
	return bytes.Compare(id[:], other[:])
}

// IsNil reports whether id is the zero identifier.
func (id CountableID) IsNil() bool {
	return id == NilCountableID
}

// MarshalText implements encoding.TextMarshaler.
func (id CountableID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *CountableID) UnmarshalText(data []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(data); err != nil {
		return err
	}
	*id = CountableID(u)
	return nil
}
