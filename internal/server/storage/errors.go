package storage

import "errors"

// Common storage errors
var (
	// ErrOwnerMismatch indicates that a node belongs to a different owner than the one being saved
	ErrOwnerMismatch = errors.New("countable belongs to another owner")

	// ErrInvalidCountable indicates a node whose kind does not match its payload
	ErrInvalidCountable = errors.New("invalid countable")
)
