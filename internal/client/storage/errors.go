package storage

import "errors"

// Common client storage errors
var (
	// ErrCountableNotFound indicates that no countable is stored under the id
	ErrCountableNotFound = errors.New("countable not found")

	// ErrOwnerNotSet indicates that the local cache has no owner yet
	ErrOwnerNotSet = errors.New("owner is not set")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
