package countable

import "errors"

// Common store errors
var (
	// ErrNotFound indicates that the identifier is absent from the store
	ErrNotFound = errors.New("countable not found")

	// ErrLockFailed indicates that a node lock could not be acquired.
	// Only one node lock is ever held at a time, so this is a bug in the caller, not a data condition.
	ErrLockFailed = errors.New("failed to lock countable")

	// ErrCannotContainChildren indicates an attempt to add a child to a phase
	ErrCannotContainChildren = errors.New("countable cannot contain children")

	// ErrRequiresChild indicates a hunt type or probability query on a counter without children
	ErrRequiresChild = errors.New("countable requires at least one child")

	// ErrInvalidHuntType indicates an attempt to store Mixed or an unknown hunt type on a phase
	ErrInvalidHuntType = errors.New("invalid hunt type")

	// ErrPhaseRequiresParent indicates an attempt to create a phase without a parent counter
	ErrPhaseRequiresParent = errors.New("phase requires a parent")

	// ErrInvalidCountable indicates a snapshot entry whose kind does not match its payload
	ErrInvalidCountable = errors.New("invalid countable")
)

// isRecoverable reports whether err maps to a default value in the unchecked layer.
func isRecoverable(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrRequiresChild)
}
