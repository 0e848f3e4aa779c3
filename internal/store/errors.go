package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store.
	ErrNotFound = errors.New("entity not found")

	// ErrLoadFailed is returned when the persisted collection cannot be
	// read.
	ErrLoadFailed = errors.New("failed to load tasks")

	// ErrSaveFailed is returned when replacing the persisted collection
	// fails. In-memory state is unaffected.
	ErrSaveFailed = errors.New("failed to save tasks")
)
