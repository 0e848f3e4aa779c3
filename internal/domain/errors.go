package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrTaskIDEmpty is returned when a task ID is empty.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrInvalidUrgency is returned when an urgency level is outside 1-5.
	ErrInvalidUrgency = errors.New("urgency level must be between 1 and 5")

	// ErrInvalidStatus is returned when a task status is not recognized.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidTimeRange is returned when a task's end time precedes its
	// start time.
	ErrInvalidTimeRange = errors.New("end time cannot precede start time")
)
