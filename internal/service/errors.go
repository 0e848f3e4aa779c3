package service

import (
	"errors"
	"fmt"

	"github.com/taskmind/taskmind-api/internal/store"
)

// Common sentinel errors for the service layer.
var (
	// ErrTaskNotFound indicates that the referenced task does not exist.
	// It wraps store.ErrNotFound so callers can match either level.
	ErrTaskNotFound = fmt.Errorf("task not found: %w", store.ErrNotFound)

	// ErrNoMailSource indicates mail extraction was requested but no mail
	// source is configured.
	ErrNoMailSource = errors.New("no mail source configured")
)
