package store

import (
	"context"

	"github.com/taskmind/taskmind-api/internal/domain"
)

// TaskStore persists the task collection as a whole.
type TaskStore interface {
	// LoadTasks returns every persisted task. An empty store yields an
	// empty slice, not an error.
	LoadTasks(ctx context.Context) ([]domain.Task, error)

	// SaveTasks replaces the entire persisted collection with the given
	// tasks. A failed save must not corrupt previously persisted state.
	SaveTasks(ctx context.Context, tasks []domain.Task) error
}
