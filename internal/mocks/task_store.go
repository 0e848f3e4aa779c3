// Package mocks provides hand-written test doubles for the application's
// interfaces. The task store double also backs the server when no database
// is configured.
package mocks

import (
	"context"
	"sync"

	"github.com/taskmind/taskmind-api/internal/domain"
)

// TaskStore is an in-memory store.TaskStore with whole-collection
// read/replace semantics and optional error injection.
type TaskStore struct {
	mu    sync.Mutex
	tasks []domain.Task

	// LoadErr and SaveErr, when set, are returned by the corresponding
	// method instead of touching state.
	LoadErr error
	SaveErr error

	// SaveCalls counts SaveTasks invocations.
	SaveCalls int
}

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// LoadTasks returns a copy of the stored collection.
func (s *TaskStore) LoadTasks(_ context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// SaveTasks replaces the stored collection.
func (s *TaskStore) SaveTasks(_ context.Context, tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.tasks = make([]domain.Task, len(tasks))
	copy(s.tasks, tasks)
	return nil
}
