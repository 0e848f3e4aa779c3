package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskmind/taskmind-api/internal/domain"
	"github.com/taskmind/taskmind-api/internal/store"
)

// TaskUpdate carries a partial update for a task. Nil fields are left
// unchanged; ClearDueDate removes the due date entirely.
type TaskUpdate struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	StartTime    *time.Time
	EndTime      *time.Time
	UrgencyLevel *int
	Category     *string
	Status       *string
}

// TaskService provides CRUD-style operations over the task collection and
// keeps the reminder scheduler consistent with every mutation.
type TaskService struct {
	taskStore store.TaskStore
	scheduler ReminderScheduler
	logger    *slog.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(taskStore store.TaskStore, scheduler ReminderScheduler, logger *slog.Logger) *TaskService {
	return &TaskService{
		taskStore: taskStore,
		scheduler: scheduler,
		logger:    logger.With("component", "task_service"),
	}
}

// ListTasks returns all stored tasks.
func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskStore.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns the task with the given ID, or ErrTaskNotFound.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	tasks, err := s.taskStore.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			return &tasks[i], nil
		}
	}
	return nil, ErrTaskNotFound
}

// UpdateTask applies a partial update to the task with the given ID and
// persists the whole collection. Reminder state follows the mutation: a
// changed due date reschedules, a cleared due date or a completed status
// cancels.
func (s *TaskService) UpdateTask(ctx context.Context, taskID string, update TaskUpdate) (*domain.Task, error) {
	tasks, err := s.taskStore.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	idx := -1
	for i := range tasks {
		if tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrTaskNotFound
	}

	task := &tasks[idx]
	dueChanged := false

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.ClearDueDate {
		if task.DueDate != nil {
			dueChanged = true
		}
		task.DueDate = nil
	} else if update.DueDate != nil {
		if task.DueDate == nil || !task.DueDate.Equal(*update.DueDate) {
			dueChanged = true
		}
		due := update.DueDate.UTC()
		task.DueDate = &due
	}
	if update.StartTime != nil {
		start := update.StartTime.UTC()
		task.StartTime = &start
	}
	if update.EndTime != nil {
		end := update.EndTime.UTC()
		task.EndTime = &end
	}
	if update.UrgencyLevel != nil {
		task.UrgencyLevel = domain.ClampUrgency(*update.UrgencyLevel)
	}
	if update.Category != nil {
		task.Category = domain.NormalizeCategory(*update.Category)
	}
	if update.Status != nil {
		status, err := domain.ParseStatus(*update.Status)
		if err != nil {
			return nil, fmt.Errorf("invalid status %q: %w", *update.Status, err)
		}
		task.Status = status
	}

	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task after update: %w", err)
	}

	if err := s.taskStore.SaveTasks(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to save tasks: %w", err)
	}

	switch {
	case task.Status == domain.StatusCompleted:
		s.scheduler.Cancel(task.ID)
	case dueChanged && task.DueDate == nil:
		s.scheduler.Cancel(task.ID)
	case dueChanged:
		s.scheduler.Schedule(*task)
	}

	s.logger.InfoContext(ctx, "task updated", "task_id", task.ID)
	return task, nil
}

// DeleteTask removes the task with the given ID from the collection and
// cancels its pending reminders.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	tasks, err := s.taskStore.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	remaining := make([]domain.Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == taskID {
			found = true
			continue
		}
		remaining = append(remaining, t)
	}
	if !found {
		return ErrTaskNotFound
	}

	if err := s.taskStore.SaveTasks(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	s.scheduler.Cancel(taskID)
	s.logger.InfoContext(ctx, "task deleted", "task_id", taskID)
	return nil
}

// SetRemindersEnabled toggles reminders for a single task. Enabling a task
// with a due date re-arms its lead-time timers.
func (s *TaskService) SetRemindersEnabled(ctx context.Context, taskID string, enabled bool) error {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	if enabled {
		s.scheduler.Enable(taskID, task)
	} else {
		s.scheduler.Disable(taskID)
	}
	s.logger.InfoContext(ctx, "reminders toggled", "task_id", taskID, "enabled", enabled)
	return nil
}

// RemindersEnabled reports whether reminders are enabled for the task.
func (s *TaskService) RemindersEnabled(ctx context.Context, taskID string) (bool, error) {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return false, err
	}
	return s.scheduler.Enabled(taskID), nil
}
