// Package postgres implements the store interfaces against PostgreSQL
// using pgx.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmind/taskmind-api/internal/domain"
	"github.com/taskmind/taskmind-api/internal/store"
)

// TaskStore implements store.TaskStore with whole-collection read/replace
// semantics: SaveTasks swaps the full table contents inside one transaction
// so a failed save leaves the previous collection intact.
type TaskStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewTaskStore creates a TaskStore on the given connection pool.
func NewTaskStore(pool *pgxpool.Pool, logger *slog.Logger) *TaskStore {
	return &TaskStore{
		pool:   pool,
		logger: logger.With("component", "postgres_task_store"),
	}
}

const loadQuery = `
	SELECT id, title, description, due_date, start_time, end_time,
	       urgency_level, category, status, source, email_id, created_at
	FROM tasks
	ORDER BY created_at, id
`

const insertQuery = `
	INSERT INTO tasks (id, title, description, due_date, start_time, end_time,
	                   urgency_level, category, status, source, email_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

// LoadTasks returns every persisted task. Rows are coerced through the
// canonical schema on the way out so stale producer spellings never leak
// into the application.
func (s *TaskStore) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.pool.Query(ctx, loadQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrLoadFailed, err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var (
			t        domain.Task
			category string
			status   string
			source   string
		)
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.DueDate, &t.StartTime, &t.EndTime,
			&t.UrgencyLevel, &category, &status, &source, &t.EmailID, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", store.ErrLoadFailed, err)
		}

		t.Category = domain.NormalizeCategory(category)
		t.Source = domain.TaskSource(source)
		t.UrgencyLevel = domain.ClampUrgency(t.UrgencyLevel)

		parsed, err := domain.ParseStatus(status)
		if err != nil {
			s.logger.WarnContext(ctx, "unknown status in stored task, defaulting to pending",
				"task_id", t.ID,
				"status", status)
			parsed = domain.StatusPending
		}
		t.Status = parsed

		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrLoadFailed, err)
	}

	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// SaveTasks replaces the persisted collection with the given tasks.
func (s *TaskStore) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", store.ErrSaveFailed, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("%w: clear: %v", store.ErrSaveFailed, err)
	}

	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: invalid task %s: %v", store.ErrSaveFailed, t.ID, err)
		}
		if _, err := tx.Exec(ctx, insertQuery,
			t.ID, t.Title, t.Description, t.DueDate, t.StartTime, t.EndTime,
			t.UrgencyLevel, string(t.Category), string(t.Status), string(t.Source),
			t.EmailID, t.CreatedAt,
		); err != nil {
			return fmt.Errorf("%w: insert %s: %v", store.ErrSaveFailed, t.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", store.ErrSaveFailed, err)
	}

	s.logger.DebugContext(ctx, "task collection replaced", "count", len(tasks))
	return nil
}
