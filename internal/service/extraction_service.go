package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taskmind/taskmind-api/internal/domain"
	"github.com/taskmind/taskmind-api/internal/extraction"
	"github.com/taskmind/taskmind-api/internal/notify"
	"github.com/taskmind/taskmind-api/internal/store"
)

// TaskExtractor is the slice of the extraction pipeline the service layer
// depends on. Satisfied by *extraction.Extractor.
type TaskExtractor interface {
	ExtractFromText(ctx context.Context, text string) (*domain.Task, error)
	ExtractFromMessage(ctx context.Context, msg extraction.Message) (*domain.Task, error)
}

// ReminderScheduler is the slice of the reminder subsystem the service layer
// depends on. Satisfied by *reminder.Scheduler.
type ReminderScheduler interface {
	Schedule(task domain.Task)
	ScheduleAll(tasks []domain.Task)
	Cancel(taskID string)
	Disable(taskID string)
	Enable(taskID string, task *domain.Task)
	Enabled(taskID string) bool
}

// ExtractionService runs the extraction pipeline end to end: extract,
// persist, schedule reminders, notify.
type ExtractionService struct {
	extractor TaskExtractor
	source    extraction.MessageSource
	taskStore store.TaskStore
	scheduler ReminderScheduler
	notifier  notify.Notifier
	logger    *slog.Logger
	fetchMax  int
}

// NewExtractionService creates an ExtractionService. source may be nil when
// no mail account is configured; RunMailExtraction then returns
// ErrNoMailSource.
func NewExtractionService(
	extractor TaskExtractor,
	source extraction.MessageSource,
	taskStore store.TaskStore,
	scheduler ReminderScheduler,
	notifier notify.Notifier,
	logger *slog.Logger,
	fetchMax int,
) *ExtractionService {
	if fetchMax <= 0 {
		fetchMax = 10
	}
	return &ExtractionService{
		extractor: extractor,
		source:    source,
		taskStore: taskStore,
		scheduler: scheduler,
		notifier:  notifier,
		logger:    logger.With("component", "extraction_service"),
		fetchMax:  fetchMax,
	}
}

// ExtractFromText extracts at most one task from free text, persists it,
// schedules its reminders and announces the result. A nil task with nil
// error means the text contained no task.
func (s *ExtractionService) ExtractFromText(ctx context.Context, text string) (*domain.Task, error) {
	task, err := s.extractor.ExtractFromText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract task from text: %w", err)
	}
	if task == nil {
		s.logger.InfoContext(ctx, "no task found in text input")
		s.notifier.Dispatch(ctx, "No task found", "The text did not contain an actionable task.", notify.SeverityInfo)
		return nil, nil
	}

	if err := s.appendTasks(ctx, []domain.Task{*task}); err != nil {
		return nil, err
	}

	s.scheduler.Schedule(*task)
	s.announce(ctx, []domain.Task{*task})
	return task, nil
}

// ExtractFromMessages runs extraction over a batch of mail messages. A
// failure on one message is logged and skipped so the rest of the batch
// still goes through; the returned slice preserves the input order of the
// messages that yielded tasks.
func (s *ExtractionService) ExtractFromMessages(ctx context.Context, msgs []extraction.Message) ([]domain.Task, error) {
	var extracted []domain.Task
	for _, msg := range msgs {
		task, err := s.extractor.ExtractFromMessage(ctx, msg)
		if err != nil {
			s.logger.WarnContext(ctx, "extraction failed for message, skipping",
				"message_id", msg.ID,
				"error", err)
			continue
		}
		if task == nil {
			continue
		}
		extracted = append(extracted, *task)
	}

	if len(extracted) == 0 {
		s.logger.InfoContext(ctx, "no tasks extracted from message batch",
			"messages", len(msgs))
		return nil, nil
	}

	if err := s.appendTasks(ctx, extracted); err != nil {
		return nil, err
	}

	s.scheduler.ScheduleAll(extracted)
	s.announce(ctx, extracted)
	return extracted, nil
}

// RunMailExtraction fetches recent messages from the configured mail source
// and runs ExtractFromMessages over them.
func (s *ExtractionService) RunMailExtraction(ctx context.Context) ([]domain.Task, error) {
	if s.source == nil {
		return nil, ErrNoMailSource
	}

	msgs, err := s.source.FetchRecent(ctx, s.fetchMax)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent messages: %w", err)
	}
	s.logger.InfoContext(ctx, "fetched recent messages", "count", len(msgs))

	return s.ExtractFromMessages(ctx, msgs)
}

// appendTasks loads the stored collection, appends the new tasks and saves
// the whole collection back.
func (s *ExtractionService) appendTasks(ctx context.Context, tasks []domain.Task) error {
	existing, err := s.taskStore.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	if err := s.taskStore.SaveTasks(ctx, append(existing, tasks...)); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// announce dispatches the extraction summary notification: the task count
// plus up to three titles.
func (s *ExtractionService) announce(ctx context.Context, tasks []domain.Task) {
	titles := make([]string, 0, 3)
	for i, t := range tasks {
		if i == 3 {
			break
		}
		titles = append(titles, t.Title)
	}

	message := strings.Join(titles, ", ")
	if rest := len(tasks) - len(titles); rest > 0 {
		message += fmt.Sprintf(" and %d more", rest)
	}

	noun := "tasks"
	if len(tasks) == 1 {
		noun = "task"
	}
	title := fmt.Sprintf("%d %s extracted", len(tasks), noun)

	s.notifier.Dispatch(ctx, title, message, notify.SeveritySuccess)
}
