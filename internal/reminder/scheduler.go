package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taskmind/taskmind-api/internal/config"
	"github.com/taskmind/taskmind-api/internal/domain"
	"github.com/taskmind/taskmind-api/internal/notify"
)

// LeadTime is an offset before a due date at which a reminder fires.
type LeadTime struct {
	Offset time.Duration
	Label  string
}

// DefaultLeadTimes are used when no lead times are configured.
var DefaultLeadTimes = []LeadTime{
	{Offset: 24 * time.Hour, Label: "1 day before"},
	{Offset: time.Hour, Label: "1 hour before"},
	{Offset: 10 * time.Minute, Label: "10 minutes before"},
}

// LeadTimesFromConfig converts configured lead times, falling back to the
// defaults for an empty list.
func LeadTimesFromConfig(cfgs []config.LeadTimeConfig) []LeadTime {
	if len(cfgs) == 0 {
		return DefaultLeadTimes
	}
	leads := make([]LeadTime, len(cfgs))
	for i, c := range cfgs {
		leads[i] = LeadTime{
			Offset: time.Duration(c.Minutes) * time.Minute,
			Label:  c.Label,
		}
	}
	return leads
}

// handle tracks one armed timer so it can be cancelled or removed after
// firing.
type handle struct {
	timer  *time.Timer
	lead   LeadTime
	fireAt time.Time
}

// Scheduler owns all reminder state: the active timer registry and the
// per-task disabled set. Construct one per process and share it by
// reference; all methods are safe for concurrent use.
type Scheduler struct {
	logger   *slog.Logger
	notifier notify.Notifier
	leads    []LeadTime

	mu       sync.Mutex
	active   map[string][]*handle
	disabled map[string]struct{}

	// now is replaced in tests.
	now func() time.Time
}

// NewScheduler creates a Scheduler with the given lead times (closest to
// the due date last) and notification sink.
func NewScheduler(leads []LeadTime, notifier notify.Notifier, logger *slog.Logger) *Scheduler {
	if len(leads) == 0 {
		leads = DefaultLeadTimes
	}
	return &Scheduler{
		logger:   logger.With("component", "reminder_scheduler"),
		notifier: notifier,
		leads:    leads,
		active:   make(map[string][]*handle),
		disabled: make(map[string]struct{}),
		now:      time.Now,
	}
}

// Schedule arms reminder timers for the task. Existing timers for the same
// task are always cancelled first, so repeated calls are idempotent and
// rescheduling after an edit is safe. No-op when the task has no due date
// or its reminders are disabled. Lead times that already elapsed are
// silently skipped, never fired immediately.
func (s *Scheduler) Schedule(task domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked(task.ID)

	if _, off := s.disabled[task.ID]; off {
		s.logger.Debug("reminders disabled for task, not scheduling",
			"task_id", task.ID)
		return
	}

	if !task.HasDueDate() {
		s.logger.Debug("task has no due date, not scheduling reminders",
			"task_id", task.ID)
		return
	}

	now := s.now()
	due := *task.DueDate
	var handles []*handle

	for _, lead := range s.leads {
		fireAt := due.Add(-lead.Offset)
		if !fireAt.After(now) {
			s.logger.Debug("reminder lead time already elapsed, skipping",
				"task_id", task.ID,
				"lead", lead.Label)
			continue
		}

		h := &handle{lead: lead, fireAt: fireAt}
		taskCopy := task
		h.timer = time.AfterFunc(fireAt.Sub(now), func() {
			s.fire(taskCopy, h)
		})
		handles = append(handles, h)

		s.logger.Debug("reminder scheduled",
			"task_id", task.ID,
			"lead", lead.Label,
			"fire_at", fireAt)
	}

	if len(handles) > 0 {
		s.active[task.ID] = handles
	}
}

// ScheduleAll arms reminders for every task whose reminders are not
// disabled; used to re-arm after startup from persisted tasks.
func (s *Scheduler) ScheduleAll(tasks []domain.Task) {
	for _, task := range tasks {
		if s.Enabled(task.ID) {
			s.Schedule(task)
		}
	}
	s.logger.Info("scheduled reminders for task batch", "count", len(tasks))
}

// Cancel clears every armed timer for the task id. Calling it for an id
// with no active timers is a no-op, not an error.
func (s *Scheduler) Cancel(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(taskID)
}

func (s *Scheduler) cancelLocked(taskID string) {
	handles, ok := s.active[taskID]
	if !ok {
		return
	}
	for _, h := range handles {
		h.timer.Stop()
	}
	delete(s.active, taskID)
	s.logger.Debug("cancelled reminders for task", "task_id", taskID)
}

// Disable cancels any active timers and marks the task id so that
// subsequent Schedule calls are no-ops until Enable is called. Sticky.
func (s *Scheduler) Disable(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(taskID)
	s.disabled[taskID] = struct{}{}
}

// Enable clears the disabled mark. When a task with a due date is supplied
// its reminders are (re)scheduled immediately.
func (s *Scheduler) Enable(taskID string, task *domain.Task) {
	s.mu.Lock()
	delete(s.disabled, taskID)
	s.mu.Unlock()

	if task != nil && task.HasDueDate() {
		s.Schedule(*task)
	}
}

// Enabled reports whether reminders are enabled for the task id. Tasks are
// enabled unless explicitly disabled.
func (s *Scheduler) Enabled(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, off := s.disabled[taskID]
	return !off
}

// ActiveCount returns the number of armed timers for the task id.
func (s *Scheduler) ActiveCount(taskID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active[taskID])
}

// Stop cancels every armed timer; used on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.active {
		s.cancelLocked(id)
	}
}

// fire dispatches the reminder notification and removes only its own handle
// from the tracked set, leaving sibling lead-time reminders armed. A callback
// whose handle was already removed by Cancel or Disable lost the race with
// timer.Stop and must not dispatch.
func (s *Scheduler) fire(task domain.Task, fired *handle) {
	s.mu.Lock()
	handles := s.active[task.ID]
	tracked := false
	remaining := handles[:0]
	for _, h := range handles {
		if h == fired {
			tracked = true
			continue
		}
		remaining = append(remaining, h)
	}
	if !tracked {
		s.mu.Unlock()
		s.logger.Debug("dropping reminder for cancelled task",
			"task_id", task.ID,
			"lead", fired.lead.Label)
		return
	}
	if len(remaining) == 0 {
		delete(s.active, task.ID)
	} else {
		s.active[task.ID] = remaining
	}
	s.mu.Unlock()

	title := fmt.Sprintf("Reminder: %s", task.Title)
	message := fmt.Sprintf("Task due %s", fired.lead.Label)
	if task.HasDueDate() {
		message = fmt.Sprintf("Task due %s: %s", fired.lead.Label,
			task.DueDate.Format("Mon Jan 2 15:04"))
	}

	s.logger.Info("reminder fired",
		"task_id", task.ID,
		"lead", fired.lead.Label)

	if s.notifier != nil {
		s.notifier.Dispatch(context.Background(), title, message, notify.SeverityWarning)
	}
}
