package service

import (
	"context"
	"sync"

	"github.com/taskmind/taskmind-api/internal/domain"
	"github.com/taskmind/taskmind-api/internal/extraction"
	"github.com/taskmind/taskmind-api/internal/notify"
)

// stubExtractor returns queued results keyed by call order.
type stubExtractor struct {
	mu      sync.Mutex
	results []extractorResult
}

type extractorResult struct {
	task *domain.Task
	err  error
}

func (s *stubExtractor) queue(task *domain.Task, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, extractorResult{task: task, err: err})
}

func (s *stubExtractor) next() (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.results) == 0 {
		return nil, nil
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r.task, r.err
}

func (s *stubExtractor) ExtractFromText(_ context.Context, _ string) (*domain.Task, error) {
	return s.next()
}

func (s *stubExtractor) ExtractFromMessage(_ context.Context, _ extraction.Message) (*domain.Task, error) {
	return s.next()
}

// fakeScheduler records scheduler calls.
type fakeScheduler struct {
	mu        sync.Mutex
	scheduled []string
	canceled  []string
	disabled  map[string]bool
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{disabled: make(map[string]bool)}
}

func (f *fakeScheduler) Schedule(task domain.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, task.ID)
}

func (f *fakeScheduler) ScheduleAll(tasks []domain.Task) {
	for _, t := range tasks {
		f.Schedule(t)
	}
}

func (f *fakeScheduler) Cancel(taskID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.canceled = append(f.canceled, taskID)
}

func (f *fakeScheduler) Disable(taskID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disabled[taskID] = true
}

func (f *fakeScheduler) Enable(taskID string, task *domain.Task) {
	f.mu.Lock()
	delete(f.disabled, taskID)
	f.mu.Unlock()
	if task != nil && task.HasDueDate() {
		f.Schedule(*task)
	}
}

func (f *fakeScheduler) Enabled(taskID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.disabled[taskID]
}

func (f *fakeScheduler) scheduledIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.scheduled))
	copy(out, f.scheduled)
	return out
}

// recordingNotifier captures dispatched notifications.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

type sentNotification struct {
	title    string
	message  string
	severity notify.Severity
}

func (r *recordingNotifier) Dispatch(_ context.Context, title, message string, severity notify.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentNotification{title: title, message: message, severity: severity})
}

func (r *recordingNotifier) all() []sentNotification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sentNotification, len(r.sent))
	copy(out, r.sent)
	return out
}

// stubMessageSource returns a fixed batch of messages.
type stubMessageSource struct {
	msgs []extraction.Message
	err  error
}

func (s *stubMessageSource) FetchRecent(_ context.Context, _ int) ([]extraction.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.msgs, nil
}
