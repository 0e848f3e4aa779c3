package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a task.
//
// Producers use several spellings for the same states ("New", "pending",
// "In Progress"); the lowercase snake_case values below are canonical and
// everything else is normalized through ParseStatus.
type Status string

// Canonical task statuses.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// TaskSource tags where a task record came from, which downstream consumers
// use as an extraction-confidence signal.
type TaskSource string

// Known task provenance tags.
const (
	SourceEmail             TaskSource = "email"
	SourceTextInput         TaskSource = "text-input"
	SourceTextFallback      TaskSource = "text-input-fallback"
	SourceEmergencyFallback TaskSource = "text-input-emergency-fallback"
)

const (
	// DefaultTitle is used when no title could be extracted from the source.
	DefaultTitle = "Untitled task"

	// MaxDescriptionLength bounds the description carried over from the
	// source content.
	MaxDescriptionLength = 200

	// DefaultDuration is the assumed task length when only a start time is
	// known.
	DefaultDuration = time.Hour
)

// Task is the structured record produced by the extraction pipeline and the
// anchor for reminder scheduling.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	UrgencyLevel int        `json:"urgency_level"`
	Category     Category   `json:"category"`
	Status       Status     `json:"status"`
	Source       TaskSource `json:"source"`
	EmailID      string     `json:"email_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TaskDraft carries the raw extracted fields into BuildTask. Zero values
// mean "not extracted" and are replaced with defaults.
type TaskDraft struct {
	Title        string
	Description  string
	DueDate      *time.Time
	StartTime    *time.Time
	EndTime      *time.Time
	UrgencyLevel int
	Category     string
	Source       TaskSource
	EmailID      string
}

// BuildTask assembles a Task from extracted fields, filling defaults so that
// a successfully constructed Task is always valid: the title falls back to a
// placeholder, the description is truncated, the urgency is clamped into
// range, the category is normalized into the closed set and the end time
// defaults to one hour after the start.
func BuildTask(draft TaskDraft) Task {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		title = DefaultTitle
	}

	end := draft.EndTime
	if end == nil && draft.StartTime != nil {
		e := draft.StartTime.Add(DefaultDuration)
		end = &e
	}

	return Task{
		ID:           NewTaskID(),
		Title:        title,
		Description:  TruncateDescription(draft.Description),
		DueDate:      draft.DueDate,
		StartTime:    draft.StartTime,
		EndTime:      end,
		UrgencyLevel: ClampUrgency(draft.UrgencyLevel),
		Category:     NormalizeCategory(draft.Category),
		Status:       StatusPending,
		Source:       draft.Source,
		EmailID:      draft.EmailID,
		CreatedAt:    time.Now().UTC(),
	}
}

// NewTaskID generates a unique opaque task identifier.
func NewTaskID() string {
	return "task_" + uuid.NewString()
}

// TruncateDescription bounds a description to MaxDescriptionLength runes,
// appending an ellipsis when content was cut.
func TruncateDescription(s string) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= MaxDescriptionLength {
		return string(runes)
	}
	return string(runes[:MaxDescriptionLength]) + "…"
}

// ParseStatus normalizes the status spellings used by the various producers
// into the canonical Status set. Returns ErrInvalidStatus for anything
// unrecognized.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending", "new", "":
		return StatusPending, nil
	case "in_progress", "in-progress", "in progress":
		return StatusInProgress, nil
	case "completed", "complete", "done":
		return StatusCompleted, nil
	}
	return "", ErrInvalidStatus
}

// Validate checks whether the Task satisfies the canonical schema. Every
// failure wraps ErrValidation so callers can match the class without
// enumerating the specific causes.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrTaskIDEmpty)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrTaskTitleEmpty)
	}
	if t.UrgencyLevel < UrgencyMin || t.UrgencyLevel > UrgencyMax {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidUrgency)
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if t.StartTime != nil && t.EndTime != nil && t.EndTime.Before(*t.StartTime) {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidTimeRange)
	}
	return nil
}

// HasDueDate reports whether the task carries a usable due date.
func (t *Task) HasDueDate() bool {
	return t.DueDate != nil && !t.DueDate.IsZero()
}
