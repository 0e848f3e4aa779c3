package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Severity categorizes a notification for display purposes.
type Severity string

// Notification severities.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is the payload handed to handlers. Fire-and-forget: there is
// no delivery guarantee and no return channel.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier is the interface the core components depend on.
type Notifier interface {
	Dispatch(ctx context.Context, title, message string, severity Severity)
}

// Handler receives dispatched notifications.
type Handler interface {
	HandleNotification(ctx context.Context, n Notification)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, n Notification)

// HandleNotification calls the wrapped function.
func (f HandlerFunc) HandleNotification(ctx context.Context, n Notification) {
	f(ctx, n)
}

// Settings toggles notification categories. Severities map onto the
// categories the user can switch off: success notifications come from task
// extraction, warnings from reminders, everything else is system-level.
type Settings struct {
	TaskExtraction bool
	TaskReminders  bool
	System         bool
}

// DefaultSettings enables every category.
func DefaultSettings() Settings {
	return Settings{TaskExtraction: true, TaskReminders: true, System: true}
}

// allows reports whether the settings permit a notification of the given
// severity.
func (s Settings) allows(severity Severity) bool {
	switch severity {
	case SeveritySuccess:
		return s.TaskExtraction
	case SeverityWarning:
		return s.TaskReminders
	default:
		return s.System
	}
}
