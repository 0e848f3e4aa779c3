package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Dispatcher is an in-process Notifier that stores registered handlers in
// memory and fans each notification out to all of them, gated by the
// configured category toggles.
type Dispatcher struct {
	logger   *slog.Logger
	settings Settings

	mu       sync.RWMutex
	handlers []Handler
}

// NewDispatcher creates a Dispatcher with the given category settings.
func NewDispatcher(settings Settings, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		logger:   logger.With("component", "notification_dispatcher"),
		settings: settings,
		handlers: make([]Handler, 0),
	}
}

// RegisterHandler adds a handler to receive future notifications.
func (d *Dispatcher) RegisterHandler(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
	d.logger.Debug("registered notification handler", "handler_count", len(d.handlers))
}

// Dispatch delivers the notification to every registered handler. Handlers
// that panic or misbehave are the handlers' problem; delivery is
// best-effort with no return value.
func (d *Dispatcher) Dispatch(ctx context.Context, title, message string, severity Severity) {
	if !d.settings.allows(severity) {
		d.logger.Debug("notification suppressed by settings",
			"severity", severity,
			"title", title)
		return
	}

	n := Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now().UTC(),
	}

	d.mu.RLock()
	handlers := make([]Handler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.RUnlock()

	d.logger.Debug("dispatching notification",
		"notification_id", n.ID,
		"severity", severity,
		"handler_count", len(handlers))

	for _, h := range handlers {
		h.HandleNotification(ctx, n)
	}
}

// NewLogHandler returns a handler that writes notifications to the log,
// the default delivery surface when no UI is attached.
func NewLogHandler(logger *slog.Logger) Handler {
	l := logger.With("component", "notification_log")
	return HandlerFunc(func(ctx context.Context, n Notification) {
		l.InfoContext(ctx, "notification",
			"title", n.Title,
			"message", n.Message,
			"severity", n.Severity)
	})
}
