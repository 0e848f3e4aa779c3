package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taskmind/taskmind-api/internal/domain"
	"github.com/taskmind/taskmind-api/internal/textgen"
)

// Extractor converts one piece of unstructured text into a task record
// through the inference pipeline, degrading to the heuristic extractor when
// inference is exhausted.
type Extractor struct {
	client textgen.Client
	logger *slog.Logger

	// now is replaced in tests for deterministic date resolution.
	now func() time.Time
}

// NewExtractor creates an Extractor backed by the given text generation
// client.
func NewExtractor(client textgen.Client, logger *slog.Logger) *Extractor {
	return &Extractor{
		client: client,
		logger: logger.With("component", "extractor"),
		now:    time.Now,
	}
}

// ExtractFromText extracts at most one task from free text input.
//
// Returns (nil, nil) for blank input and for the model's no-task sentinel.
// When the inference chain is exhausted the heuristic extractor takes over,
// so the error return is reserved for genuinely unexpected failures.
func (e *Extractor) ExtractFromText(ctx context.Context, text string) (*domain.Task, error) {
	if strings.TrimSpace(text) == "" {
		e.logger.DebugContext(ctx, "skipping extraction of blank input")
		return nil, nil
	}

	raw, err := e.client.Generate(ctx, taskPrompt(text))
	if err != nil {
		if errors.Is(err, textgen.ErrInferenceFailed) {
			e.logger.WarnContext(ctx, "inference exhausted, using heuristic extraction",
				"error", err)
			task := extractHeuristic(text, e.now())
			return &task, nil
		}
		return nil, fmt.Errorf("task inference failed: %w", err)
	}

	if containsNoTaskSentinel(raw) {
		e.logger.DebugContext(ctx, "model reported no task in input")
		return nil, nil
	}

	fields := parseTaskResponse(raw, e.now())

	task := domain.BuildTask(domain.TaskDraft{
		Title:        fields.Title,
		Description:  text,
		DueDate:      fields.Due,
		StartTime:    fields.Start,
		EndTime:      fields.End,
		UrgencyLevel: fields.Urgency,
		Category:     e.categorize(ctx, fields.Title),
		Source:       domain.SourceTextInput,
	})
	return &task, nil
}

// ExtractFromMessage extracts at most one task from a mail message. Unlike
// the text path there is no heuristic degradation: a failed inference call
// surfaces as an error and the batch orchestrator isolates it per item.
func (e *Extractor) ExtractFromMessage(ctx context.Context, msg Message) (*domain.Task, error) {
	content := msg.Content()
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	raw, err := e.client.Generate(ctx, taskPrompt(content))
	if err != nil {
		return nil, fmt.Errorf("task inference failed for message %s: %w", msg.ID, err)
	}

	if containsNoTaskSentinel(raw) {
		return nil, nil
	}

	fields := parseTaskResponse(raw, e.now())

	task := domain.BuildTask(domain.TaskDraft{
		Title:        fields.Title,
		Description:  content,
		DueDate:      fields.Due,
		StartTime:    fields.Start,
		EndTime:      fields.End,
		UrgencyLevel: fields.Urgency,
		Category:     e.categorize(ctx, fields.Title),
		Source:       domain.SourceEmail,
		EmailID:      msg.ID,
	})
	return &task, nil
}

// categorize issues the second, independent inference call. Only starts
// after task inference has completed; any failure falls back to Other.
func (e *Extractor) categorize(ctx context.Context, title string) string {
	if strings.TrimSpace(title) == "" {
		return ""
	}

	raw, err := e.client.Generate(ctx, categoryPrompt(title))
	if err != nil {
		e.logger.WarnContext(ctx, "category inference failed, defaulting",
			"error", err)
		return ""
	}
	return strings.TrimSpace(raw)
}
