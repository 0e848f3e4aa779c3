// Package gemini implements the textgen.Client interface using Google's
// Gemini API, as an alternative to the hosted-endpoint client.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"google.golang.org/genai"

	"github.com/taskmind/taskmind-api/internal/config"
	"github.com/taskmind/taskmind-api/internal/textgen"
)

// Client generates text through the Gemini API.
type Client struct {
	logger *slog.Logger
	client *genai.Client
	model  string

	maxRetries int
	retryDelay time.Duration
	rng        *rand.Rand
}

// New creates a Gemini-backed text generation client.
func New(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", textgen.ErrInvalidConfig)
	}

	model := cfg.ModelName
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", textgen.ErrInvalidConfig, err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 3
	}
	retryDelay := time.Duration(cfg.RetryDelayMs) * time.Millisecond
	if retryDelay <= 0 {
		retryDelay = time.Second
	}

	return &Client{
		logger:     logger.With("component", "gemini_textgen_client"),
		client:     client,
		model:      model,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Generate sends the prompt to the Gemini API with exponential backoff and
// jitter on transient failures. Safety blocks and empty candidates are
// permanent and switch directly to the exhausted state.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		text, transient, err := c.call(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		c.logger.WarnContext(ctx, "Gemini API call failed",
			"attempt", attempt+1,
			"transient", transient,
			"error", err)

		if !transient || attempt == c.maxRetries {
			break
		}

		// delay = base * 2^attempt * (0.5 + rand(0, 0.5))
		backoff := float64(c.retryDelay) * math.Pow(2, float64(attempt))
		jitter := 0.5 + c.rng.Float64()*0.5
		delay := time.Duration(backoff * jitter)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", textgen.ErrInferenceFailed, ctx.Err())
		}
	}

	return "", fmt.Errorf("%w: %w", textgen.ErrInferenceFailed, lastErr)
}

// call performs a single generation request and classifies the failure mode.
func (c *Client) call(ctx context.Context, prompt string) (string, bool, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", true, fmt.Errorf("gemini request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false, textgen.ErrEmptyResponse
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", false, errors.New("content blocked by safety filters")
	}

	text := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	if text == "" {
		return "", false, textgen.ErrEmptyResponse
	}

	return text, false, nil
}
