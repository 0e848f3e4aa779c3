package hosted

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/taskmind/taskmind-api/internal/config"
	"github.com/taskmind/taskmind-api/internal/textgen"
)

// Client calls hosted model endpoints over raw HTTP, implementing the
// textgen.Client interface with retry, backoff and a primary-to-backup
// fallback chain.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client

	primaryURL string
	backupURL  string
	apiToken   string

	params     textgen.Params
	maxRetries int
	retryDelay time.Duration

	// sleep is replaced in tests to observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// request is the wire format accepted by the inference endpoint.
type request struct {
	Inputs     string          `json:"inputs"`
	Parameters *textgen.Params `json:"parameters,omitempty"`
}

// response covers both shapes the endpoint produces: an array whose first
// element carries generated_text, or a bare object with generated_text.
type response struct {
	GeneratedText string `json:"generated_text"`
}

// New creates a Client from the LLM configuration.
func New(cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("%w: api_url cannot be empty", textgen.ErrInvalidConfig)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	retryDelay := time.Duration(cfg.RetryDelayMs) * time.Millisecond
	if retryDelay <= 0 {
		retryDelay = time.Second
	}

	params := textgen.DefaultParams()
	if cfg.MaxLength > 0 {
		params.MaxLength = cfg.MaxLength
	}
	if cfg.Temperature > 0 {
		params.Temperature = cfg.Temperature
	}
	if cfg.TopP > 0 {
		params.TopP = cfg.TopP
	}

	return &Client{
		logger:     logger.With("component", "hosted_textgen_client"),
		httpClient: &http.Client{},
		primaryURL: cfg.APIURL,
		backupURL:  cfg.BackupAPIURL,
		apiToken:   cfg.APIToken,
		params:     params,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		sleep: func(ctx context.Context, d time.Duration) error {
			select {
			case <-time.After(d):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}, nil
}

// Generate sends the prompt through the fallback chain: the primary model
// first, then the backup once the primary is exhausted. Rate limiting is
// retried against the same model with exponential backoff
// (retryDelay * 2^attempt); server errors and empty responses switch to the
// backup immediately. The chain never recurses back to the primary.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	endpoints := []string{c.primaryURL}
	if c.backupURL != "" {
		endpoints = append(endpoints, c.backupURL)
	}

	var lastErr error

	for i, url := range endpoints {
		model := "primary"
		if i > 0 {
			model = "backup"
		}

	attempts:
		for attempt := 0; attempt <= c.maxRetries; attempt++ {
			text, err := c.call(ctx, url, prompt)
			if err == nil {
				c.logger.DebugContext(ctx, "inference call succeeded",
					"model", model,
					"attempt", attempt+1)
				return text, nil
			}
			lastErr = err

			switch {
			case errors.Is(err, textgen.ErrServerError), errors.Is(err, textgen.ErrEmptyResponse):
				// Not worth hammering the same endpoint; move to the backup.
				c.logger.WarnContext(ctx, "model endpoint failed, switching model",
					"model", model,
					"error", err)
				break attempts
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return "", fmt.Errorf("%w: %w", textgen.ErrInferenceFailed, err)
			}

			if attempt == c.maxRetries {
				c.logger.WarnContext(ctx, "retries exhausted",
					"model", model,
					"max_retries", c.maxRetries,
					"error", err)
				break attempts
			}

			delay := c.retryDelay * (1 << attempt)
			c.logger.InfoContext(ctx, "retrying inference call after delay",
				"model", model,
				"attempt", attempt+1,
				"delay", delay,
				"error", err)
			if serr := c.sleep(ctx, delay); serr != nil {
				return "", fmt.Errorf("%w: %w", textgen.ErrInferenceFailed, serr)
			}
		}
	}

	return "", fmt.Errorf("%w: %w", textgen.ErrInferenceFailed, lastErr)
}

// call performs a single inference request against one endpoint.
func (c *Client) call(ctx context.Context, url, prompt string) (string, error) {
	params := c.params
	body, err := json.Marshal(request{Inputs: prompt, Parameters: &params})
	if err != nil {
		return "", fmt.Errorf("failed to marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", textgen.ErrRateLimited
	case resp.StatusCode >= 500:
		return "", fmt.Errorf("%w: status %d", textgen.ErrServerError, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", fmt.Errorf("inference request failed with status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read inference response: %w", err)
	}

	return parseGeneratedText(raw)
}

// parseGeneratedText extracts the generated text from either response shape.
func parseGeneratedText(raw []byte) (string, error) {
	var list []response
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 || list[0].GeneratedText == "" {
			return "", textgen.ErrEmptyResponse
		}
		return list[0].GeneratedText, nil
	}

	var single response
	if err := json.Unmarshal(raw, &single); err != nil {
		return "", fmt.Errorf("failed to decode inference response: %w", err)
	}
	if single.GeneratedText == "" {
		return "", textgen.ErrEmptyResponse
	}
	return single.GeneratedText, nil
}
