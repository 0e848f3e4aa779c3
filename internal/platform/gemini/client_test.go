package gemini

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmind/taskmind-api/internal/config"
	"github.com/taskmind/taskmind-api/internal/textgen"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_RequiresLogger(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), config.LLMConfig{GeminiAPIKey: "key"}, nil)
	assert.Error(t, err)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), config.LLMConfig{}, testLogger())
	assert.ErrorIs(t, err, textgen.ErrInvalidConfig)
}

func TestNew_AppliesDefaults(t *testing.T) {
	t.Parallel()

	c, err := New(context.Background(), config.LLMConfig{GeminiAPIKey: "key"}, testLogger())
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.0-flash", c.model)
	assert.Zero(t, c.maxRetries)
	assert.Equal(t, time.Second, c.retryDelay)
}

func TestNew_UsesConfiguredValues(t *testing.T) {
	t.Parallel()

	cfg := config.LLMConfig{
		GeminiAPIKey: "key",
		ModelName:    "gemini-1.5-pro",
		MaxRetries:   1,
		RetryDelayMs: 250,
	}
	c, err := New(context.Background(), cfg, testLogger())
	require.NoError(t, err)

	assert.Equal(t, "gemini-1.5-pro", c.model)
	assert.Equal(t, 1, c.maxRetries)
	assert.Equal(t, 250*time.Millisecond, c.retryDelay)
}
