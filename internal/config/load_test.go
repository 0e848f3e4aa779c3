package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// No t.Parallel: Load reads the process environment.

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "hf", cfg.LLM.Provider)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 1000, cfg.LLM.RetryDelayMs)
	assert.True(t, cfg.Extraction.Enabled)
	assert.Equal(t, 60, cfg.Extraction.IntervalMinutes)
	assert.Equal(t, 50, cfg.Extraction.MaxMessages)

	require.Len(t, cfg.Reminders.LeadTimes, 3)
	assert.Equal(t, 1440, cfg.Reminders.LeadTimes[0].Minutes)
	assert.Equal(t, "1 day before", cfg.Reminders.LeadTimes[0].Label)
	assert.Equal(t, 10, cfg.Reminders.LeadTimes[2].Minutes)

	assert.True(t, cfg.Notifications.TaskReminders)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TASKMIND_SERVER_PORT", "9191")
	t.Setenv("TASKMIND_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKMIND_LLM_MAX_RETRIES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 5, cfg.LLM.MaxRetries)
}

func TestLoad_ValidationFailure(t *testing.T) {
	t.Setenv("TASKMIND_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}
