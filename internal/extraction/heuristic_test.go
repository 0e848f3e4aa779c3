package extraction

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmind/taskmind-api/internal/domain"
)

func TestExtractHeuristic_TriggerPhraseWithUrgencyAndTomorrow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC)
	task := extractHeuristic("I need to submit the report by tomorrow, it's urgent", now)

	assert.Equal(t, "submit the report by tomorrow", task.Title)
	assert.Equal(t, domain.UrgencyCritical, task.UrgencyLevel)
	assert.Equal(t, domain.SourceTextFallback, task.Source)

	require.NotNil(t, task.StartTime)
	assert.Equal(t, time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC), *task.StartTime)
	require.NotNil(t, task.EndTime)
	assert.Equal(t, task.StartTime.Add(time.Hour), *task.EndTime)
}

func TestExtractHeuristic_TriggerPriorityOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"have to", "We have to renew the insurance", "renew the insurance"},
		{"must", "You must call the bank today", "call the bank today"},
		{"dont forget", "Don't forget to water the plants!", "water the plants"},
		{"remember to", "Please remember to pick up the dry cleaning", "pick up the dry cleaning"},
		{"going to", "I'm going to review the contract", "review the contract"},
		{"planning to", "Planning to refactor the billing module", "refactor the billing module"},
		{"due by", "Tax filing due by April 15", "Tax filing"},
		{"before", "Submit expenses before Friday", "Submit expenses"},
		{"meeting phrasing", "Team meeting with the vendors next week", "Team meeting with the vendors next week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := extractHeuristic(tt.text, now)
			assert.Equal(t, tt.want, task.Title)
		})
	}
}

func TestExtractHeuristic_FirstSentenceFallback(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC)
	task := extractHeuristic("the garden fence is falling apart again. someone will deal with it", now)

	assert.Equal(t, "the garden fence is falling apart again", task.Title)
	assert.Equal(t, domain.DefaultUrgency, task.UrgencyLevel)
}

func TestExtractHeuristic_ShortTextUsesPrefix(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC)
	task := extractHeuristic("groceries", now)

	assert.Equal(t, "groceries", task.Title)
}

func TestExtractHeuristic_ShortFirstSentenceFallsBackToPrefix(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC)
	text := "ok. " + strings.Repeat("a", 80)
	task := extractHeuristic(text, now)

	// First sentence is too short to be a useful title, so the first 50
	// characters of the raw text are used instead.
	assert.Equal(t, text[:50], task.Title)
}

func TestExtractHeuristic_StartTimeRules(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC)

	t.Run("default is one hour out", func(t *testing.T) {
		task := extractHeuristic("I need to stretch my legs", now)
		require.NotNil(t, task.StartTime)
		assert.Equal(t, now.Add(time.Hour), *task.StartTime)
	})

	t.Run("next week shifts a week out at nine", func(t *testing.T) {
		task := extractHeuristic("I need to prepare the slides next week", now)
		require.NotNil(t, task.StartTime)
		assert.Equal(t, time.Date(2026, 9, 8, 9, 0, 0, 0, time.UTC), *task.StartTime)
	})

	t.Run("explicit time overrides the time of day", func(t *testing.T) {
		task := extractHeuristic("I need to join the review tomorrow at 3:30pm", now)
		require.NotNil(t, task.StartTime)
		assert.Equal(t, time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC), *task.StartTime)
	})
}

func TestExtractHeuristic_UrgencyKeywords(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		text string
		want int
	}{
		{"I need to reboot the server asap", domain.UrgencyCritical},
		{"I need to respond immediately", domain.UrgencyCritical},
		{"I need to reply soon", domain.UrgencyHigh},
		{"I need to read that important memo", domain.UrgencyHigh},
		{"I need to sort the garage eventually", domain.UrgencyLow},
		{"I need to clean the desk", domain.DefaultUrgency},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, extractHeuristic(tt.text, now).UrgencyLevel)
		})
	}
}

func TestExtractHeuristic_EmergencyTier(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC)
	task := extractHeuristic("   ", now)

	assert.Equal(t, domain.SourceEmergencyFallback, task.Source)
	assert.Equal(t, domain.DefaultTitle, task.Title)
	assert.Equal(t, domain.DefaultUrgency, task.UrgencyLevel)
	assert.NoError(t, task.Validate())
}
