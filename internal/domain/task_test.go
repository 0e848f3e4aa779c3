package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTask_Defaults(t *testing.T) {
	t.Parallel()

	task := BuildTask(TaskDraft{Source: SourceTextInput})

	assert.Equal(t, DefaultTitle, task.Title)
	assert.Equal(t, DefaultUrgency, task.UrgencyLevel)
	assert.Equal(t, CategoryOther, task.Category)
	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, SourceTextInput, task.Source)
	assert.NotEmpty(t, task.ID)
	assert.True(t, strings.HasPrefix(task.ID, "task_"))
	assert.False(t, task.CreatedAt.IsZero())
	assert.NoError(t, task.Validate())
}

func TestBuildTask_EndTimeDefaultsToStartPlusOneHour(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	task := BuildTask(TaskDraft{
		Title:     "Dentist",
		StartTime: &start,
	})

	require.NotNil(t, task.EndTime)
	assert.Equal(t, start.Add(time.Hour), *task.EndTime)
}

func TestBuildTask_PreservesExplicitEndTime(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	task := BuildTask(TaskDraft{Title: "Standup", StartTime: &start, EndTime: &end})

	require.NotNil(t, task.EndTime)
	assert.Equal(t, end, *task.EndTime)
}

func TestBuildTask_UniqueIDs(t *testing.T) {
	t.Parallel()

	a := BuildTask(TaskDraft{Title: "a"})
	b := BuildTask(TaskDraft{Title: "a"})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTruncateDescription(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", MaxDescriptionLength+50)
	got := TruncateDescription(long)
	assert.Equal(t, MaxDescriptionLength+1, len([]rune(got))) // 200 chars + ellipsis
	assert.True(t, strings.HasSuffix(got, "…"))

	short := "buy milk"
	assert.Equal(t, short, TruncateDescription(short))
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"New", StatusPending, false},
		{"", StatusPending, false},
		{"In Progress", StatusInProgress, false},
		{"in-progress", StatusInProgress, false},
		{"Completed", StatusCompleted, false},
		{"done", StatusCompleted, false},
		{"archived", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTask_Validate(t *testing.T) {
	t.Parallel()

	valid := BuildTask(TaskDraft{Title: "ok"})

	t.Run("valid task", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		task := valid
		task.ID = ""
		assert.ErrorIs(t, task.Validate(), ErrTaskIDEmpty)
	})

	t.Run("failures match the validation class", func(t *testing.T) {
		task := valid
		task.ID = ""
		assert.ErrorIs(t, task.Validate(), ErrValidation)

		task = valid
		task.UrgencyLevel = 0
		assert.ErrorIs(t, task.Validate(), ErrValidation)
	})

	t.Run("missing title", func(t *testing.T) {
		task := valid
		task.Title = "  "
		assert.ErrorIs(t, task.Validate(), ErrTaskTitleEmpty)
	})

	t.Run("urgency out of range", func(t *testing.T) {
		task := valid
		task.UrgencyLevel = 7
		assert.ErrorIs(t, task.Validate(), ErrInvalidUrgency)
	})

	t.Run("inverted time range", func(t *testing.T) {
		task := valid
		start := time.Now()
		end := start.Add(-time.Hour)
		task.StartTime, task.EndTime = &start, &end
		assert.ErrorIs(t, task.Validate(), ErrInvalidTimeRange)
	})
}

func TestNormalizeCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Category
	}{
		{"Work", CategoryWork},
		{"work", CategoryWork},
		{"  Finance  ", CategoryFinance},
		{"This task belongs to the Health category", CategoryHealth},
		{"groceries", CategoryOther},
		{"", CategoryOther},
		{"EDUCATION", CategoryEducation},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCategory(tt.raw))
		})
	}
}

func TestUrgencyFromPriority(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UrgencyCritical, UrgencyFromPriority("CRITICAL"))
	assert.Equal(t, UrgencyHigh, UrgencyFromPriority("high"))
	assert.Equal(t, UrgencyMedium, UrgencyFromPriority("Medium"))
	assert.Equal(t, UrgencyLow, UrgencyFromPriority("LOW"))
	assert.Equal(t, UrgencyMin, UrgencyFromPriority("none"))
	assert.Equal(t, DefaultUrgency, UrgencyFromPriority("whenever"))
}

func TestClampUrgency(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultUrgency, ClampUrgency(0))
	assert.Equal(t, UrgencyMin, ClampUrgency(-3))
	assert.Equal(t, UrgencyMax, ClampUrgency(99))
	assert.Equal(t, 4, ClampUrgency(4))
}
