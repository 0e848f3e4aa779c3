package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveRelativeDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"today", "today", now},
		{"today mixed case", "Today", now},
		{"tomorrow", "tomorrow", now.AddDate(0, 0, 1)},
		{"next week", "next week", now.AddDate(0, 0, 7)},
		{"next month", "next month", now.AddDate(0, 1, 0)},
		{"slash date", "10/15/2026", time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
		{"short year", "10/15/26", time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
		{"month name with year", "October 15, 2026", time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
		{"month name without year anchors to current year", "October 15", time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
		{"unparseable defaults to a week out", "the day after the offsite", now.AddDate(0, 0, 7)},
		{"empty defaults to a week out", "", now.AddDate(0, 0, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveRelativeDate(tt.text, now))
		})
	}
}
