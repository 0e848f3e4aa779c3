package extraction

import (
	"strings"
	"time"
)

// Layouts tried for generic date strings, most specific first.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"1-2-2006",
	"1-2-06",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"January 2",
	"Jan 2",
}

// resolveRelativeDate maps a date-like text fragment to a concrete time.
// It is a total function: relative tokens (today, tomorrow, next week/month)
// are resolved against now, generic date strings are tried against a small
// set of layouts, and anything unparseable defaults to one week from now.
// Deliberately lossy; a best-effort default, not a calendar-correct parser.
func resolveRelativeDate(text string, now time.Time) time.Time {
	cleaned := strings.ToLower(strings.TrimSpace(text))

	switch {
	case cleaned == "today":
		return now
	case cleaned == "tomorrow":
		return now.AddDate(0, 0, 1)
	case strings.Contains(cleaned, "next") && strings.Contains(cleaned, "week"):
		return now.AddDate(0, 0, 7)
	case strings.Contains(cleaned, "next") && strings.Contains(cleaned, "month"):
		return now.AddDate(0, 1, 0)
	}

	trimmed := strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			// Layout without a year; anchor to the current one.
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		}
		return t
	}

	return now.AddDate(0, 0, 7)
}
