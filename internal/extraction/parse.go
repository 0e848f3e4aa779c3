package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/taskmind/taskmind-api/internal/domain"
)

// parsedFields holds the structured fields recovered from a model response.
// Nil time fields mean "not found"; missing fields get defaults at the task
// builder, never abort extraction.
type parsedFields struct {
	Title   string
	Urgency int
	Start   *time.Time
	End     *time.Time
	Due     *time.Time
}

var (
	priorityPattern  = regexp.MustCompile(`(?i)Priority.*?:\s*(CRITICAL|HIGH|MEDIUM|LOW)`)
	timeLinePattern  = regexp.MustCompile(`(?i)Time.*?:\s*(.+)`)
	timeRangePattern = regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?\s*(?:am|pm))\s*(?:to|-)\s*(\d{1,2}(?::\d{2})?\s*(?:am|pm))`)
	clockPattern     = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
	deadlinePattern  = regexp.MustCompile(`(?i)Deadline.*?:\s*(.+)`)
	dateLikePattern  = regexp.MustCompile(`(?i)\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}|[A-Za-z]+ \d{1,2}(?:st|nd|rd|th)?, \d{4}|[A-Za-z]+ \d{1,2}(?:st|nd|rd|th)?|tomorrow|today|next \w+`)
)

// parseTaskResponse extracts structured fields from the model's free-text
// response. The title is the first non-empty line; priority, time range and
// deadline are recovered by pattern matching against labeled lines. Clock
// times are anchored to the current calendar day.
func parseTaskResponse(raw string, now time.Time) parsedFields {
	fields := parsedFields{
		Title:   firstNonEmptyLine(raw),
		Urgency: domain.DefaultUrgency,
	}

	if m := priorityPattern.FindStringSubmatch(raw); m != nil {
		fields.Urgency = domain.UrgencyFromPriority(m[1])
	}

	if m := timeLinePattern.FindStringSubmatch(raw); m != nil {
		if r := timeRangePattern.FindStringSubmatch(m[1]); r != nil {
			fields.Start = parseClock(r[1], now)
			fields.End = parseClock(r[2], now)
		}
	}

	if m := deadlinePattern.FindStringSubmatch(raw); m != nil {
		if d := dateLikePattern.FindString(m[1]); d != "" {
			due := resolveRelativeDate(d, now)
			fields.Due = &due
		}
	}

	return fields
}

// containsNoTaskSentinel reports whether the model declared the input free
// of tasks.
func containsNoTaskSentinel(raw string) bool {
	return strings.Contains(raw, NoTaskSentinel)
}

// firstNonEmptyLine returns the first non-blank line of the response,
// trimmed, or the empty string when there is none.
func firstNonEmptyLine(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// parseClock converts a 12-hour clock string ("3pm", "10:30 am") into a
// timestamp on the same calendar day as now. Returns nil when the string
// does not match.
func parseClock(s string, now time.Time) *time.Time {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil || hours > 12 {
		return nil
	}
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}

	period := strings.ToLower(m[3])
	if period == "pm" && hours != 12 {
		hours += 12
	}
	if period == "am" && hours == 12 {
		hours = 0
	}

	t := time.Date(now.Year(), now.Month(), now.Day(), hours, minutes, 0, 0, now.Location())
	return &t
}
