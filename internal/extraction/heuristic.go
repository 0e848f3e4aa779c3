package extraction

import (
	"regexp"
	"strings"
	"time"

	"github.com/taskmind/taskmind-api/internal/domain"
)

// Trigger patterns for the heuristic extractor, tried in priority order;
// the first match wins. Capture group 1 becomes the task title.
var triggerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)I need to ([^.,;!?\n]+)`),
	regexp.MustCompile(`(?i)have to ([^.,;!?\n]+)`),
	regexp.MustCompile(`(?i)must ([^.,;!?\n]+)`),
	regexp.MustCompile(`(?i)should ([^.,;!?\n]+)`),
	regexp.MustCompile(`(?i)don't forget to ([^.,;!?\n]+)`),
	regexp.MustCompile(`(?i)remember to ([^.,;!?\n]+)`),
	regexp.MustCompile(`(?i)going to ([^.,;!?\n]+)`),
	regexp.MustCompile(`(?i)plan(?:ning)? to ([^.,;!?\n]+)`),
	// Deadline-bearing statements: "X due by/on Y", "X by Y", "X before Y".
	regexp.MustCompile(`(?i)^(.{4,}?)\s+due\s+(?:by|on)\s+\S+`),
	regexp.MustCompile(`(?i)^(.{4,}?)\s+(?:by|before)\s+(?:tomorrow|today|monday|tuesday|wednesday|thursday|friday|saturday|sunday|next\s+\w+|\d\S*)`),
	// Meeting, appointment or call phrasing.
	regexp.MustCompile(`(?i)((?:[A-Za-z][^.!?\n]*)?\b(?:meeting|appointment|call)\b[^.!?\n]*)`),
}

var (
	urgencyHighPattern   = regexp.MustCompile(`(?i)urgent|immediately|asap|right away|critical`)
	urgencyRaisedPattern = regexp.MustCompile(`(?i)soon|quickly|important`)
	urgencyLowPattern    = regexp.MustCompile(`(?i)sometime|when you can|low priority|eventually`)

	tomorrowPattern     = regexp.MustCompile(`(?i)tomorrow`)
	nextWeekPattern     = regexp.MustCompile(`(?i)next week`)
	explicitTimePattern = regexp.MustCompile(`(?i)at (\d{1,2}(?::\d{2})? ?(?:am|pm))`)

	sentenceSplitPattern   = regexp.MustCompile(`[.!?]\s`)
	imperativeStartPattern = regexp.MustCompile(`^[A-Z][a-z]+\s+\S+`)
)

// extractHeuristic builds a task from raw text without any model call, used
// when inference is exhausted. It never fails: trigger phrases are tried in
// priority order, then the first sentence, and as a last resort an emergency
// task carrying the raw text verbatim.
func extractHeuristic(text string, now time.Time) domain.Task {
	title := matchTrigger(text)
	source := domain.SourceTextFallback

	if title == "" {
		title = fallbackTitle(text)
	}
	if title == "" {
		// Nothing extractable at all; emit the emergency task so the caller
		// still gets a record.
		return domain.BuildTask(domain.TaskDraft{
			Title:       truncate(text, 50),
			Description: text,
			Source:      domain.SourceEmergencyFallback,
		})
	}

	start := heuristicStartTime(text, now)

	return domain.BuildTask(domain.TaskDraft{
		Title:        title,
		Description:  text,
		StartTime:    &start,
		UrgencyLevel: heuristicUrgency(text),
		Source:       source,
	})
}

// matchTrigger runs the trigger patterns in priority order and returns the
// captured title, or "" when nothing matches.
func matchTrigger(text string) string {
	for _, pattern := range triggerPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1])
		}
	}

	// Imperative opener: a capitalized first sentence reads as a command
	// ("Submit the report on Friday").
	first := firstSentence(text)
	if imperativeStartPattern.MatchString(first) {
		return first
	}

	return ""
}

// fallbackTitle uses the first sentence when it is substantial, otherwise
// the first 50 characters of the raw text.
func fallbackTitle(text string) string {
	if first := firstSentence(text); len(first) > 10 {
		return first
	}
	return truncate(strings.TrimSpace(text), 50)
}

func firstSentence(text string) string {
	parts := sentenceSplitPattern.Split(strings.TrimSpace(text), 2)
	return strings.TrimSpace(parts[0])
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// heuristicStartTime derives a start time from date/time indicators in the
// text. Default is one hour from now; "tomorrow" and "next week" shift to
// 09:00 on the target day; an explicit "at H(:MM)am/pm" overrides the
// time of day.
func heuristicStartTime(text string, now time.Time) time.Time {
	start := now.Add(time.Hour)

	if tomorrowPattern.MatchString(text) {
		next := now.AddDate(0, 0, 1)
		start = time.Date(next.Year(), next.Month(), next.Day(), 9, 0, 0, 0, now.Location())
	} else if nextWeekPattern.MatchString(text) {
		next := now.AddDate(0, 0, 7)
		start = time.Date(next.Year(), next.Month(), next.Day(), 9, 0, 0, 0, now.Location())
	}

	if m := explicitTimePattern.FindStringSubmatch(text); m != nil {
		if clock := parseClock(m[1], start); clock != nil {
			start = *clock
		}
	}

	return start
}

// heuristicUrgency scans for urgency keywords, strongest signal first.
func heuristicUrgency(text string) int {
	switch {
	case urgencyHighPattern.MatchString(text):
		return domain.UrgencyCritical
	case urgencyRaisedPattern.MatchString(text):
		return domain.UrgencyHigh
	case urgencyLowPattern.MatchString(text):
		return domain.UrgencyLow
	}
	return domain.DefaultUrgency
}
