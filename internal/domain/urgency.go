package domain

import "strings"

// Urgency levels. The canonical direction is ascending: 1 is lowest, 5 is
// critical. Both the model response parser and the heuristic extractor map
// onto this single scale.
const (
	UrgencyMin      = 1
	UrgencyLow      = 2
	UrgencyMedium   = 3
	UrgencyHigh     = 4
	UrgencyCritical = 5
	UrgencyMax      = UrgencyCritical

	// DefaultUrgency is assumed when no priority signal was found.
	DefaultUrgency = UrgencyMedium
)

// priorityLevels maps the priority labels emitted by the model onto urgency
// levels.
var priorityLevels = map[string]int{
	"CRITICAL": UrgencyCritical,
	"HIGH":     UrgencyHigh,
	"MEDIUM":   UrgencyMedium,
	"LOW":      UrgencyLow,
	"NONE":     UrgencyMin,
}

// UrgencyFromPriority translates a priority label (CRITICAL/HIGH/MEDIUM/LOW)
// into an urgency level, defaulting to medium for unknown labels.
func UrgencyFromPriority(label string) int {
	if level, ok := priorityLevels[strings.ToUpper(strings.TrimSpace(label))]; ok {
		return level
	}
	return DefaultUrgency
}

// ClampUrgency forces an urgency level into the valid range, treating zero
// (not extracted) as the default.
func ClampUrgency(level int) int {
	if level == 0 {
		return DefaultUrgency
	}
	if level < UrgencyMin {
		return UrgencyMin
	}
	if level > UrgencyMax {
		return UrgencyMax
	}
	return level
}
