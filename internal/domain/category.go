package domain

import "strings"

// Category classifies a task into one of a small closed set. Model output
// is free text, so raw category strings are always pushed through
// NormalizeCategory instead of being stored verbatim.
type Category string

// The closed category set.
const (
	CategoryWork      Category = "Work"
	CategoryPersonal  Category = "Personal"
	CategoryShopping  Category = "Shopping"
	CategoryHealth    Category = "Health"
	CategoryFinance   Category = "Finance"
	CategoryEducation Category = "Education"
	CategoryOther     Category = "Other"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryShopping,
	CategoryHealth,
	CategoryFinance,
	CategoryEducation,
	CategoryOther,
}

// NormalizeCategory maps a free-form category string onto the closed set.
// Matching is case-insensitive and tolerates the model embedding the
// category in a longer sentence; anything unrecognized becomes Other.
func NormalizeCategory(raw string) Category {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return CategoryOther
	}

	for _, c := range Categories {
		if cleaned == strings.ToLower(string(c)) {
			return c
		}
	}

	// The model sometimes answers with a full sentence ("This task belongs
	// to the Work category"). Fall back to a substring scan, first match in
	// display order wins.
	for _, c := range Categories {
		if strings.Contains(cleaned, strings.ToLower(string(c))) {
			return c
		}
	}

	return CategoryOther
}
