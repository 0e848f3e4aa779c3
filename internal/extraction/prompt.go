package extraction

import (
	"fmt"
	"strings"

	"github.com/taskmind/taskmind-api/internal/domain"
)

// NoTaskSentinel is the literal phrase the model is instructed to answer
// with when the input contains no extractable task. Matched case-sensitively.
const NoTaskSentinel = "No task found"

const taskPromptFormat = `Analyze this text and extract:
1. The main task or to-do item
2. Priority level (CRITICAL/HIGH/MEDIUM/LOW) based on urgency words and context
3. Time constraints (specific start and end times)
4. Hard deadline if mentioned

If there's no task, respond with 'No task found'.

Text: %s`

// taskPrompt builds the task identification prompt for the given content.
func taskPrompt(content string) string {
	return fmt.Sprintf(taskPromptFormat, content)
}

// categoryPrompt builds the second, independent categorization prompt.
func categoryPrompt(title string) string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return fmt.Sprintf("Categorize this task into one of these categories: %s: %s",
		strings.Join(names, ", "), title)
}
