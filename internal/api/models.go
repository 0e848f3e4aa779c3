package api

import (
	"time"

	"github.com/taskmind/taskmind-api/internal/domain"
)

// TaskResponse is the API representation of a task.
type TaskResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	UrgencyLevel int        `json:"urgency_level"`
	Category     string     `json:"category"`
	Status       string     `json:"status"`
	Source       string     `json:"source"`
	EmailID      string     `json:"email_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToTaskResponse converts a domain task to its API representation.
func ToTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      t.DueDate,
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		UrgencyLevel: t.UrgencyLevel,
		Category:     string(t.Category),
		Status:       string(t.Status),
		Source:       string(t.Source),
		EmailID:      t.EmailID,
		CreatedAt:    t.CreatedAt,
	}
}

// ToTaskResponses converts a slice of domain tasks.
func ToTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskResponse(t)
	}
	return out
}
