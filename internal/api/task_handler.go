package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taskmind/taskmind-api/internal/api/shared"
	"github.com/taskmind/taskmind-api/internal/service"
)

// UpdateTaskRequest is the request body for partial task updates. Absent
// fields are left unchanged.
type UpdateTaskRequest struct {
	Title        *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Description  *string    `json:"description,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ClearDueDate bool       `json:"clear_due_date,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	UrgencyLevel *int       `json:"urgency_level,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Status       *string    `json:"status,omitempty"`
}

// RemindersRequest toggles reminders for a task.
type RemindersRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// RemindersResponse reports the reminder state for a task.
type RemindersResponse struct {
	TaskID  string `json:"task_id"`
	Enabled bool   `json:"enabled"`
}

// TaskHandler handles task CRUD HTTP requests.
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks handles GET /api/tasks requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ToTaskResponses(tasks))
}

// UpdateTask handles PUT /api/tasks/{id} requests.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), taskID, service.TaskUpdate{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		UrgencyLevel: req.UrgencyLevel,
		Category:     req.Category,
		Status:       req.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found", err)
			return
		}
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update task", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ToTaskResponse(*task))
}

// DeleteTask handles DELETE /api/tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	if err := h.taskService.DeleteTask(r.Context(), taskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found", err)
			return
		}
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetReminders handles PUT /api/tasks/{id}/reminders requests.
func (h *TaskHandler) SetReminders(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	var req RemindersRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if req.Enabled == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: enabled is required", nil)
		return
	}

	if err := h.taskService.SetRemindersEnabled(r.Context(), taskID, *req.Enabled); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found", err)
			return
		}
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update reminders", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RemindersResponse{TaskID: taskID, Enabled: *req.Enabled})
}

// GetReminders handles GET /api/tasks/{id}/reminders requests.
func (h *TaskHandler) GetReminders(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	enabled, err := h.taskService.RemindersEnabled(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found", err)
			return
		}
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to read reminder state", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RemindersResponse{TaskID: taskID, Enabled: enabled})
}
