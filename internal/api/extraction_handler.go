package api

import (
	"errors"
	"net/http"

	"github.com/taskmind/taskmind-api/internal/api/shared"
	"github.com/taskmind/taskmind-api/internal/service"
)

// ExtractTextRequest is the request body for text extraction.
type ExtractTextRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// ExtractResponse reports the outcome of an extraction run. Tasks is empty
// when the input contained no task.
type ExtractResponse struct {
	TasksExtracted int            `json:"tasks_extracted"`
	Tasks          []TaskResponse `json:"tasks"`
}

// ExtractionHandler handles extraction-related HTTP requests.
type ExtractionHandler struct {
	extractionService *service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService *service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// ExtractText handles POST /api/extract/text requests.
func (h *ExtractionHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	var req ExtractTextRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: text is required", err)
		return
	}

	task, err := h.extractionService.ExtractFromText(r.Context(), req.Text)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to extract task", err)
		return
	}

	tasks := []TaskResponse{}
	if task != nil {
		tasks = append(tasks, ToTaskResponse(*task))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ExtractResponse{
		TasksExtracted: len(tasks),
		Tasks:          tasks,
	})
}

// RunMailExtraction handles POST /api/extract/run requests, triggering an
// immediate mail extraction run outside the poller schedule.
func (h *ExtractionHandler) RunMailExtraction(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.extractionService.RunMailExtraction(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoMailSource) {
			shared.RespondWithError(w, r, http.StatusConflict, "No mail source configured", err)
			return
		}
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Mail extraction failed", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ExtractResponse{
		TasksExtracted: len(tasks),
		Tasks:          ToTaskResponses(tasks),
	})
}
