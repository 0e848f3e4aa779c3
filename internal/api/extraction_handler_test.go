package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmind/taskmind-api/internal/domain"
	"github.com/taskmind/taskmind-api/internal/extraction"
	"github.com/taskmind/taskmind-api/internal/mocks"
	"github.com/taskmind/taskmind-api/internal/notify"
	"github.com/taskmind/taskmind-api/internal/reminder"
	"github.com/taskmind/taskmind-api/internal/service"
)

// fixedExtractor returns a canned result for every call.
type fixedExtractor struct {
	task *domain.Task
	err  error
}

func (f *fixedExtractor) ExtractFromText(_ context.Context, _ string) (*domain.Task, error) {
	return f.task, f.err
}

func (f *fixedExtractor) ExtractFromMessage(_ context.Context, _ extraction.Message) (*domain.Task, error) {
	return f.task, f.err
}

func newExtractionRouter(t *testing.T, extractor service.TaskExtractor, source extraction.MessageSource) (*chi.Mux, *mocks.TaskStore) {
	t.Helper()

	taskStore := mocks.NewTaskStore()
	dispatcher := notify.NewDispatcher(notify.DefaultSettings(), testLogger())
	scheduler := reminder.NewScheduler(reminder.DefaultLeadTimes, dispatcher, testLogger())
	t.Cleanup(scheduler.Stop)

	svc := service.NewExtractionService(extractor, source, taskStore, scheduler, dispatcher, testLogger(), 10)
	handler := NewExtractionHandler(svc)

	r := chi.NewRouter()
	r.Post("/api/extract/text", handler.ExtractText)
	r.Post("/api/extract/run", handler.RunMailExtraction)
	return r, taskStore
}

func TestExtractText_Found(t *testing.T) {
	t.Parallel()

	task := seedTask("task_1", "Submit the report", nil)
	router, taskStore := newExtractionRouter(t, &fixedExtractor{task: &task}, nil)

	body := bytes.NewBufferString(`{"text": "I need to submit the report"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/extract/text", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got ExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.TasksExtracted)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "Submit the report", got.Tasks[0].Title)

	stored, err := taskStore.LoadTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestExtractText_NoTask(t *testing.T) {
	t.Parallel()

	router, taskStore := newExtractionRouter(t, &fixedExtractor{}, nil)

	body := bytes.NewBufferString(`{"text": "how are you"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/extract/text", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got ExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Zero(t, got.TasksExtracted)
	assert.Empty(t, got.Tasks)
	assert.Zero(t, taskStore.SaveCalls)
}

func TestExtractText_MissingText(t *testing.T) {
	t.Parallel()

	router, _ := newExtractionRouter(t, &fixedExtractor{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/extract/text", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractText_ServiceFailure(t *testing.T) {
	t.Parallel()

	router, _ := newExtractionRouter(t, &fixedExtractor{err: errors.New("model down")}, nil)

	body := bytes.NewBufferString(`{"text": "do something"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/extract/text", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRunMailExtraction_NoSourceConfigured(t *testing.T) {
	t.Parallel()

	router, _ := newExtractionRouter(t, &fixedExtractor{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/extract/run", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRunMailExtraction_Success(t *testing.T) {
	t.Parallel()

	due := time.Now().Add(48 * time.Hour).UTC()
	task := seedTask("task_1", "Renew the passport", &due)
	source := fixedSource{msgs: []extraction.Message{{ID: "m1", Subject: "Passport", Body: "renew it"}}}
	router, taskStore := newExtractionRouter(t, &fixedExtractor{task: &task}, source)

	req := httptest.NewRequest(http.MethodPost, "/api/extract/run", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got ExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.TasksExtracted)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "Renew the passport", got.Tasks[0].Title)

	stored, err := taskStore.LoadTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

// fixedSource returns a canned message batch.
type fixedSource struct {
	msgs []extraction.Message
}

func (s fixedSource) FetchRecent(_ context.Context, _ int) ([]extraction.Message, error) {
	return s.msgs, nil
}
