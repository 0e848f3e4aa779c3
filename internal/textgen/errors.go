package textgen

import "errors"

// Common errors returned by text generation clients.
var (
	// ErrInferenceFailed is returned when every attempt against every
	// configured model has been exhausted. It wraps the last underlying
	// cause.
	ErrInferenceFailed = errors.New("inference failed on all models")

	// ErrEmptyResponse is returned when the model produced no generated
	// text. Treated like a server error: the backup model is tried.
	ErrEmptyResponse = errors.New("model returned empty response")

	// ErrRateLimited is returned for HTTP 429 responses; retried against
	// the same model with exponential backoff.
	ErrRateLimited = errors.New("model endpoint rate limited")

	// ErrServerError is returned for HTTP 5xx responses; the client moves
	// straight to the backup model.
	ErrServerError = errors.New("model endpoint server error")

	// ErrInvalidConfig is returned when a client is constructed with an
	// unusable configuration.
	ErrInvalidConfig = errors.New("invalid text generation configuration")
)
