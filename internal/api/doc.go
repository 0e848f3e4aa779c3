// Package api contains the HTTP handlers, request and response models for
// the task extraction API. Handlers stay thin: decode, validate, delegate to
// the service layer, encode.
package api
