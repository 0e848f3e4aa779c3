// Package textgen defines the interface for remote text generation.
// It serves as a boundary between the application core and external
// model-hosting services, following the hexagonal architecture pattern;
// concrete clients live under internal/platform.
package textgen
