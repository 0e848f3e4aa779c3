// Package config defines the application configuration structures and
// loading logic. Configuration is read from environment variables (prefix
// TASKMIND_) and an optional config.yaml, then validated; environment
// variables take precedence.
package config
