// Package main implements the entry point for the TaskMind API server,
// which extracts tasks from free text and mail via LLM inference and
// schedules due-date reminders for them.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/taskmind/taskmind-api/internal/config"
	"github.com/taskmind/taskmind-api/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := initializeConfig()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(ctx, cfg, slog.Default())
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}

// initializeConfig loads configuration and sets up structured logging.
func initializeConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Setup(cfg.Server.LogLevel)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_provider", cfg.LLM.Provider,
		"database_configured", cfg.Database.URL != "",
		"mail_extraction_enabled", cfg.Extraction.Enabled)

	return cfg, nil
}
