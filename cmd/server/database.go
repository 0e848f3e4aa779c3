package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmind/taskmind-api/internal/platform/postgres"
)

// connectDatabase opens a pgx connection pool against dbURL, verifies
// connectivity and applies pending schema migrations.
func connectDatabase(ctx context.Context, dbURL string, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := postgres.Migrate(ctx, dbURL, logger); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("database connected and migrated")
	return pool, nil
}
