// Package db opens and migrates the PostgreSQL database.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

const pingTimeout = 5 * time.Second

// Database wraps the GORM connection used by every repository.
type Database struct {
	db *gorm.DB
}

// NewPostgresConnection connects to cfg.URL, retrying up to cfg.ConnectAttempts
// times with a linearly growing pause so the API can start before the database.
func NewPostgresConnection(ctx context.Context, cfg *config.DatabaseConfig) (*Database, error) {
	attempts := max(cfg.ConnectAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		database, err := open(ctx, cfg)
		if err == nil {
			slog.InfoContext(ctx, "Database connection established",
				"attempt", attempt,
				"max_open_conns", cfg.MaxOpenConns,
				"max_idle_conns", cfg.MaxIdleConns,
			)
			return database, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		wait := time.Duration(attempt) * time.Second
		slog.WarnContext(ctx, "Database not reachable, retrying", "attempt", attempt, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, lastErr)
}

func open(ctx context.Context, cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: newQueryLogger(cfg.SlowQuery),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{db: db}, nil
}

// DB returns the underlying GORM database instance.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Migrate creates or updates every table of the persistence models, parents first.
func (d *Database) Migrate(ctx context.Context) error {
	if err := d.db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// HealthCheck returns a checker that pings the database behind db.
func HealthCheck(db *gorm.DB) func(ctx context.Context) bool {
	return func(ctx context.Context) bool {
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Failed to get sql.DB for health check", "error", err)
			return false
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Database health check failed", "error", err)
			return false
		}
		return true
	}
}

// Close closes the database connection.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	slog.Info("Database connection closed")
	return nil
}
