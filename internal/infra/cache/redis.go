// Package cache provides the Redis connection used for caching and shared rate limits.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budgetwise/backend/config"
)

// NewRedisConnection parses the configured URL, applies password and DB
// overrides, and pings the server.
func NewRedisConnection(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis connection established", "addr", opts.Addr, "db", opts.DB)

	return client, nil
}

// HealthCheck reports whether the client can reach Redis.
func HealthCheck(client *redis.Client) func(ctx context.Context) bool {
	return func(ctx context.Context) bool {
		if err := client.Ping(ctx).Err(); err != nil {
			slog.WarnContext(ctx, "Redis health check failed", "error", err)
			return false
		}
		return true
	}
}
