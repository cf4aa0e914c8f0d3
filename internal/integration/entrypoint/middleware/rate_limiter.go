// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	rateLimitKeyPrefix = "ratelimit:"
)

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// RateLimiter provides IP-based fixed-window rate limiting. Counters are kept
// in redis when a client is configured and in process memory otherwise.
type RateLimiter struct {
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	redis          *redis.Client
	scope          string
	maxAttempts    int
	windowDuration time.Duration
	disabled       bool
	now            func() time.Time
}

// RateLimiterOption customizes a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRedis stores counters in redis under the given scope so replicas share them.
func WithRedis(client *redis.Client, scope string) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.redis = client
		rl.scope = scope
	}
}

// WithLimits overrides the default attempts per window.
func WithLimits(maxAttempts int, windowDuration time.Duration) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.maxAttempts = maxAttempts
		rl.windowDuration = windowDuration
	}
}

// WithDisabled turns the limiter into a pass-through (test and e2e environments).
func WithDisabled(disabled bool) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.disabled = disabled
	}
}

// NewRateLimiter creates a new rate limiter. Without options it allows five
// attempts per minute per client IP, counted in memory.
func NewRateLimiter(opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		entries:        make(map[string]*rateLimitEntry),
		maxAttempts:    defaultMaxAttempts,
		windowDuration: defaultWindowDuration,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.disabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.Request.Context(), clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	if rl.redis == nil {
		return rl.allowLocal(key)
	}

	allowed, err := rl.allowRedis(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "rate limiter store unavailable, allowing request",
			"error", err,
		)
		return true
	}
	return allowed
}

// allowRedis increments the window counter and sets its expiry on the first hit.
func (rl *RateLimiter) allowRedis(ctx context.Context, key string) (bool, error) {
	redisKey := rateLimitKeyPrefix + rl.scope + ":" + key

	attempts, err := rl.redis.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if attempts == 1 {
		if err := rl.redis.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			return false, err
		}
	}

	return attempts <= int64(rl.maxAttempts), nil
}

func (rl *RateLimiter) allowLocal(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	entry, exists := rl.entries[key]
	if !exists || now.After(entry.resetTime) {
		rl.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(rl.windowDuration),
		}
		return true
	}

	if entry.attempts < rl.maxAttempts {
		entry.attempts++
		return true
	}

	return false
}

// Reset clears the in-memory state.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries = make(map[string]*rateLimitEntry)
}

// Cleanup removes expired in-memory entries.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, entry := range rl.entries {
		if now.After(entry.resetTime) {
			delete(rl.entries, key)
		}
	}
}
