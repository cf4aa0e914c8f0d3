// Package cache provides Redis-backed decorators for repositories.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

const unreadKeyPrefix = "notifications:unread:"

// cachedNotificationRepository caches unread counters in front of a notification repository.
// Every write that may change the counter drops the cached value.
type cachedNotificationRepository struct {
	next   adapter.NotificationRepository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedNotificationRepository wraps next with an unread-count cache.
func NewCachedNotificationRepository(next adapter.NotificationRepository, client *redis.Client, ttl time.Duration) adapter.NotificationRepository {
	return &cachedNotificationRepository{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

func unreadKey(userID uuid.UUID) string {
	return unreadKeyPrefix + userID.String()
}

func (r *cachedNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if err := r.next.Create(ctx, notification); err != nil {
		return err
	}
	r.invalidate(ctx, notification.UserID)
	return nil
}

func (r *cachedNotificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	return r.next.FindByUserID(ctx, userID, unreadOnly, limit)
}

func (r *cachedNotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if err := r.next.MarkRead(ctx, id, userID); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *cachedNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := r.next.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	r.invalidate(ctx, userID)
	return updated, nil
}

// CountUnread serves the counter from Redis, falling back to the repository on a miss or cache error.
func (r *cachedNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := unreadKey(userID)

	cached, err := r.client.Get(ctx, key).Int64()
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		slog.WarnContext(ctx, "Failed to read unread counter from cache",
			"user_id", userID,
			"error", err,
		)
	}

	count, err := r.next.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	if err := r.client.Set(ctx, key, count, r.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "Failed to store unread counter in cache",
			"user_id", userID,
			"error", err,
		)
	}
	return count, nil
}

func (r *cachedNotificationRepository) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := r.client.Del(ctx, unreadKey(userID)).Err(); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate unread counter",
			"user_id", userID,
			"error", err,
		)
	}
}
