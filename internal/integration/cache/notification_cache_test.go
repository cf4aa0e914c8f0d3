package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budgetwise/backend/internal/application/adapter/mock"
	"github.com/budgetwise/backend/internal/domain/entity"
)

type countingRepository struct {
	*mock.NotificationRepository
	countCalls int
}

func (r *countingRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.countCalls++
	return r.NotificationRepository.CountUnread(ctx, userID)
}

func setupCache(t *testing.T) (*miniredis.Miniredis, *countingRepository, *cachedNotificationRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	inner := &countingRepository{NotificationRepository: mock.NewNotificationRepository()}
	repo := NewCachedNotificationRepository(inner, client, time.Minute).(*cachedNotificationRepository)
	return server, inner, repo
}

func TestCountUnread_ServesFromCacheAfterFirstRead(t *testing.T) {
	ctx := context.Background()
	server, inner, repo := setupCache(t)
	userID := uuid.New()

	if err := inner.Create(ctx, entity.NewNotification(userID, entity.NotificationTypeBudgetWarning, "warn")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		count, err := repo.CountUnread(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 unread, got %d", count)
		}
	}

	if inner.countCalls != 1 {
		t.Errorf("expected 1 repository call, got %d", inner.countCalls)
	}
	if !server.Exists(unreadKey(userID)) {
		t.Error("expected counter to be cached")
	}
}

func TestCountUnread_InvalidatedByWrites(t *testing.T) {
	ctx := context.Background()
	_, inner, repo := setupCache(t)
	userID := uuid.New()

	if _, err := repo.CountUnread(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notification := entity.NewNotification(userID, entity.NotificationTypeBudgetExceeded, "over")
	if err := repo.Create(ctx, notification); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := repo.CountUnread(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 unread after create, got %d", count)
	}

	if err := repo.MarkRead(ctx, notification.ID, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err = repo.CountUnread(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 unread after mark read, got %d", count)
	}
	if inner.countCalls != 3 {
		t.Errorf("expected 3 repository calls, got %d", inner.countCalls)
	}
}

func TestCountUnread_FallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	server, inner, repo := setupCache(t)
	userID := uuid.New()
	server.Close()

	if err := inner.Create(ctx, entity.NewNotification(userID, entity.NotificationTypeBudgetWarning, "warn")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := repo.CountUnread(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 unread, got %d", count)
	}
}
