package mock

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// NotificationRepository keeps notifications in insertion order.
type NotificationRepository struct {
	mu            sync.Mutex
	notifications []*entity.Notification

	// CreateErr is returned by the next FailCreates calls to Create.
	CreateErr   error
	FailCreates int
}

// NewNotificationRepository creates a repository seeded with notifications.
func NewNotificationRepository(notifications ...*entity.Notification) *NotificationRepository {
	return &NotificationRepository{notifications: notifications}
}

// All returns every stored notification.
func (r *NotificationRepository) All() []*entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.notifications)
}

func (r *NotificationRepository) Create(_ context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreates > 0 {
		r.FailCreates--
		return r.CreateErr
	}
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *NotificationRepository) FindByUserID(_ context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		n := r.notifications[i]
		if n.UserID != userID || (unreadOnly && n.IsRead) {
			continue
		}
		out = append(out, n)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return domainerror.ErrNotificationNotFound
}

func (r *NotificationRepository) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var changed int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			changed++
		}
	}
	return changed, nil
}

func (r *NotificationRepository) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}
