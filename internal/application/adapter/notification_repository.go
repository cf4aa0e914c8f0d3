// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence operations.
// Only the read flag of a stored notification ever changes.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUserID retrieves the user's notifications, newest first.
	// A limit of zero or less returns every match.
	FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Notification, error)

	// MarkRead flags one notification of the user as read.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead flags every notification of the user as read and returns how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountUnread returns the number of unread notifications of the user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
