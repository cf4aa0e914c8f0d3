// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

const (
	// DefaultListLimit is used when no limit is requested.
	DefaultListLimit = 50
	// MaxListLimit caps the number of notifications returned at once.
	MaxListLimit = 200
)

// ListNotificationsInput represents the input for listing notifications.
type ListNotificationsInput struct {
	UserID     uuid.UUID
	UnreadOnly bool
	Limit      int
}

// ListNotificationsOutput represents the output of listing notifications.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
}

// ListNotificationsUseCase handles listing notifications logic.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute performs the notification listing, newest first.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 0 || limit > MaxListLimit {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeInvalidNotificationQuery,
			fmt.Sprintf("limit must be between 1 and %d", MaxListLimit),
			nil,
		)
	}

	notifications, err := uc.notificationRepo.FindByUserID(ctx, input.UserID, input.UnreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	if notifications == nil {
		notifications = make([]*entity.Notification, 0)
	}

	return &ListNotificationsOutput{
		Notifications: notifications,
	}, nil
}
