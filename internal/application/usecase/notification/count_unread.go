// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// CountUnreadInput represents the input for counting unread notifications.
type CountUnreadInput struct {
	UserID uuid.UUID
}

// CountUnreadOutput holds the unread count.
type CountUnreadOutput struct {
	Count int64
}

// CountUnreadUseCase counts the unread notifications of a user.
type CountUnreadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewCountUnreadUseCase creates a new CountUnreadUseCase instance.
func NewCountUnreadUseCase(notificationRepo adapter.NotificationRepository) *CountUnreadUseCase {
	return &CountUnreadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute returns the unread count.
func (uc *CountUnreadUseCase) Execute(ctx context.Context, input CountUnreadInput) (*CountUnreadOutput, error) {
	count, err := uc.notificationRepo.CountUnread(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return &CountUnreadOutput{Count: count}, nil
}
