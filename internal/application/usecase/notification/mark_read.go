// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// MarkReadInput identifies the notification to flag as read.
type MarkReadInput struct {
	NotificationID uuid.UUID
	UserID         uuid.UUID
}

// MarkReadUseCase flags a single notification as read.
type MarkReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkReadUseCase creates a new MarkReadUseCase instance.
func NewMarkReadUseCase(notificationRepo adapter.NotificationRepository) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute marks the notification as read. Marking an already read notification succeeds.
func (uc *MarkReadUseCase) Execute(ctx context.Context, input MarkReadInput) error {
	if err := uc.notificationRepo.MarkRead(ctx, input.NotificationID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrNotificationNotFound) {
			return domainerror.NewNotificationError(
				domainerror.ErrCodeNotificationNotFound,
				"notification not found",
				err,
			)
		}
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}
