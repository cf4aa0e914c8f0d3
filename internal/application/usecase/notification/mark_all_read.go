// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// MarkAllReadInput represents the input for marking every notification as read.
type MarkAllReadInput struct {
	UserID uuid.UUID
}

// MarkAllReadOutput reports how many notifications changed.
type MarkAllReadOutput struct {
	Updated int64
}

// MarkAllReadUseCase flags every unread notification of a user as read.
type MarkAllReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkAllReadUseCase creates a new MarkAllReadUseCase instance.
func NewMarkAllReadUseCase(notificationRepo adapter.NotificationRepository) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute performs the update.
func (uc *MarkAllReadUseCase) Execute(ctx context.Context, input MarkAllReadInput) (*MarkAllReadOutput, error) {
	updated, err := uc.notificationRepo.MarkAllRead(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return &MarkAllReadOutput{Updated: updated}, nil
}
