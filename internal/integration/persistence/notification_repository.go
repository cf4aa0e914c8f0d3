// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return conn(ctx, r.db).Create(model.NotificationFromEntity(notification)).Error
}

// FindByUserID retrieves the user's notifications, newest first.
func (r *notificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	query := conn(ctx, r.db).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.NotificationModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	notifications := make([]*entity.Notification, len(models))
	for i := range models {
		notifications[i] = models[i].ToEntity()
	}
	return notifications, nil
}

// MarkRead flags one notification of the user as read.
func (r *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := conn(ctx, r.db).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead flags every unread notification of the user as read.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := conn(ctx, r.db).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// CountUnread returns the number of unread notifications of the user.
func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := conn(ctx, r.db).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count)
	return count, result.Error
}
