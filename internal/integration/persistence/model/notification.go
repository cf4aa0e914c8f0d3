// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_read"`
	Type      string    `gorm:"type:varchar(20);not null"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"default:false;index:idx_notifications_user_read"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entity.NotificationType(m.Type),
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain Notification entity.
func NotificationFromEntity(notification *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Type:      string(notification.Type),
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}
