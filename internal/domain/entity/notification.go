// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the kind of budget alert.
type NotificationType string

const (
	NotificationTypeBudgetExceeded NotificationType = "budget_exceeded"
	NotificationTypeBudgetWarning  NotificationType = "budget_warning"
)

// Title returns the human-readable heading for the notification type.
func (t NotificationType) Title() string {
	switch t {
	case NotificationTypeBudgetExceeded:
		return "Budget Exceeded"
	case NotificationTypeBudgetWarning:
		return "Budget Warning"
	default:
		return "Budget Alert"
	}
}

// Notification represents a persisted, user-facing budget alert.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// NewNotification creates a new unread Notification.
func NewNotification(userID uuid.UUID, notificationType NotificationType, message string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      notificationType,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
}
