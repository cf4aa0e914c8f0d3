// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// UnreadCountResponse carries the number of unread notifications.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// MarkAllReadResponse carries the number of notifications flagged as read.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// ToNotificationResponse converts a domain Notification to its DTO.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Type:      string(n.Type),
		Title:     n.Type.Title(),
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationResponses converts a list of notifications. A nil list becomes an empty one.
func ToNotificationResponses(notifications []*entity.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = ToNotificationResponse(n)
	}
	return responses
}
