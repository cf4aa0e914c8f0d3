// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/notification"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	listUseCase        *notification.ListNotificationsUseCase
	markReadUseCase    *notification.MarkReadUseCase
	markAllReadUseCase *notification.MarkAllReadUseCase
	countUnreadUseCase *notification.CountUnreadUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	markReadUseCase *notification.MarkReadUseCase,
	markAllReadUseCase *notification.MarkAllReadUseCase,
	countUnreadUseCase *notification.CountUnreadUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:        listUseCase,
		markReadUseCase:    markReadUseCase,
		markAllReadUseCase: markAllReadUseCase,
		countUnreadUseCase: countUnreadUseCase,
	}
}

// List handles GET /notifications requests.
// Supported query parameters: unread (bool), limit (int).
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := notification.ListNotificationsInput{UserID: userID}

	if unreadStr := ctx.Query("unread"); unreadStr != "" {
		unread, err := strconv.ParseBool(unreadStr)
		if err != nil {
			c.writeInvalidQuery(ctx, "unread must be a boolean")
			return
		}
		input.UnreadOnly = unread
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			c.writeInvalidQuery(ctx, "limit must be an integer")
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NotificationListResponse{
		Notifications: dto.ToNotificationResponses(output.Notifications),
	})
}

// UnreadCount handles GET /notifications/unread-count requests.
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.countUnreadUseCase.Execute(ctx.Request.Context(), notification.CountUnreadInput{UserID: userID})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UnreadCountResponse{Count: output.Count})
}

// MarkRead handles PATCH /notifications/:id/read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	notificationID, ok := pathID(ctx, "notification")
	if !ok {
		return
	}

	err := c.markReadUseCase.Execute(ctx.Request.Context(), notification.MarkReadInput{
		NotificationID: notificationID,
		UserID:         userID,
	})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /notifications/read-all requests.
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.markAllReadUseCase.Execute(ctx.Request.Context(), notification.MarkAllReadInput{UserID: userID})
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: output.Updated})
}

func (c *NotificationController) writeInvalidQuery(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeInvalidNotificationQuery),
	})
}

func (c *NotificationController) handleNotificationError(ctx *gin.Context, err error) {
	var notificationErr *domainerror.NotificationError
	if errors.As(err, &notificationErr) {
		status := http.StatusInternalServerError
		switch notificationErr.Code {
		case domainerror.ErrCodeNotificationNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeInvalidNotificationQuery:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: notificationErr.Message,
			Code:  string(notificationErr.Code),
		})
		return
	}

	writeInternalError(ctx)
}
