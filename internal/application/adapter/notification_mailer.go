// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// BudgetAlertEmail is the content of a budget alert e-mail.
type BudgetAlertEmail struct {
	To          string
	Name        string
	SenderName  string
	SenderEmail string
	Type        entity.NotificationType
	Category    string
	Message     string
}

// NotificationMailer delivers budget alerts by e-mail.
type NotificationMailer interface {
	// SendBudgetAlert renders and sends one alert. Failures are returned to the caller,
	// which decides whether to surface them.
	SendBudgetAlert(ctx context.Context, alert BudgetAlertEmail) error
}
