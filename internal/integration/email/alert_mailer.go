// Package email renders and delivers the service's e-mails.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/email/templates"
)

// AlertMailer renders budget alerts and hands them to an EmailSender.
type AlertMailer struct {
	sender     adapter.EmailSender
	renderer   *templates.Renderer
	budgetsURL string
}

// NewAlertMailer creates a mailer. Messages link to appBaseURL's budgets page unless it is empty.
func NewAlertMailer(sender adapter.EmailSender, renderer *templates.Renderer, appBaseURL string) *AlertMailer {
	var budgetsURL string
	if appBaseURL != "" {
		budgetsURL = strings.TrimSuffix(appBaseURL, "/") + "/budgets"
	}
	return &AlertMailer{
		sender:     sender,
		renderer:   renderer,
		budgetsURL: budgetsURL,
	}
}

// SendBudgetAlert sends "<Title>: <Category>" to the alert recipient.
func (m *AlertMailer) SendBudgetAlert(ctx context.Context, alert adapter.BudgetAlertEmail) error {
	title := alert.Type.Title()

	body, err := m.renderer.BudgetAlert(templates.BudgetAlertData{
		UserName:  alert.Name,
		Title:     title,
		Category:  alert.Category,
		Message:   alert.Message,
		Exceeded:  alert.Type == entity.NotificationTypeBudgetExceeded,
		ActionURL: m.budgetsURL,
	})
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render budget alert",
			fmt.Errorf("%w: %v", domainerror.ErrTemplateRenderFailed, err),
		)
	}

	email := adapter.OutgoingEmail{
		To:      alert.To,
		Subject: fmt.Sprintf("%s: %s", title, alert.Category),
		HTML:    body.HTML,
		Text:    body.Text,
		Tags: map[string]string{
			"alert_type": tagValue(string(alert.Type)),
			"category":   tagValue(alert.Category),
		},
	}
	if alert.SenderEmail != "" {
		email.From = formatAddress(alert.SenderName, alert.SenderEmail)
	}

	if _, err := m.sender.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send budget alert: %w", err)
	}
	return nil
}

// tagValue keeps the characters Resend accepts in tag values and replaces the rest with '_'.
func tagValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}

var _ adapter.NotificationMailer = (*AlertMailer)(nil)
