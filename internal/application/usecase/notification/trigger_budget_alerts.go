// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// TriggerConfig controls alert e-mail delivery.
type TriggerConfig struct {
	EmailEnabled bool
	SenderName   string
	SenderEmail  string
}

// ImpactEvaluator computes budget usage for candidate spending.
type ImpactEvaluator interface {
	Execute(ctx context.Context, input budget.EvaluateImpactInput) (*budget.EvaluateImpactOutput, error)
}

// TriggerBudgetAlertsInput represents the expense that was just created or updated.
type TriggerBudgetAlertsInput struct {
	UserID  uuid.UUID
	Expense *entity.Expense
}

// TriggerBudgetAlertsOutput holds the notifications raised and the usage of every matching budget.
type TriggerBudgetAlertsOutput struct {
	Notifications []*entity.Notification
	BudgetStatus  []valueobject.BudgetUsage
}

// TriggerBudgetAlertsUseCase raises warning and exceeded alerts for a recorded expense.
type TriggerBudgetAlertsUseCase struct {
	evaluator        ImpactEvaluator
	notificationRepo adapter.NotificationRepository
	userRepo         adapter.UserRepository
	mailer           adapter.NotificationMailer
	metrics          adapter.MetricsRecorder
	config           TriggerConfig
}

// NewTriggerBudgetAlertsUseCase creates a new TriggerBudgetAlertsUseCase instance.
func NewTriggerBudgetAlertsUseCase(
	evaluator ImpactEvaluator,
	notificationRepo adapter.NotificationRepository,
	userRepo adapter.UserRepository,
	mailer adapter.NotificationMailer,
	metrics adapter.MetricsRecorder,
	config TriggerConfig,
) *TriggerBudgetAlertsUseCase {
	return &TriggerBudgetAlertsUseCase{
		evaluator:        evaluator,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		metrics:          metrics,
		config:           config,
	}
}

// Execute evaluates the expense against the user's budgets and raises at most one
// alert per budget. Persistence failures skip the affected budget; e-mail failures
// are logged only.
func (uc *TriggerBudgetAlertsUseCase) Execute(ctx context.Context, input TriggerBudgetAlertsInput) (*TriggerBudgetAlertsOutput, error) {
	evaluation, err := uc.evaluator.Execute(ctx, budget.EvaluateImpactInput{
		UserID: input.UserID,
		Items:  []valueobject.SpendingItem{valueobject.SpendingItemFromExpense(input.Expense)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate budget impact: %w", err)
	}

	output := &TriggerBudgetAlertsOutput{
		Notifications: make([]*entity.Notification, 0),
		BudgetStatus:  make([]valueobject.BudgetUsage, 0, len(evaluation.Usages)),
	}

	recipient := &recipientLoader{userRepo: uc.userRepo, userID: input.UserID}

	for _, usage := range evaluation.Usages {
		output.BudgetStatus = append(output.BudgetStatus, usage)

		alertType, ok := usage.AlertType()
		if !ok {
			continue
		}

		message := FormatAlertMessage(alertType, usage)
		notification := entity.NewNotification(input.UserID, alertType, message)

		if err := uc.notificationRepo.Create(ctx, notification); err != nil {
			slog.ErrorContext(ctx, "failed to persist budget notification",
				"user_id", input.UserID,
				"budget_id", usage.Budget.ID,
				"notification_type", alertType,
				"error", err,
			)
			continue
		}

		uc.metrics.RecordNotification(alertType)
		output.Notifications = append(output.Notifications, notification)

		if uc.config.EmailEnabled {
			uc.sendEmail(ctx, recipient, usage, notification)
		}
	}

	return output, nil
}

// sendEmail delivers the alert to users who opted in. Failures are logged and counted.
func (uc *TriggerBudgetAlertsUseCase) sendEmail(
	ctx context.Context,
	recipient *recipientLoader,
	usage valueobject.BudgetUsage,
	notification *entity.Notification,
) {
	user, err := recipient.get(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to load alert recipient",
			"user_id", notification.UserID,
			"error", err,
		)
		return
	}
	if !user.WantsBudgetAlertEmails() {
		return
	}

	err = uc.mailer.SendBudgetAlert(ctx, adapter.BudgetAlertEmail{
		To:          user.Email,
		Name:        user.Name,
		SenderName:  uc.config.SenderName,
		SenderEmail: uc.config.SenderEmail,
		Type:        notification.Type,
		Category:    usage.Budget.Category,
		Message:     notification.Message,
	})
	if err != nil {
		uc.metrics.RecordEmailDelivery(adapter.OutcomeFailure)
		var emailErr *domainerror.EmailError
		slog.WarnContext(ctx, "failed to send budget alert email",
			"user_id", notification.UserID,
			"budget_id", usage.Budget.ID,
			"notification_type", notification.Type,
			"temporary", errors.As(err, &emailErr) && emailErr.Temporary(),
			"error", err,
		)
		return
	}

	uc.metrics.RecordEmailDelivery(adapter.OutcomeSuccess)
}

// recipientLoader fetches the user at most once per trigger.
type recipientLoader struct {
	userRepo adapter.UserRepository
	userID   uuid.UUID
	user     *entity.User
	err      error
	loaded   bool
}

func (l *recipientLoader) get(ctx context.Context) (*entity.User, error) {
	if !l.loaded {
		l.user, l.err = l.userRepo.FindByID(ctx, l.userID)
		l.loaded = true
	}
	return l.user, l.err
}
