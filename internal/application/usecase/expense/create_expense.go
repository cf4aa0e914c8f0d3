// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/notification"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 255

// AlertTrigger raises budget alerts for a recorded expense.
type AlertTrigger interface {
	Execute(ctx context.Context, input notification.TriggerBudgetAlertsInput) (*notification.TriggerBudgetAlertsOutput, error)
}

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
}

// ExpenseWithAlerts is an expense together with the alerts it raised.
type ExpenseWithAlerts struct {
	Expense       *entity.Expense
	Notifications []*entity.Notification
	BudgetStatus  []valueobject.BudgetUsage
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	trigger     AlertTrigger
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, trigger AlertTrigger) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		trigger:     trigger,
	}
}

// Execute records the expense and then checks it against the user's budgets.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*ExpenseWithAlerts, error) {
	description, category, err := validateExpenseFields(input.Amount, input.Description, input.Category)
	if err != nil {
		return nil, err
	}

	expense := entity.NewExpense(input.UserID, input.Amount, description, input.Date, category)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return withAlerts(ctx, uc.trigger, expense), nil
}

// validateExpenseFields checks the fields shared by create and update and returns them trimmed.
func validateExpenseFields(amount decimal.Decimal, description, category string) (string, string, error) {
	if !amount.IsPositive() {
		return "", "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)
	if description == "" || category == "" {
		return "", "", domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"description and category are required",
			nil,
		)
	}
	if len(description) > MaxDescriptionLength {
		return "", "", domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			fmt.Sprintf("description must be at most %d characters", MaxDescriptionLength),
			nil,
		)
	}

	return description, category, nil
}

// withAlerts runs the alert trigger. A trigger failure never fails the write that preceded it.
func withAlerts(ctx context.Context, trigger AlertTrigger, expense *entity.Expense) *ExpenseWithAlerts {
	result := &ExpenseWithAlerts{
		Expense:       expense,
		Notifications: make([]*entity.Notification, 0),
		BudgetStatus:  make([]valueobject.BudgetUsage, 0),
	}

	alerts, err := trigger.Execute(ctx, notification.TriggerBudgetAlertsInput{
		UserID:  expense.UserID,
		Expense: expense,
	})
	if err != nil {
		slog.ErrorContext(ctx, "budget alert trigger failed",
			"user_id", expense.UserID,
			"expense_id", expense.ID,
			"error", err,
		)
		return result
	}

	result.Notifications = alerts.Notifications
	result.BudgetStatus = alerts.BudgetStatus
	return result
}

// notFoundError maps a repository miss to the coded expense error.
func notFoundError(err error) error {
	return domainerror.NewExpenseError(
		domainerror.ErrCodeExpenseNotFound,
		"expense not found",
		err,
	)
}
