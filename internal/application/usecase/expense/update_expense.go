// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update. Nil fields are left unchanged.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
	Category    *string
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	trigger     AlertTrigger
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, trigger AlertTrigger) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		trigger:     trigger,
	}
}

// Execute applies the changes and re-checks the expense against the user's budgets.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*ExpenseWithAlerts, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, notFoundError(err)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	updated := *expense
	if input.Amount != nil {
		updated.Amount = *input.Amount
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	if input.Category != nil {
		updated.Category = *input.Category
	}
	if input.Date != nil {
		updated.Date = *input.Date
	}

	updated.Description, updated.Category, err = validateExpenseFields(updated.Amount, updated.Description, updated.Category)
	if err != nil {
		return nil, err
	}

	updated.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return withAlerts(ctx, uc.trigger, &updated), nil
}
