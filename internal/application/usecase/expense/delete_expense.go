// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteExpenseInput identifies the expense to delete.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion. Notifications already raised are kept.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return notFoundError(err)
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
