// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetExpenseInput identifies an expense.
type GetExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// GetExpenseUseCase handles fetching one expense.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute fetches the expense.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*entity.Expense, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, notFoundError(err)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return expense, nil
}
