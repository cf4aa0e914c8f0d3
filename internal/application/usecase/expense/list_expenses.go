// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles listing expenses logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, filter entity.ExpenseFilter) (*ListExpensesOutput, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseFilter,
			"end date must not be before start date",
			nil,
		)
	}

	expenses, err := uc.expenseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		expenses = make([]*entity.Expense, 0)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
