// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// GetBudgetInput represents the input for fetching one budget.
type GetBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// GetBudgetOutput represents the budget together with its current usage.
type GetBudgetOutput struct {
	Usage valueobject.BudgetUsage
}

// GetBudgetUseCase handles fetching a budget with its usage.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	usage      *usageLoader
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	clock adapter.Clock,
) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
		usage:      &usageLoader{expenseRepo: expenseRepo, clock: clock},
	}
}

// Execute fetches the budget and computes its usage for the current period.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, notFoundError(err)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	usage, err := uc.usage.load(ctx, budget, nil, uc.usage.clock.Now())
	if err != nil {
		return nil, err
	}

	return &GetBudgetOutput{Usage: usage}, nil
}
