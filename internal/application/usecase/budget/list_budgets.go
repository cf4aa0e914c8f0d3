// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput holds every budget of the user with its current usage.
type ListBudgetsOutput struct {
	Budgets []valueobject.BudgetUsage
}

// ListBudgetsUseCase handles listing budgets logic.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	usage      *usageLoader
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	clock adapter.Clock,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		usage:      &usageLoader{expenseRepo: expenseRepo, clock: clock},
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	now := uc.usage.clock.Now()
	output := &ListBudgetsOutput{
		Budgets: make([]valueobject.BudgetUsage, 0, len(budgets)),
	}

	for _, b := range budgets {
		usage, err := uc.usage.load(ctx, b, nil, now)
		if err != nil {
			return nil, err
		}
		output.Budgets = append(output.Budgets, usage)
	}

	return output, nil
}
