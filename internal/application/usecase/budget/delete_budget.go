// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// DeleteBudgetUseCase handles budget deletion. Expenses are independent and stay untouched.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget deletion.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	if err := uc.budgetRepo.Delete(ctx, input.BudgetID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return notFoundError(err)
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}
