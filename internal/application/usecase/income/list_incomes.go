// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListIncomesUseCase handles listing incomes logic.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute lists the user's incomes, most recent first.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	incomes, err := uc.incomeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	if incomes == nil {
		incomes = make([]*entity.Income, 0)
	}
	return incomes, nil
}
