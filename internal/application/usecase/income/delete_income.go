// Package income contains income-related use cases.
package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteIncomeUseCase handles income deletion.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, incomeID, userID uuid.UUID) error {
	if err := uc.incomeRepo.Delete(ctx, incomeID, userID); err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return notFoundError(err)
		}
		return fmt.Errorf("failed to delete income: %w", err)
	}
	return nil
}
