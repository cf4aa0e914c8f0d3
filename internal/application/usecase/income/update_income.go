// Package income contains income-related use cases.
package income

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateIncomeInput represents the input for income update. Nil fields are left unchanged.
type UpdateIncomeInput struct {
	IncomeID    uuid.UUID
	UserID      uuid.UUID
	Amount      *decimal.Decimal
	Source      *string
	Description *string
	Date        *time.Time
	Category    *string
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income update.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*entity.Income, error) {
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return nil, notFoundError(err)
		}
		return nil, fmt.Errorf("failed to find income: %w", err)
	}

	updated := *income
	if input.Amount != nil {
		updated.Amount = *input.Amount
	}
	if input.Source != nil {
		updated.Source = *input.Source
	}
	if input.Category != nil {
		updated.Category = *input.Category
	}
	if input.Description != nil {
		updated.Description = trimOptional(input.Description)
	}
	if input.Date != nil {
		updated.Date = *input.Date
	}

	updated.Source, updated.Category, err = validateIncomeFields(updated.Amount, updated.Source, updated.Category)
	if err != nil {
		return nil, err
	}

	updated.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return &updated, nil
}
