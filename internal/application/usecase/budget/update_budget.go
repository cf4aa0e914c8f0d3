// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update. Nil fields are left unchanged.
type UpdateBudgetInput struct {
	BudgetID     uuid.UUID
	UserID       uuid.UUID
	Category     *string
	Limit        *decimal.Decimal
	Period       *entity.BudgetPeriod
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, notFoundError(err)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	// Work on a copy so a rejected update leaves the stored entity untouched
	updated := *budget

	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeMissingBudgetFields,
				"category is required",
				domainerror.ErrBudgetCategoryRequired,
			)
		}
		updated.Category = category
	}
	if input.Limit != nil {
		updated.Limit = *input.Limit
	}
	if input.Period != nil {
		updated.Period = *input.Period
	}
	if input.StartDate != nil {
		updated.StartDate = *input.StartDate
	}
	if input.ClearEndDate {
		updated.EndDate = nil
	} else if input.EndDate != nil {
		updated.EndDate = input.EndDate
	}

	if err := validateBudgetFields(updated.Limit, updated.Period, updated.StartDate, updated.EndDate); err != nil {
		return nil, err
	}

	updated.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: &updated,
	}, nil
}
