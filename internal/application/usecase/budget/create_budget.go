// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID    uuid.UUID
	Category  string
	Limit     decimal.Decimal
	Period    entity.BudgetPeriod
	StartDate time.Time
	EndDate   *time.Time // Optional
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"category is required",
			domainerror.ErrBudgetCategoryRequired,
		)
	}

	if err := validateBudgetFields(input.Limit, input.Period, input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	budget := entity.NewBudget(input.UserID, category, input.Limit, input.Period, input.StartDate, input.EndDate)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}

// validateBudgetFields checks the budget invariants shared by create and update.
func validateBudgetFields(limit decimal.Decimal, period entity.BudgetPeriod, startDate time.Time, endDate *time.Time) error {
	if !limit.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit must be greater than zero",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	if !period.IsValid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'daily', 'weekly', or 'monthly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	if endDate != nil && endDate.Before(startDate) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidBudgetDateRange,
		)
	}

	return nil
}

// notFoundError maps a repository miss to the coded budget error.
func notFoundError(err error) error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		err,
	)
}
