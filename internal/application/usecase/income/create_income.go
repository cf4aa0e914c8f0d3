// Package income contains income-related use cases.
package income

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

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Source      string
	Description *string // Optional
	Date        time.Time
	Category    string
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*entity.Income, error) {
	source, category, err := validateIncomeFields(input.Amount, input.Source, input.Category)
	if err != nil {
		return nil, err
	}

	income := entity.NewIncome(input.UserID, input.Amount, source, trimOptional(input.Description), input.Date, category)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return income, nil
}

func validateIncomeFields(amount decimal.Decimal, source, category string) (string, string, error) {
	if !amount.IsPositive() {
		return "", "", domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidIncomeAmount,
		)
	}

	source = strings.TrimSpace(source)
	category = strings.TrimSpace(category)
	if source == "" || category == "" {
		return "", "", domainerror.NewIncomeError(
			domainerror.ErrCodeMissingIncomeFields,
			"source and category are required",
			nil,
		)
	}

	return source, category, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func notFoundError(err error) error {
	return domainerror.NewIncomeError(
		domainerror.ErrCodeIncomeNotFound,
		"income not found",
		err,
	)
}
