// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"log/slog"
	"strings"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// SuggestCategoryInput holds the description to classify.
type SuggestCategoryInput struct {
	Description string
}

// SuggestCategoryOutput holds the suggested catalog category.
type SuggestCategoryOutput struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// SuggestCategoryUseCase proposes an expense category from its description.
type SuggestCategoryUseCase struct {
	suggester adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(suggester adapter.CategorySuggester) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		suggester: suggester,
	}
}

// Execute asks the suggester for a category. Answers outside the catalog fall back to the default category.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			nil,
		)
	}

	if uc.suggester == nil || !uc.suggester.IsAvailable() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion is not configured",
			domainerror.ErrCategorySuggestionUnavailable,
		)
	}

	suggestion, err := uc.suggester.Suggest(ctx, description, entity.ExpenseCategories)
	if err != nil {
		slog.WarnContext(ctx, "category suggestion failed", "error", err)
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSuggestionFailed,
			"could not suggest a category",
			err,
		)
	}

	category, ok := entity.MatchExpenseCategory(suggestion.Category)
	if !ok {
		return &SuggestCategoryOutput{
			Category:   entity.DefaultExpenseCategory,
			Confidence: 0,
			Reasoning:  suggestion.Reasoning,
		}, nil
	}

	return &SuggestCategoryOutput{
		Category:   category,
		Confidence: suggestion.Confidence,
		Reasoning:  suggestion.Reasoning,
	}, nil
}
