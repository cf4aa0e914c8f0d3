// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// EvaluateImpactInput represents the candidate spending to evaluate against the user's budgets.
type EvaluateImpactInput struct {
	UserID uuid.UUID
	Items  []valueobject.SpendingItem
}

// EvaluateImpactOutput holds one usage per matching budget, in repository order.
type EvaluateImpactOutput struct {
	Usages []valueobject.BudgetUsage

	// FailedBudgetIDs lists budgets skipped because their expenses could not be loaded.
	FailedBudgetIDs []uuid.UUID
}

// EvaluateImpactUseCase computes how candidate spending affects every budget sharing its categories.
type EvaluateImpactUseCase struct {
	budgetRepo adapter.BudgetRepository
	usage      *usageLoader
	metrics    adapter.MetricsRecorder
}

// NewEvaluateImpactUseCase creates a new EvaluateImpactUseCase instance.
func NewEvaluateImpactUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
) *EvaluateImpactUseCase {
	return &EvaluateImpactUseCase{
		budgetRepo: budgetRepo,
		usage:      &usageLoader{expenseRepo: expenseRepo, clock: clock},
		metrics:    metrics,
	}
}

// Execute evaluates the candidates. Inactive budgets are evaluated too and flagged
// through BudgetUsage.IsActive.
func (uc *EvaluateImpactUseCase) Execute(ctx context.Context, input EvaluateImpactInput) (*EvaluateImpactOutput, error) {
	output := &EvaluateImpactOutput{
		Usages: make([]valueobject.BudgetUsage, 0),
	}

	categories := distinctCategories(input.Items)
	if len(categories) == 0 {
		return output, nil
	}

	budgets, err := uc.budgetRepo.FindByUserAndCategories(ctx, input.UserID, categories)
	if err != nil {
		return nil, fmt.Errorf("failed to find budgets: %w", err)
	}
	if len(budgets) == 0 {
		return output, nil
	}

	now := uc.usage.clock.Now()

	for _, b := range budgets {
		usage, err := uc.usage.load(ctx, b, input.Items, now)
		if err != nil {
			slog.ErrorContext(ctx, "budget evaluation failed",
				"user_id", input.UserID,
				"budget_id", b.ID,
				"error", err,
			)
			uc.metrics.RecordEvaluation(adapter.OutcomeFailure)
			output.FailedBudgetIDs = append(output.FailedBudgetIDs, b.ID)
			continue
		}

		uc.metrics.RecordEvaluation(adapter.OutcomeSuccess)
		output.Usages = append(output.Usages, usage)
	}

	return output, nil
}

// distinctCategories returns the categories of items in first-seen order.
func distinctCategories(items []valueobject.SpendingItem) []string {
	seen := make(map[string]struct{}, len(items))
	categories := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories
}
