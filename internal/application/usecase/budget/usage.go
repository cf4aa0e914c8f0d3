// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// usageLoader computes a budget's usage from its persisted expenses plus candidates.
type usageLoader struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// load fetches the persisted expenses of the budget's current period, merges the
// same-category candidates not already present by ID and runs the usage calculator.
func (l *usageLoader) load(
	ctx context.Context,
	budget *entity.Budget,
	candidates []valueobject.SpendingItem,
	now time.Time,
) (valueobject.BudgetUsage, error) {
	period := valueobject.CurrentPeriod(budget.Period, budget.StartDate, budget.EndDate, now)

	persisted, err := l.expenseRepo.FindByUserCategoryAndRange(ctx, budget.UserID, budget.Category, period.Start, period.End)
	if err != nil {
		return valueobject.BudgetUsage{}, fmt.Errorf("failed to load expenses for budget %s: %w", budget.ID, err)
	}

	items := valueobject.SpendingItemsFromExpenses(persisted)
	items = mergeCandidates(items, candidates, budget.Category)

	return valueobject.CalculateUsage(budget, items, now), nil
}

// mergeCandidates appends the candidates of category whose ID is not yet in items.
// Hypothetical candidates are always appended.
func mergeCandidates(items, candidates []valueobject.SpendingItem, category string) []valueobject.SpendingItem {
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		seen[item.ID] = struct{}{}
	}

	for _, c := range candidates {
		if c.Category != category {
			continue
		}
		if !c.IsHypothetical() {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
		}
		items = append(items, c)
	}

	return items
}
