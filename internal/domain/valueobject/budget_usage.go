package valueobject

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// Alert thresholds, in percent of the budget limit.
var (
	WarningThreshold  = decimal.NewFromInt(80)
	ExceededThreshold = decimal.NewFromInt(100)
)

var hundred = decimal.NewFromInt(100)

// BudgetUsage is the derived spending snapshot of a budget for its current period.
type BudgetUsage struct {
	Budget        *entity.Budget
	Spent         decimal.Decimal
	Limit         decimal.Decimal
	Remaining     decimal.Decimal
	Percentage    decimal.Decimal // Capped at 100, for display
	RawPercentage decimal.Decimal
	IsOverBudget  bool
	IsActive      bool
	PeriodStart   time.Time
	PeriodEnd     time.Time
	MatchingItems []SpendingItem
}

// CalculateUsage filters items to the budget's category and current period and
// derives the usage figures. Over-budget status uses the uncapped comparison.
func CalculateUsage(budget *entity.Budget, items []SpendingItem, now time.Time) BudgetUsage {
	period := CurrentPeriod(budget.Period, budget.StartDate, budget.EndDate, now)

	spent := decimal.Zero
	matching := make([]SpendingItem, 0)
	for _, item := range items {
		if item.Category != budget.Category || !period.Contains(item.Date) {
			continue
		}
		spent = spent.Add(item.Amount)
		matching = append(matching, item)
	}

	raw := decimal.Zero
	if budget.Limit.IsPositive() {
		raw = spent.Div(budget.Limit).Mul(hundred)
	}

	return BudgetUsage{
		Budget:        budget,
		Spent:         spent,
		Limit:         budget.Limit,
		Remaining:     budget.Limit.Sub(spent),
		Percentage:    decimal.Min(raw, ExceededThreshold),
		RawPercentage: raw,
		IsOverBudget:  spent.GreaterThan(budget.Limit),
		IsActive:      budget.IsActive(now),
		PeriodStart:   period.Start,
		PeriodEnd:     period.End,
		MatchingItems: matching,
	}
}

// AlertType classifies the usage. The second return value is false when no alert applies.
func (u BudgetUsage) AlertType() (entity.NotificationType, bool) {
	if u.IsOverBudget {
		return entity.NotificationTypeBudgetExceeded, true
	}
	if u.RawPercentage.GreaterThanOrEqual(WarningThreshold) {
		return entity.NotificationTypeBudgetWarning, true
	}
	return "", false
}
