package valueobject

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// SpendingItem is an expense-like record fed to the usage calculator.
// A nil ID marks a hypothetical item that has not been persisted.
type SpendingItem struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// IsHypothetical reports whether the item has no persisted identity.
func (i SpendingItem) IsHypothetical() bool {
	return i.ID == uuid.Nil
}

// SpendingItemFromExpense converts a persisted expense.
func SpendingItemFromExpense(e *entity.Expense) SpendingItem {
	return SpendingItem{
		ID:          e.ID,
		Amount:      e.Amount,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
	}
}

// SpendingItemsFromExpenses converts a slice of persisted expenses.
func SpendingItemsFromExpenses(expenses []*entity.Expense) []SpendingItem {
	items := make([]SpendingItem, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, SpendingItemFromExpense(e))
	}
	return items
}

// SpendingItemFromSimulated converts a simulated line item. Its ID is dropped
// since it never matches a persisted expense.
func SpendingItemFromSimulated(s *entity.SimulatedExpense) SpendingItem {
	return SpendingItem{
		Amount:      s.Amount,
		Description: s.Description,
		Category:    s.Category,
		Date:        s.Date,
	}
}
