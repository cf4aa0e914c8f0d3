// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents money spent by a user.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(userID uuid.UUID, amount decimal.Decimal, description string, date time.Time, category string) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Date:        date,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseFilter narrows an expense listing.
type ExpenseFilter struct {
	UserID    uuid.UUID
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
}
