// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents money received by a user. It plays no part in budget evaluation.
type Income struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Source      string
	Description *string
	Date        time.Time
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(userID uuid.UUID, amount decimal.Decimal, source string, description *string, date time.Time, category string) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Source:      source,
		Description: description,
		Date:        date,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
