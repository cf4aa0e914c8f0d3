// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the recurrence of a budget.
type BudgetPeriod string

const (
	BudgetPeriodDaily   BudgetPeriod = "daily"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

// IsValid reports whether the period is one of the supported recurrences.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly:
		return true
	}
	return false
}

// Budget represents a recurring spending limit for one category.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Limit     decimal.Decimal
	Period    BudgetPeriod
	StartDate time.Time
	EndDate   *time.Time // Optional, open-ended when nil
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(
	userID uuid.UUID,
	category string,
	limit decimal.Decimal,
	period BudgetPeriod,
	startDate time.Time,
	endDate *time.Time,
) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Limit:     limit,
		Period:    period,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsActive reports whether the budget applies at the given instant.
// Both the start and the end date are inclusive.
func (b *Budget) IsActive(now time.Time) bool {
	if now.Before(b.StartDate) {
		return false
	}
	if b.EndDate != nil && now.After(*b.EndDate) {
		return false
	}
	return true
}
