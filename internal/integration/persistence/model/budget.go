// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_budgets_user_category"`
	Category    string          `gorm:"type:varchar(100);not null;index:idx_budgets_user_category"`
	LimitAmount decimal.Decimal `gorm:"column:limit_amount;type:decimal(15,2);not null"`
	Period      string          `gorm:"type:varchar(10);not null"`
	StartDate   time.Time       `gorm:"not null"`
	EndDate     *time.Time
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		UserID:    m.UserID,
		Category:  m.Category,
		Limit:     m.LimitAmount,
		Period:    entity.BudgetPeriod(m.Period),
		StartDate: m.StartDate.UTC(),
		EndDate:   utcPtr(m.EndDate),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:          budget.ID,
		UserID:      budget.UserID,
		Category:    budget.Category,
		LimitAmount: budget.Limit,
		Period:      string(budget.Period),
		StartDate:   budget.StartDate.UTC(),
		EndDate:     utcPtr(budget.EndDate),
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
}

// utcPtr normalizes optional instants so stored values compare consistently.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
