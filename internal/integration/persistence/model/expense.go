// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_user_category_date"`
	Category    string          `gorm:"type:varchar(100);not null;index:idx_expenses_user_category_date"`
	Date        time.Time       `gorm:"not null;index:idx_expenses_user_category_date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.Date.UTC(),
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		UserID:      expense.UserID,
		Category:    expense.Category,
		Date:        expense.Date.UTC(),
		Amount:      expense.Amount,
		Description: expense.Description,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
