// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Source      string          `gorm:"type:varchar(100);not null"`
	Description *string         `gorm:"type:varchar(255)"`
	Date        time.Time       `gorm:"not null"`
	Category    string          `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Source:      m.Source,
		Description: m.Description,
		Date:        m.Date.UTC(),
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:          income.ID,
		UserID:      income.UserID,
		Amount:      income.Amount,
		Source:      income.Source,
		Description: income.Description,
		Date:        income.Date.UTC(),
		Category:    income.Category,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
}
