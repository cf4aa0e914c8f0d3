// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// SimulationModel represents the simulations table in the database.
type SimulationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Items []SimulatedExpenseModel `gorm:"foreignKey:SimulationID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the SimulationModel.
func (SimulationModel) TableName() string {
	return "simulations"
}

// SimulatedExpenseModel represents the simulated_expenses table in the database.
type SimulatedExpenseModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SimulationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position     int             `gorm:"not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description  string          `gorm:"type:varchar(255);not null"`
	Category     string          `gorm:"type:varchar(100);not null"`
	Date         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SimulatedExpenseModel.
func (SimulatedExpenseModel) TableName() string {
	return "simulated_expenses"
}

// ToEntity converts a SimulationModel and its loaded items to a domain Simulation.
func (m *SimulationModel) ToEntity() *entity.Simulation {
	items := make([]*entity.SimulatedExpense, len(m.Items))
	for i, item := range m.Items {
		items[i] = &entity.SimulatedExpense{
			ID:           item.ID,
			SimulationID: item.SimulationID,
			Position:     item.Position,
			Amount:       item.Amount,
			Description:  item.Description,
			Category:     item.Category,
			Date:         item.Date.UTC(),
		}
	}

	return &entity.Simulation{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Items:     items,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SimulationFromEntity creates a SimulationModel with its items from a domain Simulation.
func SimulationFromEntity(simulation *entity.Simulation) *SimulationModel {
	items := make([]SimulatedExpenseModel, len(simulation.Items))
	for i, item := range simulation.Items {
		items[i] = SimulatedExpenseModel{
			ID:           item.ID,
			SimulationID: simulation.ID,
			Position:     item.Position,
			Amount:       item.Amount,
			Description:  item.Description,
			Category:     item.Category,
			Date:         item.Date.UTC(),
		}
	}

	return &SimulationModel{
		ID:        simulation.ID,
		UserID:    simulation.UserID,
		Name:      simulation.Name,
		CreatedAt: simulation.CreatedAt,
		UpdatedAt: simulation.UpdatedAt,
		Items:     items,
	}
}
