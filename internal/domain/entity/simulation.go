// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Simulation is a named set of hypothetical expenses used to preview budget impact.
type Simulation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Items     []*SimulatedExpense // Ordered by Position
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SimulatedExpense is a single hypothetical line item owned by a Simulation.
type SimulatedExpense struct {
	ID           uuid.UUID
	SimulationID uuid.UUID
	Position     int
	Amount       decimal.Decimal
	Description  string
	Category     string
	Date         time.Time
}

// NewSimulation creates a new Simulation and assigns ownership and order to its items.
func NewSimulation(userID uuid.UUID, name string, items []*SimulatedExpense) *Simulation {
	now := time.Now().UTC()

	sim := &Simulation{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Items:     make([]*SimulatedExpense, 0, len(items)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for i, item := range items {
		item.ID = uuid.New()
		item.SimulationID = sim.ID
		item.Position = i
		sim.Items = append(sim.Items, item)
	}

	return sim
}

// Total returns the sum of all item amounts.
func (s *Simulation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Amount)
	}
	return total
}
