// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// SimulationRepository defines the interface for simulation persistence operations.
type SimulationRepository interface {
	// Create persists a simulation together with its items.
	Create(ctx context.Context, simulation *entity.Simulation) error

	// FindByIDWithItems retrieves a simulation of the user with its items in stored order.
	FindByIDWithItems(ctx context.Context, id, userID uuid.UUID) (*entity.Simulation, error)

	// FindByUserID retrieves all simulations of a user with their items, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Simulation, error)

	// Delete removes a simulation and its items.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
