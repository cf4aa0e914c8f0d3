// Package simulation contains what-if spending simulation use cases.
package simulation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListSimulationsInput represents the input for listing simulations.
type ListSimulationsInput struct {
	UserID uuid.UUID
}

// ListSimulationsOutput represents the output of listing simulations.
type ListSimulationsOutput struct {
	Simulations []*entity.Simulation
}

// ListSimulationsUseCase handles listing simulations logic.
type ListSimulationsUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewListSimulationsUseCase creates a new ListSimulationsUseCase instance.
func NewListSimulationsUseCase(simulationRepo adapter.SimulationRepository) *ListSimulationsUseCase {
	return &ListSimulationsUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute performs the simulation listing.
func (uc *ListSimulationsUseCase) Execute(ctx context.Context, input ListSimulationsInput) (*ListSimulationsOutput, error) {
	simulations, err := uc.simulationRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	if simulations == nil {
		simulations = make([]*entity.Simulation, 0)
	}
	return &ListSimulationsOutput{Simulations: simulations}, nil
}
