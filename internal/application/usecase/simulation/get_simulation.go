// Package simulation contains what-if spending simulation use cases.
package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetSimulationInput identifies a simulation.
type GetSimulationInput struct {
	SimulationID uuid.UUID
	UserID       uuid.UUID
}

// GetSimulationOutput holds the simulation with its items.
type GetSimulationOutput struct {
	Simulation *entity.Simulation
}

// GetSimulationUseCase handles fetching one simulation.
type GetSimulationUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewGetSimulationUseCase creates a new GetSimulationUseCase instance.
func NewGetSimulationUseCase(simulationRepo adapter.SimulationRepository) *GetSimulationUseCase {
	return &GetSimulationUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute fetches the simulation.
func (uc *GetSimulationUseCase) Execute(ctx context.Context, input GetSimulationInput) (*GetSimulationOutput, error) {
	simulation, err := findSimulation(ctx, uc.simulationRepo, input.SimulationID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetSimulationOutput{Simulation: simulation}, nil
}

func findSimulation(ctx context.Context, repo adapter.SimulationRepository, id, userID uuid.UUID) (*entity.Simulation, error) {
	simulation, err := repo.FindByIDWithItems(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSimulationNotFound) {
			return nil, notFoundError(err)
		}
		return nil, fmt.Errorf("failed to find simulation: %w", err)
	}
	return simulation, nil
}
