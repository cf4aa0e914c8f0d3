// Package simulation contains what-if spending simulation use cases.
package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteSimulationInput identifies the simulation to delete.
type DeleteSimulationInput struct {
	SimulationID uuid.UUID
	UserID       uuid.UUID
}

// DeleteSimulationUseCase deletes a simulation together with its items.
type DeleteSimulationUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewDeleteSimulationUseCase creates a new DeleteSimulationUseCase instance.
func NewDeleteSimulationUseCase(simulationRepo adapter.SimulationRepository) *DeleteSimulationUseCase {
	return &DeleteSimulationUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteSimulationUseCase) Execute(ctx context.Context, input DeleteSimulationInput) error {
	if err := uc.simulationRepo.Delete(ctx, input.SimulationID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrSimulationNotFound) {
			return notFoundError(err)
		}
		return fmt.Errorf("failed to delete simulation: %w", err)
	}
	return nil
}
