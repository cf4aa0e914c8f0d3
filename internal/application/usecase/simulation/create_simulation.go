// Package simulation contains what-if spending simulation use cases.
package simulation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// ItemInput describes one hypothetical expense.
type ItemInput struct {
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// CreateSimulationInput represents the input for simulation creation.
type CreateSimulationInput struct {
	UserID uuid.UUID
	Name   string
	Items  []ItemInput
}

// CreateSimulationOutput represents the output of simulation creation.
type CreateSimulationOutput struct {
	Simulation *entity.Simulation
}

// CreateSimulationUseCase handles simulation creation logic.
type CreateSimulationUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewCreateSimulationUseCase creates a new CreateSimulationUseCase instance.
func NewCreateSimulationUseCase(simulationRepo adapter.SimulationRepository) *CreateSimulationUseCase {
	return &CreateSimulationUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute performs the simulation creation. Items keep the order they were given in.
func (uc *CreateSimulationUseCase) Execute(ctx context.Context, input CreateSimulationInput) (*CreateSimulationOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSimulationError(
			domainerror.ErrCodeMissingSimulationFields,
			"name is required",
			nil,
		)
	}

	items, err := validateItems(input.Items)
	if err != nil {
		return nil, err
	}

	simulation := entity.NewSimulation(input.UserID, name, items)

	if err := uc.simulationRepo.Create(ctx, simulation); err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	return &CreateSimulationOutput{
		Simulation: simulation,
	}, nil
}

// validateItems checks every item and converts it into a simulated expense.
func validateItems(inputs []ItemInput) ([]*entity.SimulatedExpense, error) {
	items := make([]*entity.SimulatedExpense, 0, len(inputs))
	for i, in := range inputs {
		category := strings.TrimSpace(in.Category)
		if !in.Amount.IsPositive() || category == "" {
			return nil, domainerror.NewSimulationError(
				domainerror.ErrCodeInvalidSimulatedExpense,
				fmt.Sprintf("item %d must have a positive amount and a category", i+1),
				domainerror.ErrInvalidSimulatedExpense,
			)
		}
		items = append(items, &entity.SimulatedExpense{
			Amount:      in.Amount,
			Description: strings.TrimSpace(in.Description),
			Category:    category,
			Date:        in.Date,
		})
	}
	return items, nil
}

// notFoundError maps a repository miss to the coded simulation error.
func notFoundError(err error) error {
	return domainerror.NewSimulationError(
		domainerror.ErrCodeSimulationNotFound,
		"simulation not found",
		err,
	)
}
