// Package simulation contains what-if spending simulation use cases.
package simulation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// ConvertSimulationInput identifies the simulation to realize.
type ConvertSimulationInput struct {
	SimulationID uuid.UUID
	UserID       uuid.UUID
}

// ConvertSimulationOutput holds the expenses created, in item order.
type ConvertSimulationOutput struct {
	Expenses []*entity.Expense
}

// ConvertSimulationUseCase turns every item of a simulation into a real expense.
type ConvertSimulationUseCase struct {
	simulationRepo adapter.SimulationRepository
	expenseRepo    adapter.ExpenseRepository
	txManager      adapter.TransactionManager
}

// NewConvertSimulationUseCase creates a new ConvertSimulationUseCase instance.
func NewConvertSimulationUseCase(
	simulationRepo adapter.SimulationRepository,
	expenseRepo adapter.ExpenseRepository,
	txManager adapter.TransactionManager,
) *ConvertSimulationUseCase {
	return &ConvertSimulationUseCase{
		simulationRepo: simulationRepo,
		expenseRepo:    expenseRepo,
		txManager:      txManager,
	}
}

// Execute creates the expenses atomically: either every item is converted or none is.
// The simulation itself is kept.
func (uc *ConvertSimulationUseCase) Execute(ctx context.Context, input ConvertSimulationInput) (*ConvertSimulationOutput, error) {
	simulation, err := findSimulation(ctx, uc.simulationRepo, input.SimulationID, input.UserID)
	if err != nil {
		return nil, err
	}

	if len(simulation.Items) == 0 {
		return nil, domainerror.NewSimulationError(
			domainerror.ErrCodeEmptySimulation,
			"simulation has no items to convert",
			domainerror.ErrEmptySimulation,
		)
	}

	expenses := make([]*entity.Expense, 0, len(simulation.Items))

	err = uc.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, item := range simulation.Items {
			expense := entity.NewExpense(input.UserID, item.Amount, item.Description, item.Date, item.Category)
			if err := uc.expenseRepo.Create(txCtx, expense); err != nil {
				return fmt.Errorf("failed to create expense for item %d: %w", item.Position, err)
			}
			expenses = append(expenses, expense)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to convert simulation: %w", err)
	}

	return &ConvertSimulationOutput{
		Expenses: expenses,
	}, nil
}
