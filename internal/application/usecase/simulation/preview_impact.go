// Package simulation contains what-if spending simulation use cases.
package simulation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// ImpactEvaluator computes budget usage for candidate spending.
type ImpactEvaluator interface {
	Execute(ctx context.Context, input budget.EvaluateImpactInput) (*budget.EvaluateImpactOutput, error)
}

// PreviewImpactInput selects the hypothetical spending to preview: a stored
// simulation when SimulationID is set, otherwise the ad-hoc Items.
type PreviewImpactInput struct {
	UserID       uuid.UUID
	SimulationID *uuid.UUID
	Items        []ItemInput
}

// PreviewImpactOutput holds the per-budget usage the spending would produce.
type PreviewImpactOutput struct {
	Total           decimal.Decimal
	Usages          []valueobject.BudgetUsage
	FailedBudgetIDs []uuid.UUID
}

// PreviewImpactUseCase shows how a simulation would affect the user's budgets without recording anything.
type PreviewImpactUseCase struct {
	simulationRepo adapter.SimulationRepository
	evaluator      ImpactEvaluator
}

// NewPreviewImpactUseCase creates a new PreviewImpactUseCase instance.
func NewPreviewImpactUseCase(simulationRepo adapter.SimulationRepository, evaluator ImpactEvaluator) *PreviewImpactUseCase {
	return &PreviewImpactUseCase{
		simulationRepo: simulationRepo,
		evaluator:      evaluator,
	}
}

// Execute runs the preview.
func (uc *PreviewImpactUseCase) Execute(ctx context.Context, input PreviewImpactInput) (*PreviewImpactOutput, error) {
	var items []valueobject.SpendingItem

	if input.SimulationID != nil {
		simulation, err := findSimulation(ctx, uc.simulationRepo, *input.SimulationID, input.UserID)
		if err != nil {
			return nil, err
		}
		for _, item := range simulation.Items {
			items = append(items, valueobject.SpendingItemFromSimulated(item))
		}
	} else {
		simulated, err := validateItems(input.Items)
		if err != nil {
			return nil, err
		}
		for _, item := range simulated {
			items = append(items, valueobject.SpendingItemFromSimulated(item))
		}
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	evaluation, err := uc.evaluator.Execute(ctx, budget.EvaluateImpactInput{
		UserID: input.UserID,
		Items:  items,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate simulation impact: %w", err)
	}

	return &PreviewImpactOutput{
		Total:           total,
		Usages:          evaluation.Usages,
		FailedBudgetIDs: evaluation.FailedBudgetIDs,
	}, nil
}
