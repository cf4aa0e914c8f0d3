// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/simulation"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// SimulatedExpenseRequest is one hypothetical expense.
type SimulatedExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required,min=1,max=255"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Date        string          `json:"date" binding:"required"`
}

// CreateSimulationRequest represents the request body for simulation creation.
type CreateSimulationRequest struct {
	Name  string                    `json:"name" binding:"required,min=1,max=100"`
	Items []SimulatedExpenseRequest `json:"items" binding:"required,min=1,dive"`
}

// PreviewImpactRequest represents ad-hoc items to evaluate without storing them.
type PreviewImpactRequest struct {
	Items []SimulatedExpenseRequest `json:"items" binding:"required,min=1,dive"`
}

// SimulatedExpenseResponse represents one stored simulation item.
type SimulatedExpenseResponse struct {
	ID          string `json:"id"`
	Position    int    `json:"position"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

// SimulationResponse represents a single simulation in API responses.
type SimulationResponse struct {
	ID        string                     `json:"id"`
	UserID    string                     `json:"user_id"`
	Name      string                     `json:"name"`
	Total     string                     `json:"total"`
	Items     []SimulatedExpenseResponse `json:"items"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// SimulationListResponse represents the response for listing simulations.
type SimulationListResponse struct {
	Simulations []SimulationResponse `json:"simulations"`
}

// ImpactResponse is the projected budget usage of a set of hypothetical expenses.
type ImpactResponse struct {
	Total           string                `json:"total"`
	Budgets         []BudgetUsageResponse `json:"budgets"`
	FailedBudgetIDs []string              `json:"failed_budget_ids,omitempty"`
}

// ConvertSimulationResponse lists the expenses created from a simulation.
type ConvertSimulationResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToSimulationResponse converts a domain Simulation to its DTO.
func ToSimulationResponse(s *entity.Simulation) SimulationResponse {
	items := make([]SimulatedExpenseResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SimulatedExpenseResponse{
			ID:          item.ID.String(),
			Position:    item.Position,
			Amount:      FormatMoney(item.Amount),
			Description: item.Description,
			Category:    item.Category,
			Date:        formatDate(item.Date),
		}
	}

	return SimulationResponse{
		ID:        s.ID.String(),
		UserID:    s.UserID.String(),
		Name:      s.Name,
		Total:     FormatMoney(s.Total()),
		Items:     items,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSimulationListResponse converts a list of simulations.
func ToSimulationListResponse(simulations []*entity.Simulation) SimulationListResponse {
	responses := make([]SimulationResponse, len(simulations))
	for i, s := range simulations {
		responses[i] = ToSimulationResponse(s)
	}
	return SimulationListResponse{
		Simulations: responses,
	}
}

// ToImpactResponse converts a preview result to its DTO.
func ToImpactResponse(output *simulation.PreviewImpactOutput) ImpactResponse {
	response := ImpactResponse{
		Total:   FormatMoney(output.Total),
		Budgets: ToBudgetUsageResponses(output.Usages),
	}
	for _, id := range output.FailedBudgetIDs {
		response.FailedBudgetIDs = append(response.FailedBudgetIDs, id.String())
	}
	return response
}
