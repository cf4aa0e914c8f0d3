// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category  string          `json:"category" binding:"required,min=1,max=100"`
	Limit     decimal.Decimal `json:"limit"`
	Period    string          `json:"period" binding:"required,oneof=daily weekly monthly"`
	StartDate string          `json:"start_date" binding:"required"`
	EndDate   *string         `json:"end_date,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category     *string          `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Limit        *decimal.Decimal `json:"limit,omitempty"`
	Period       *string          `json:"period,omitempty" binding:"omitempty,oneof=daily weekly monthly"`
	StartDate    *string          `json:"start_date,omitempty"`
	EndDate      *string          `json:"end_date,omitempty"`
	ClearEndDate bool             `json:"clear_end_date,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Category  string    `json:"category"`
	Limit     string    `json:"limit"`
	Period    string    `json:"period"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetUsageResponse is the current-period usage of a budget.
type BudgetUsageResponse struct {
	Budget        BudgetResponse `json:"budget"`
	Spent         string         `json:"spent"`
	Limit         string         `json:"limit"`
	Remaining     string         `json:"remaining"`
	Percentage    float64        `json:"percentage"`
	RawPercentage float64        `json:"raw_percentage"`
	IsOverBudget  bool           `json:"is_over_budget"`
	IsActive      bool           `json:"is_active"`
	PeriodStart   time.Time      `json:"period_start"`
	PeriodEnd     time.Time      `json:"period_end"`
	MatchingCount int            `json:"matching_count"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetUsageResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	response := BudgetResponse{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		Category:  b.Category,
		Limit:     FormatMoney(b.Limit),
		Period:    string(b.Period),
		StartDate: formatDate(b.StartDate),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.EndDate != nil {
		dateStr := formatDate(*b.EndDate)
		response.EndDate = &dateStr
	}

	return response
}

// ToBudgetUsageResponse converts a BudgetUsage to its DTO.
func ToBudgetUsageResponse(u valueobject.BudgetUsage) BudgetUsageResponse {
	return BudgetUsageResponse{
		Budget:        ToBudgetResponse(u.Budget),
		Spent:         FormatMoney(u.Spent),
		Limit:         FormatMoney(u.Limit),
		Remaining:     FormatMoney(u.Remaining),
		Percentage:    FormatPercentage(u.Percentage),
		RawPercentage: FormatPercentage(u.RawPercentage),
		IsOverBudget:  u.IsOverBudget,
		IsActive:      u.IsActive,
		PeriodStart:   u.PeriodStart,
		PeriodEnd:     u.PeriodEnd,
		MatchingCount: len(u.MatchingItems),
	}
}

// ToBudgetUsageResponses converts a list of usages, keeping their order.
func ToBudgetUsageResponses(usages []valueobject.BudgetUsage) []BudgetUsageResponse {
	responses := make([]BudgetUsageResponse, len(usages))
	for i, u := range usages {
		responses[i] = ToBudgetUsageResponse(u)
	}
	return responses
}
