// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source" binding:"required,min=1,max=100"`
	Description *string         `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        string          `json:"date" binding:"required"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
}

// UpdateIncomeRequest represents the request body for income update.
type UpdateIncomeRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Source      *string          `json:"source,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        *string          `json:"date,omitempty"`
	Category    *string          `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      string    `json:"amount"`
	Source      string    `json:"source"`
	Description *string   `json:"description,omitempty"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
	Total   string           `json:"total"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(i *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          i.ID.String(),
		UserID:      i.UserID.String(),
		Amount:      FormatMoney(i.Amount),
		Source:      i.Source,
		Description: i.Description,
		Date:        formatDate(i.Date),
		Category:    i.Category,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ToIncomeListResponse converts a list of incomes and sums their amounts.
func ToIncomeListResponse(incomes []*entity.Income) IncomeListResponse {
	total := decimal.Zero
	responses := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		responses[i] = ToIncomeResponse(income)
		total = total.Add(income.Amount)
	}
	return IncomeListResponse{
		Incomes: responses,
		Total:   FormatMoney(total),
	}
}
