// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/expense"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required,min=1,max=255"`
	Date        string          `json:"date" binding:"required"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Date        *string          `json:"date,omitempty"`
	Category    *string          `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
}

// SuggestCategoryRequest represents the request body for category suggestion.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required,max=255"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseWithAlertsResponse is returned by expense create and update.
type ExpenseWithAlertsResponse struct {
	Expense       ExpenseResponse        `json:"expense"`
	Notifications []NotificationResponse `json:"notifications"`
	BudgetStatus  []BudgetUsageResponse  `json:"budget_status"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// SuggestCategoryResponse represents the suggested category.
type SuggestCategoryResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Amount:      FormatMoney(e.Amount),
		Description: e.Description,
		Date:        formatDate(e.Date),
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseResponses converts a list of expenses.
func ToExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return responses
}

// ToExpenseListResponse converts a list of expenses and sums their amounts.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return ExpenseListResponse{
		Expenses: ToExpenseResponses(expenses),
		Total:    FormatMoney(total),
	}
}

// ToExpenseWithAlertsResponse converts the create/update result.
func ToExpenseWithAlertsResponse(result *expense.ExpenseWithAlerts) ExpenseWithAlertsResponse {
	return ExpenseWithAlertsResponse{
		Expense:       ToExpenseResponse(result.Expense),
		Notifications: ToNotificationResponses(result.Notifications),
		BudgetStatus:  ToBudgetUsageResponses(result.BudgetStatus),
	}
}
