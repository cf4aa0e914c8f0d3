// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/budgetwise/backend/internal/domain/entity"

// CategoryCatalogResponse lists the known expense and income categories.
type CategoryCatalogResponse struct {
	Expense []string `json:"expense"`
	Income  []string `json:"income"`
}

// NewCategoryCatalogResponse builds the catalog from the domain lists.
func NewCategoryCatalogResponse() CategoryCatalogResponse {
	return CategoryCatalogResponse{
		Expense: append([]string(nil), entity.ExpenseCategories...),
		Income:  append([]string(nil), entity.IncomeCategories...),
	}
}
