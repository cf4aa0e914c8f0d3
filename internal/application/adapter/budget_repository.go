// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
// Lookups are always scoped to the owning user.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID for the given user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// FindByUserID retrieves all budgets of a user ordered by creation time.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindByUserAndCategories retrieves the user's budgets whose category is in categories,
	// ordered by creation time. No activity filtering is applied.
	FindByUserAndCategories(ctx context.Context, userID uuid.UUID, categories []string) ([]*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget owned by the given user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
