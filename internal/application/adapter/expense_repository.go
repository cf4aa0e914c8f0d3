// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID for the given user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)

	// List retrieves the expenses matching the filter, most recent first.
	List(ctx context.Context, filter entity.ExpenseFilter) ([]*entity.Expense, error)

	// FindByUserCategoryAndRange retrieves the user's expenses in category whose date
	// lies within [start, end], both ends inclusive.
	FindByUserCategoryAndRange(ctx context.Context, userID uuid.UUID, category string, start, end time.Time) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense owned by the given user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
