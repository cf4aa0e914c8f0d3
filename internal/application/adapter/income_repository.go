// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	Create(ctx context.Context, income *entity.Income) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Income, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)
	Update(ctx context.Context, income *entity.Income) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
