package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// UserRepository stores accounts. Lookups return domainerror.ErrUserNotFound when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail expects an address already passed through entity.NormalizeEmail.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile persists the name and notification preferences only.
	UpdateProfile(ctx context.Context, user *entity.User) error
}
