// Package user contains account profile use cases.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// UpdatePreferencesInput holds the profile fields to change. Nil fields are left unchanged.
type UpdatePreferencesInput struct {
	UserID             uuid.UUID
	Name               *string
	EmailNotifications *bool
	BudgetAlerts       *bool
}

// UpdatePreferencesUseCase changes the user's name and alert e-mail opt-in.
type UpdatePreferencesUseCase struct {
	userRepo adapter.UserRepository
	profile  *GetProfileUseCase
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(userRepo adapter.UserRepository) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		userRepo: userRepo,
		profile:  NewGetProfileUseCase(userRepo),
	}
}

// Execute applies the changes.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (*entity.User, error) {
	user, err := uc.profile.Execute(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			user.Name = name
		}
	}
	if input.EmailNotifications != nil {
		user.EmailNotifications = *input.EmailNotifications
	}
	if input.BudgetAlerts != nil {
		user.BudgetAlerts = *input.BudgetAlerts
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
