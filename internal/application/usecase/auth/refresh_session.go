package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// RefreshSessionInput carries the refresh token being rotated.
type RefreshSessionInput struct {
	RefreshToken string
}

// RefreshSessionUseCase rotates a refresh token: the old one is revoked and a new session is opened.
type RefreshSessionUseCase struct {
	users    adapter.UserRepository
	sessions adapter.SessionService
}

// NewRefreshSessionUseCase creates a new RefreshSessionUseCase instance.
func NewRefreshSessionUseCase(users adapter.UserRepository, sessions adapter.SessionService) *RefreshSessionUseCase {
	return &RefreshSessionUseCase{
		users:    users,
		sessions: sessions,
	}
}

// Execute rejects revoked or expired tokens and tokens of deleted users.
func (uc *RefreshSessionUseCase) Execute(ctx context.Context, input RefreshSessionInput) (*SessionOutput, error) {
	principal, err := uc.sessions.VerifyRefresh(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, adapter.ErrSessionRevoked) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidToken,
				"refresh token has been revoked",
				domainerror.ErrInvalidToken,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired refresh token",
			fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err),
		)
	}

	user, err := uc.users.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidToken,
				"account no longer exists",
				domainerror.ErrInvalidToken,
			)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := uc.sessions.Revoke(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	session, err := uc.sessions.Open(ctx, user, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	return newSessionOutput(session, user), nil
}
