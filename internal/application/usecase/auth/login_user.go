package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginUserUseCase exchanges credentials for a session.
type LoginUserUseCase struct {
	users    adapter.UserRepository
	hasher   adapter.PasswordHasher
	sessions adapter.SessionService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	users adapter.UserRepository,
	hasher adapter.PasswordHasher,
	sessions adapter.SessionService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
	}
}

// Execute checks the password and opens a session. RememberMe opens an extended one.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*SessionOutput, error) {
	user, err := uc.users.FindByEmail(ctx, entity.NormalizeEmail(input.Email))
	if err != nil {
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			slog.ErrorContext(ctx, "user lookup failed during login", "error", err)
		}
		return nil, errInvalidCredentials()
	}

	if !uc.hasher.Matches(user.PasswordHash, input.Password) {
		return nil, errInvalidCredentials()
	}

	session, err := uc.sessions.Open(ctx, user, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	return newSessionOutput(session, user), nil
}
