package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email         string
	Name          string
	Password      string
	TermsAccepted bool
}

// RegisterUserUseCase creates an account and opens its first session.
type RegisterUserUseCase struct {
	users    adapter.UserRepository
	hasher   adapter.PasswordHasher
	sessions adapter.SessionService
	clock    adapter.Clock
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	users adapter.UserRepository,
	hasher adapter.PasswordHasher,
	sessions adapter.SessionService,
	clock adapter.Clock,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
		clock:    clock,
	}
}

// Execute validates the input, stores the user and returns a regular session.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*SessionOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	switch {
	case strings.TrimSpace(input.Name) == "":
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingFields, "name is required", nil)
	case !input.TermsAccepted:
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeTermsNotAccepted,
			"terms of service must be accepted",
			domainerror.ErrTermsNotAccepted,
		)
	case !entity.IsValidEmail(email):
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	case !entity.IsStrongPassword(input.Password):
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			fmt.Sprintf("password needs at least %d characters with a letter and a digit", entity.MinPasswordLength),
			domainerror.ErrWeakPassword,
		)
	}

	_, err := uc.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	case !errors.Is(err, domainerror.ErrUserNotFound):
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, input.Name, hash, uc.clock.Now())
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	session, err := uc.sessions.Open(ctx, user, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	return newSessionOutput(session, user), nil
}
