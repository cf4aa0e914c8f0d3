package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// ErrSessionRevoked is returned for a refresh token that was rotated or logged out.
var ErrSessionRevoked = errors.New("session revoked")

// Session is the credential pair handed to a client after it authenticates.
type Session struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// Principal is the identity carried by a verified token.
type Principal struct {
	UserID    uuid.UUID
	Email     string
	SessionID string
}

// SessionService issues signed tokens. Refresh tokens are tracked server side so they can be revoked.
type SessionService interface {
	// Open starts a session for user. Extended sessions outlive the configured lifetimes.
	Open(ctx context.Context, user *entity.User, extended bool) (*Session, error)

	VerifyAccess(ctx context.Context, token string) (*Principal, error)

	// VerifyRefresh fails with ErrSessionRevoked once the token was rotated or logged out.
	VerifyRefresh(ctx context.Context, token string) (*Principal, error)

	Revoke(ctx context.Context, refreshToken string) error
}

// PasswordHasher hashes account passwords and checks candidates against a stored hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}
