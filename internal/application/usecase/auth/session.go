// Package auth contains the account and session use cases.
package auth

import (
	"time"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// SessionOutput is returned by every use case that opens a session.
type SessionOutput struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
	User            *entity.User
}

func newSessionOutput(session *adapter.Session, user *entity.User) *SessionOutput {
	return &SessionOutput{
		AccessToken:     session.AccessToken,
		RefreshToken:    session.RefreshToken,
		AccessExpiresAt: session.AccessExpiresAt,
		User:            user,
	}
}

// errInvalidCredentials hides whether the e-mail or the password was wrong.
func errInvalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
