package auth

import (
	"context"
	"log/slog"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// LogoutUserUseCase revokes a refresh token. It never fails: an unknown or
// already revoked token still counts as logged out.
type LogoutUserUseCase struct {
	sessions adapter.SessionService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(sessions adapter.SessionService) *LogoutUserUseCase {
	return &LogoutUserUseCase{sessions: sessions}
}

func (uc *LogoutUserUseCase) Execute(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	if err := uc.sessions.Revoke(ctx, refreshToken); err != nil {
		slog.WarnContext(ctx, "refresh token revocation failed", "error", err)
	}
}
