package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/integration/persistence"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

type movableClock struct {
	now time.Time
}

func (c *movableClock) Now() time.Time { return c.now }

func newSessions(t *testing.T, clock *movableClock) *JWTSessions {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&model.RefreshTokenModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	ttl := SessionTTL{Access: 15 * time.Minute, Refresh: time.Hour}
	return NewJWTSessions("test-secret", ttl, persistence.NewRefreshTokenStore(db), clock)
}

func TestJWTSessions_OpenAndVerify(t *testing.T) {
	ctx := context.Background()
	clock := &movableClock{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	sessions := newSessions(t, clock)
	user := entity.NewUser("ana@example.com", "Ana", "hash", clock.now)

	session, err := sessions.Open(ctx, user, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := clock.now.Add(15 * time.Minute); !session.AccessExpiresAt.Equal(want) {
		t.Errorf("AccessExpiresAt = %v, want %v", session.AccessExpiresAt, want)
	}

	principal, err := sessions.VerifyAccess(ctx, session.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal.UserID != user.ID || principal.Email != user.Email {
		t.Errorf("unexpected principal %+v", principal)
	}

	refreshPrincipal, err := sessions.VerifyRefresh(ctx, session.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshPrincipal.SessionID == "" || refreshPrincipal.SessionID != principal.SessionID {
		t.Errorf("access and refresh tokens should share a session id, got %q and %q", principal.SessionID, refreshPrincipal.SessionID)
	}

	if _, err := sessions.VerifyAccess(ctx, session.RefreshToken); err == nil {
		t.Error("expected refresh token to be rejected as access token")
	}
	if _, err := sessions.VerifyRefresh(ctx, session.AccessToken); err == nil {
		t.Error("expected access token to be rejected as refresh token")
	}
}

func TestJWTSessions_ExpiryFollowsClock(t *testing.T) {
	ctx := context.Background()
	clock := &movableClock{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	sessions := newSessions(t, clock)
	user := entity.NewUser("ana@example.com", "Ana", "hash", clock.now)

	regular, err := sessions.Open(ctx, user, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	extended, err := sessions.Open(ctx, user, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.now = clock.now.Add(2 * time.Hour)

	if _, err := sessions.VerifyAccess(ctx, regular.AccessToken); err == nil {
		t.Error("expected regular access token to be expired")
	}
	if _, err := sessions.VerifyRefresh(ctx, regular.RefreshToken); err == nil {
		t.Error("expected regular refresh token to be expired")
	}
	if _, err := sessions.VerifyAccess(ctx, extended.AccessToken); err != nil {
		t.Errorf("expected extended access token to be valid: %v", err)
	}
	if _, err := sessions.VerifyRefresh(ctx, extended.RefreshToken); err != nil {
		t.Errorf("expected extended refresh token to be valid: %v", err)
	}
}

func TestJWTSessions_Revoke(t *testing.T) {
	ctx := context.Background()
	clock := &movableClock{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	sessions := newSessions(t, clock)
	user := entity.NewUser("ana@example.com", "Ana", "hash", clock.now)

	session, err := sessions.Open(ctx, user, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sessions.Revoke(ctx, session.RefreshToken); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = sessions.VerifyRefresh(ctx, session.RefreshToken)
	if !errors.Is(err, adapter.ErrSessionRevoked) {
		t.Errorf("expected ErrSessionRevoked, got %v", err)
	}

	// Revocation only concerns refresh tokens
	if _, err := sessions.VerifyAccess(ctx, session.AccessToken); err != nil {
		t.Errorf("access token should stay valid until it expires: %v", err)
	}
}

func TestJWTSessions_RejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	clock := &movableClock{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	user := entity.NewUser("ana@example.com", "Ana", "hash", clock.now)

	other := NewJWTSessions("another-secret", SessionTTL{Access: time.Minute, Refresh: time.Hour},
		newSessions(t, clock).store, clock)
	session, err := other.Open(ctx, user, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := newSessions(t, clock).VerifyAccess(ctx, session.AccessToken); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("s3cretpass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasher.Matches(hash, "s3cretpass") {
		t.Error("expected password to match its hash")
	}
	if hasher.Matches(hash, "s3cretpasS") {
		t.Error("expected a different password not to match")
	}

	if got := NewBcryptHasher(99).cost; got != DefaultBcryptCost {
		t.Errorf("out of range cost should fall back to %d, got %d", DefaultBcryptCost, got)
	}
}
