package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/integration/persistence"
)

const (
	sessionIssuer = "budgetwise"

	extendedAccessTTL  = 7 * 24 * time.Hour
	extendedRefreshTTL = 30 * 24 * time.Hour
)

type tokenKind string

const (
	kindAccess  tokenKind = "access"
	kindRefresh tokenKind = "refresh"
)

// SessionTTL is the lifetime of tokens in a regular session.
type SessionTTL struct {
	Access  time.Duration
	Refresh time.Duration
}

type sessionClaims struct {
	Email   string    `json:"email"`
	Kind    tokenKind `json:"kind"`
	Session string    `json:"sid"`
	jwt.RegisteredClaims
}

// JWTSessions signs HS256 tokens against the application clock and records
// refresh tokens in a RefreshTokenStore.
type JWTSessions struct {
	secret []byte
	ttl    SessionTTL
	store  persistence.RefreshTokenStore
	clock  adapter.Clock
	parser *jwt.Parser
}

// NewJWTSessions creates a session service. Expiry checks use clock, not the wall clock.
func NewJWTSessions(secret string, ttl SessionTTL, store persistence.RefreshTokenStore, clock adapter.Clock) *JWTSessions {
	return &JWTSessions{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		clock:  clock,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(sessionIssuer),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(clock.Now),
		),
	}
}

var _ adapter.SessionService = (*JWTSessions)(nil)

func (s *JWTSessions) Open(ctx context.Context, user *entity.User, extended bool) (*adapter.Session, error) {
	accessTTL, refreshTTL := s.ttl.Access, s.ttl.Refresh
	if extended {
		accessTTL, refreshTTL = extendedAccessTTL, extendedRefreshTTL
	}

	now := s.clock.Now().UTC()
	sessionID := uuid.NewString()

	access, err := s.sign(user, kindAccess, sessionID, now, accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.sign(user, kindRefresh, sessionID, now, refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.store.Save(ctx, refresh, user.ID, now.Add(refreshTTL), now); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &adapter.Session{
		AccessToken:     access,
		RefreshToken:    refresh,
		AccessExpiresAt: now.Add(accessTTL),
	}, nil
}

func (s *JWTSessions) VerifyAccess(_ context.Context, token string) (*adapter.Principal, error) {
	return s.verify(token, kindAccess)
}

func (s *JWTSessions) VerifyRefresh(ctx context.Context, token string) (*adapter.Principal, error) {
	principal, err := s.verify(token, kindRefresh)
	if err != nil {
		return nil, err
	}

	active, err := s.store.IsActive(ctx, token, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if !active {
		return nil, adapter.ErrSessionRevoked
	}
	return principal, nil
}

func (s *JWTSessions) Revoke(ctx context.Context, refreshToken string) error {
	return s.store.Revoke(ctx, refreshToken, s.clock.Now())
}

// sign issues one token with a fresh jti. Access and refresh tokens of one session share sid.
func (s *JWTSessions) sign(user *entity.User, kind tokenKind, sessionID string, now time.Time, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		Email:   user.Email,
		Kind:    kind,
		Session: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTSessions) verify(token string, want tokenKind) (*adapter.Principal, error) {
	claims := &sessionClaims{}
	if _, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.Kind != want {
		return nil, errors.New("unexpected token kind " + string(claims.Kind))
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject: %w", err)
	}

	return &adapter.Principal{
		UserID:    userID,
		Email:     claims.Email,
		SessionID: claims.Session,
	}, nil
}
