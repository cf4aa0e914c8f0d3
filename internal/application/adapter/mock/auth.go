package mock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// PasswordHasher hashes by prefixing, which is enough to exercise the use cases.
type PasswordHasher struct{}

func (PasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (PasswordHasher) Matches(hash, password string) bool {
	return hash == "hashed:"+password
}

// SessionService issues opaque sequential tokens and tracks revoked refresh tokens.
type SessionService struct {
	mu         sync.Mutex
	seq        int
	principals map[string]*adapter.Principal
	revoked    map[string]bool

	// Extended records the extended flag of every Open call, in order.
	Extended []bool
}

// NewSessionService creates an empty session service.
func NewSessionService() *SessionService {
	return &SessionService{
		principals: make(map[string]*adapter.Principal),
		revoked:    make(map[string]bool),
	}
}

func (s *SessionService) Open(_ context.Context, user *entity.User, extended bool) (*adapter.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.Extended = append(s.Extended, extended)

	principal := &adapter.Principal{UserID: user.ID, Email: user.Email, SessionID: fmt.Sprintf("session-%d", s.seq)}
	session := &adapter.Session{
		AccessToken:     fmt.Sprintf("access-%d", s.seq),
		RefreshToken:    fmt.Sprintf("refresh-%d", s.seq),
		AccessExpiresAt: time.Now().Add(time.Hour),
	}
	s.principals[session.AccessToken] = principal
	s.principals[session.RefreshToken] = principal
	return session, nil
}

func (s *SessionService) VerifyAccess(_ context.Context, token string) (*adapter.Principal, error) {
	return s.lookup(token, "access-")
}

func (s *SessionService) VerifyRefresh(_ context.Context, token string) (*adapter.Principal, error) {
	principal, err := s.lookup(token, "refresh-")
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revoked[token] {
		return nil, adapter.ErrSessionRevoked
	}
	return principal, nil
}

func (s *SessionService) lookup(token, prefix string) (*adapter.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	principal, ok := s.principals[token]
	if !ok || !strings.HasPrefix(token, prefix) {
		return nil, errors.New("unknown token")
	}
	return principal, nil
}

func (s *SessionService) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.principals[token]; ok {
		s.revoked[token] = true
	}
	return nil
}
