package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// RefreshTokenStore remembers which refresh tokens are still usable.
type RefreshTokenStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID, expiresAt, now time.Time) error

	// IsActive reports whether token was issued, is unexpired at now and was never revoked.
	IsActive(ctx context.Context, token string, now time.Time) (bool, error)

	// Revoke is idempotent; unknown tokens are ignored.
	Revoke(ctx context.Context, token string, now time.Time) error
}

type refreshTokenStore struct {
	db *gorm.DB
}

// NewRefreshTokenStore creates a gorm-backed RefreshTokenStore.
func NewRefreshTokenStore(db *gorm.DB) RefreshTokenStore {
	return &refreshTokenStore{db: db}
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *refreshTokenStore) Save(ctx context.Context, token string, userID uuid.UUID, expiresAt, now time.Time) error {
	return conn(ctx, s.db).Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		TokenHash: digest(token),
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: now.UTC(),
	}).Error
}

func (s *refreshTokenStore) IsActive(ctx context.Context, token string, now time.Time) (bool, error) {
	var count int64
	err := conn(ctx, s.db).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", digest(token), now.UTC()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *refreshTokenStore) Revoke(ctx context.Context, token string, now time.Time) error {
	return conn(ctx, s.db).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", digest(token)).
		Update("revoked_at", now.UTC()).Error
}
