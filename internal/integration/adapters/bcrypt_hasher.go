package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// DefaultBcryptCost is used in production; tests pass bcrypt.MinCost.
const DefaultBcryptCost = 12

// BcryptHasher implements adapter.PasswordHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher falls back to DefaultBcryptCost when cost is outside the range bcrypt accepts.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

var _ adapter.PasswordHasher = (*BcryptHasher)(nil)

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
