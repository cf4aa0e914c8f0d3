package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UserRepository keeps users by ID.
type UserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User

	// Err, when set, is returned by FindByID.
	Err error
}

// NewUserRepository creates a repository seeded with users.
func NewUserRepository(users ...*entity.User) *UserRepository {
	r := &UserRepository{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *UserRepository) UpdateProfile(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domainerror.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}
