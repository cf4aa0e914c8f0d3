// Package mock provides in-memory implementations of the application ports for unit tests.
package mock

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// BudgetRepository keeps budgets in insertion order.
type BudgetRepository struct {
	mu      sync.Mutex
	budgets []*entity.Budget

	// Err, when set, is returned by every read.
	Err error
}

// NewBudgetRepository creates a repository seeded with budgets.
func NewBudgetRepository(budgets ...*entity.Budget) *BudgetRepository {
	return &BudgetRepository{budgets: budgets}
}

func (r *BudgetRepository) Create(_ context.Context, budget *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.budgets = append(r.budgets, budget)
	return nil
}

func (r *BudgetRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, b := range r.budgets {
		if b.ID == id && b.UserID == userID {
			return b, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (r *BudgetRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BudgetRepository) FindByUserAndCategories(_ context.Context, userID uuid.UUID, categories []string) ([]*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID && slices.Contains(categories, b.Category) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BudgetRepository) Update(_ context.Context, budget *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.budgets {
		if b.ID == budget.ID {
			r.budgets[i] = budget
			return nil
		}
	}
	return domainerror.ErrBudgetNotFound
}

func (r *BudgetRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.budgets {
		if b.ID == id && b.UserID == userID {
			r.budgets = slices.Delete(r.budgets, i, i+1)
			return nil
		}
	}
	return domainerror.ErrBudgetNotFound
}
