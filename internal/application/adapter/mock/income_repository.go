package mock

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// IncomeRepository keeps incomes in insertion order.
type IncomeRepository struct {
	mu      sync.Mutex
	incomes []*entity.Income
}

// NewIncomeRepository creates a repository seeded with incomes.
func NewIncomeRepository(incomes ...*entity.Income) *IncomeRepository {
	return &IncomeRepository{incomes: incomes}
}

func (r *IncomeRepository) Create(_ context.Context, income *entity.Income) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.incomes = append(r.incomes, income)
	return nil
}

func (r *IncomeRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Income, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.incomes {
		if i.ID == id && i.UserID == userID {
			return i, nil
		}
	}
	return nil, domainerror.ErrIncomeNotFound
}

func (r *IncomeRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Income
	for _, i := range r.incomes {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *IncomeRepository) Update(_ context.Context, income *entity.Income) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx, i := range r.incomes {
		if i.ID == income.ID {
			r.incomes[idx] = income
			return nil
		}
	}
	return domainerror.ErrIncomeNotFound
}

func (r *IncomeRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx, i := range r.incomes {
		if i.ID == id && i.UserID == userID {
			r.incomes = slices.Delete(r.incomes, idx, idx+1)
			return nil
		}
	}
	return domainerror.ErrIncomeNotFound
}
