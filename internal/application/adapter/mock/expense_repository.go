package mock

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// ExpenseRepository keeps expenses in insertion order.
type ExpenseRepository struct {
	mu       sync.Mutex
	expenses []*entity.Expense

	// RangeErrByCategory fails FindByUserCategoryAndRange for the listed categories.
	RangeErrByCategory map[string]error

	// CreateErr is returned by Create once CreateErrAfter expenses have been created.
	CreateErr      error
	CreateErrAfter int

	created int
}

// NewExpenseRepository creates a repository seeded with expenses.
func NewExpenseRepository(expenses ...*entity.Expense) *ExpenseRepository {
	return &ExpenseRepository{expenses: expenses}
}

// All returns every stored expense.
func (r *ExpenseRepository) All() []*entity.Expense {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.expenses)
}

func (r *ExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil && r.created >= r.CreateErrAfter {
		return r.CreateErr
	}
	r.created++
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *ExpenseRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.expenses {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (r *ExpenseRepository) List(_ context.Context, filter entity.ExpenseFilter) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Expense
	for _, e := range r.expenses {
		if e.UserID != filter.UserID {
			continue
		}
		if filter.Category != nil && e.Category != *filter.Category {
			continue
		}
		if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *ExpenseRepository) FindByUserCategoryAndRange(_ context.Context, userID uuid.UUID, category string, start, end time.Time) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.RangeErrByCategory[category]; ok {
		return nil, err
	}
	var out []*entity.Expense
	for _, e := range r.expenses {
		if e.UserID == userID && e.Category == category && !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *ExpenseRepository) Update(_ context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.expenses {
		if e.ID == expense.ID {
			r.expenses[i] = expense
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

func (r *ExpenseRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.expenses {
		if e.ID == id && e.UserID == userID {
			r.expenses = slices.Delete(r.expenses, i, i+1)
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}
