// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return conn(ctx, r.db).Create(model.ExpenseFromEntity(expense)).Error
}

// FindByID retrieves an expense by its ID for the given user.
func (r *expenseRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// List retrieves the expenses matching the filter, most recent first.
func (r *expenseRepository) List(ctx context.Context, filter entity.ExpenseFilter) ([]*entity.Expense, error) {
	query := conn(ctx, r.db).Where("user_id = ?", filter.UserID)

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate.UTC())
	}

	var models []model.ExpenseModel
	if err := query.Order("date DESC, created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toExpenseEntities(models), nil
}

// FindByUserCategoryAndRange retrieves the user's expenses in category dated within [start, end].
func (r *expenseRepository) FindByUserCategoryAndRange(ctx context.Context, userID uuid.UUID, category string, start, end time.Time) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	result := conn(ctx, r.db).
		Where("user_id = ? AND category = ?", userID, category).
		Where("date >= ? AND date <= ?", start.UTC(), end.UTC()).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toExpenseEntities(models), nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := conn(ctx, r.db).
		Model(&model.ExpenseModel{}).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Select("category", "date", "amount", "description", "updated_at").
		Updates(model.ExpenseFromEntity(expense))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense owned by the given user.
func (r *expenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

func toExpenseEntities(models []model.ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}
	return expenses
}
