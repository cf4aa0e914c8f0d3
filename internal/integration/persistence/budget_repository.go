// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	return conn(ctx, r.db).Create(model.BudgetFromEntity(budget)).Error
}

// FindByID retrieves a budget by its ID for the given user.
func (r *budgetRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByUserID retrieves all budgets of a user ordered by creation time.
func (r *budgetRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var models []model.BudgetModel
	result := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toBudgetEntities(models), nil
}

// FindByUserAndCategories retrieves the user's budgets in any of the given categories.
func (r *budgetRepository) FindByUserAndCategories(ctx context.Context, userID uuid.UUID, categories []string) ([]*entity.Budget, error) {
	if len(categories) == 0 {
		return []*entity.Budget{}, nil
	}

	query := conn(ctx, r.db).Where("user_id = ?", userID)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Where("category = ANY(?)", pq.Array(categories))
	} else {
		query = query.Where("category IN ?", categories)
	}

	var models []model.BudgetModel
	if err := query.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toBudgetEntities(models), nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	result := conn(ctx, r.db).
		Model(&model.BudgetModel{}).
		Where("id = ? AND user_id = ?", budget.ID, budget.UserID).
		Select("category", "limit_amount", "period", "start_date", "end_date", "updated_at").
		Updates(model.BudgetFromEntity(budget))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget owned by the given user.
func (r *budgetRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&model.BudgetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

func toBudgetEntities(models []model.BudgetModel) []*entity.Budget {
	budgets := make([]*entity.Budget, len(models))
	for i := range models {
		budgets[i] = models[i].ToEntity()
	}
	return budgets
}
