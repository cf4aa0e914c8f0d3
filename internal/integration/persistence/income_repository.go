// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	return conn(ctx, r.db).Create(model.IncomeFromEntity(income)).Error
}

func (r *incomeRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

func (r *incomeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	var models []model.IncomeModel
	result := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.Income, len(models))
	for i := range models {
		incomes[i] = models[i].ToEntity()
	}
	return incomes, nil
}

func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	result := conn(ctx, r.db).
		Model(&model.IncomeModel{}).
		Where("id = ? AND user_id = ?", income.ID, income.UserID).
		Select("amount", "source", "description", "date", "category", "updated_at").
		Updates(model.IncomeFromEntity(income))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}

func (r *incomeRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&model.IncomeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}
