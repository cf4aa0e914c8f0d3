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

// simulationRepository implements the adapter.SimulationRepository interface.
type simulationRepository struct {
	db *gorm.DB
}

// NewSimulationRepository creates a new simulation repository instance.
func NewSimulationRepository(db *gorm.DB) adapter.SimulationRepository {
	return &simulationRepository{
		db: db,
	}
}

// orderedItems preloads simulation items in their stored order.
func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create persists a simulation together with its items.
func (r *simulationRepository) Create(ctx context.Context, simulation *entity.Simulation) error {
	return conn(ctx, r.db).Create(model.SimulationFromEntity(simulation)).Error
}

// FindByIDWithItems retrieves a simulation of the user with its items.
func (r *simulationRepository) FindByIDWithItems(ctx context.Context, id, userID uuid.UUID) (*entity.Simulation, error) {
	var simulationModel model.SimulationModel
	result := conn(ctx, r.db).
		Preload("Items", orderedItems).
		Where("id = ? AND user_id = ?", id, userID).
		First(&simulationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSimulationNotFound
		}
		return nil, result.Error
	}
	return simulationModel.ToEntity(), nil
}

// FindByUserID retrieves all simulations of a user with their items, newest first.
func (r *simulationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Simulation, error) {
	var models []model.SimulationModel
	result := conn(ctx, r.db).
		Preload("Items", orderedItems).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	simulations := make([]*entity.Simulation, len(models))
	for i := range models {
		simulations[i] = models[i].ToEntity()
	}
	return simulations, nil
}

// Delete removes a simulation and its items.
func (r *simulationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.SimulationModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrSimulationNotFound
		}
		return tx.Where("simulation_id = ?", id).Delete(&model.SimulatedExpenseModel{}).Error
	})
}
