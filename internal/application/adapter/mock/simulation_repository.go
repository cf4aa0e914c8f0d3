package mock

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// SimulationRepository keeps simulations in insertion order.
type SimulationRepository struct {
	mu          sync.Mutex
	simulations []*entity.Simulation
}

// NewSimulationRepository creates a repository seeded with simulations.
func NewSimulationRepository(simulations ...*entity.Simulation) *SimulationRepository {
	return &SimulationRepository{simulations: simulations}
}

func (r *SimulationRepository) Create(_ context.Context, simulation *entity.Simulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulations = append(r.simulations, simulation)
	return nil
}

func (r *SimulationRepository) FindByIDWithItems(_ context.Context, id, userID uuid.UUID) (*entity.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.simulations {
		if s.ID == id && s.UserID == userID {
			return s, nil
		}
	}
	return nil, domainerror.ErrSimulationNotFound
}

func (r *SimulationRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Simulation
	for i := len(r.simulations) - 1; i >= 0; i-- {
		if r.simulations[i].UserID == userID {
			out = append(out, r.simulations[i])
		}
	}
	return out, nil
}

func (r *SimulationRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.simulations {
		if s.ID == id && s.UserID == userID {
			r.simulations = slices.Delete(r.simulations, i, i+1)
			return nil
		}
	}
	return domainerror.ErrSimulationNotFound
}
