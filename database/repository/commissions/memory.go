package commissionRepo

import (
	"context"
	"errors"
	"sync"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
)

// memoryCommissionRepo is an in-memory CommissionRepository used by tests.
type memoryCommissionRepo struct {
	mu          sync.RWMutex
	commissions map[string]models.Commission
}

// NewMemoryCommissionRepo returns an empty in-memory CommissionRepository.
func NewMemoryCommissionRepo() CommissionRepository {
	return &memoryCommissionRepo{commissions: make(map[string]models.Commission)}
}

func (r *memoryCommissionRepo) Create(_ context.Context, c models.Commission) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = models.CommissionStatusPending
	}
	c.CreatedAt = time.Now()
	r.commissions[c.ID] = c
	return c.ID, nil
}

func (r *memoryCommissionRepo) GetByID(_ context.Context, id string) (*models.Commission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.commissions[id]
	if !ok {
		return nil, errors.New("commission not found")
	}
	return &c, nil
}

func (r *memoryCommissionRepo) ListByAgent(_ context.Context, agentID string) ([]models.Commission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Commission
	for _, c := range r.commissions {
		if c.AgentID == agentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryCommissionRepo) List(_ context.Context) ([]models.Commission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Commission, 0, len(r.commissions))
	for _, c := range r.commissions {
		out = append(out, c)
	}
	return out, nil
}

func (r *memoryCommissionRepo) Update(_ context.Context, c models.Commission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.commissions[c.ID]; !ok {
		return errors.New("commission not found")
	}
	r.commissions[c.ID] = c
	return nil
}
