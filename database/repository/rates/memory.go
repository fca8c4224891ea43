package ratesRepo

import (
	"context"
	"sync"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
)

// memoryRateRepo is an in-memory RateRepository used by tests and fixtures.
type memoryRateRepo struct {
	mu   sync.RWMutex
	recs []models.RateRecord
}

// NewMemoryRateRepo returns an empty in-memory RateRepository.
func NewMemoryRateRepo() RateRepository {
	return &memoryRateRepo{}
}

func (r *memoryRateRepo) Create(_ context.Context, rec models.RateRecord) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	r.recs = append(r.recs, rec)
	return rec.ID, nil
}

func (r *memoryRateRepo) CreateMany(ctx context.Context, recs []models.RateRecord) (int, error) {
	for i := range recs {
		if err := recs[i].Validate(); err != nil {
			return 0, err
		}
	}
	for i := range recs {
		if _, err := r.Create(ctx, recs[i]); err != nil {
			return i, err
		}
	}
	return len(recs), nil
}

func (r *memoryRateRepo) Snapshot(_ context.Context) (models.RateCatalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(models.RateCatalog, len(r.recs))
	copy(out, r.recs)
	return out, nil
}

func (r *memoryRateRepo) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.recs))
	r.recs = nil
	return n, nil
}
