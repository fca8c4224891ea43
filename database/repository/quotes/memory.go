package quoteRepo

import (
	"context"
	"errors"
	"sync"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
)

// memoryQuoteRepo is an in-memory QuoteRepository used by tests.
type memoryQuoteRepo struct {
	mu     sync.RWMutex
	quotes map[string]models.Quote
}

// NewMemoryQuoteRepo returns an empty in-memory QuoteRepository.
func NewMemoryQuoteRepo() QuoteRepository {
	return &memoryQuoteRepo{quotes: make(map[string]models.Quote)}
}

func (r *memoryQuoteRepo) Create(_ context.Context, q models.Quote) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	if q.Status == "" {
		q.Status = models.QuoteStatusDraft
	}
	q.CreatedAt = time.Now()
	q.TotalCost = q.RecomputeTotal()
	r.quotes[q.ID] = q
	return q.ID, nil
}

func (r *memoryQuoteRepo) GetByID(_ context.Context, id string) (*models.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.quotes[id]
	if !ok {
		return nil, errors.New("quote not found")
	}
	return &q, nil
}

func (r *memoryQuoteRepo) Update(_ context.Context, q models.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quotes[q.ID]; !ok {
		return errors.New("quote not found")
	}
	r.quotes[q.ID] = q
	return nil
}

func (r *memoryQuoteRepo) ListByStatus(_ context.Context, status models.QuoteStatus) ([]models.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Quote
	for _, q := range r.quotes {
		if q.Status == status {
			out = append(out, q)
		}
	}
	return out, nil
}
