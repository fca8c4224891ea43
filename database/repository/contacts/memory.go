package contactRepo

import (
	"context"
	"errors"
	"sync"

	"tripdesk/models"
)

// memoryContactRepo is an in-memory ContactRepository used by tests.
type memoryContactRepo struct {
	mu       sync.RWMutex
	contacts map[string]models.Contact
}

// NewMemoryContactRepo returns an empty in-memory ContactRepository.
func NewMemoryContactRepo() ContactRepository {
	return &memoryContactRepo{contacts: make(map[string]models.Contact)}
}

func (r *memoryContactRepo) GetByID(_ context.Context, id string) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contacts[id]
	if !ok {
		return nil, errors.New("contact not found")
	}
	return &c, nil
}

func (r *memoryContactRepo) Upsert(_ context.Context, c models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts[c.ID] = c
	return nil
}
