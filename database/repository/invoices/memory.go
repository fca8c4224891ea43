package invoiceRepo

import (
	"context"
	"errors"
	"sync"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
)

// memoryInvoiceRepo is an in-memory InvoiceRepository used by tests.
type memoryInvoiceRepo struct {
	mu       sync.RWMutex
	invoices map[string]models.Invoice
}

// NewMemoryInvoiceRepo returns an empty in-memory InvoiceRepository.
func NewMemoryInvoiceRepo() InvoiceRepository {
	return &memoryInvoiceRepo{invoices: make(map[string]models.Invoice)}
}

func (r *memoryInvoiceRepo) Create(_ context.Context, inv models.Invoice) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	r.invoices[inv.ID] = inv
	return inv.ID, nil
}

func (r *memoryInvoiceRepo) GetByID(_ context.Context, id string) (*models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, errors.New("invoice not found")
	}
	return &inv, nil
}

func (r *memoryInvoiceRepo) GetByQuoteID(_ context.Context, quoteID string) (*models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.invoices {
		if inv.QuoteID == quoteID {
			out := inv
			return &out, nil
		}
	}
	return nil, errors.New("invoice not found")
}

func (r *memoryInvoiceRepo) ListByCustomer(_ context.Context, customerID string) ([]models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Invoice
	for _, inv := range r.invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *memoryInvoiceRepo) List(_ context.Context) ([]models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r *memoryInvoiceRepo) Update(_ context.Context, inv models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[inv.ID]; !ok {
		return errors.New("invoice not found")
	}
	r.invoices[inv.ID] = inv
	return nil
}
