package bookingRepo

import (
	"context"
	"errors"
	"sync"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
)

// memoryBookingRepo is an in-memory BookingRepository used by tests.
type memoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

// NewMemoryBookingRepo returns an empty in-memory BookingRepository.
func NewMemoryBookingRepo() BookingRepository {
	return &memoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *memoryBookingRepo) Create(_ context.Context, b models.Booking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now()
	r.bookings[b.ID] = b
	return b.ID, nil
}

func (r *memoryBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return &b, nil
}

func (r *memoryBookingRepo) ListByQuoteID(_ context.Context, quoteID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.QuoteID == quoteID {
			out = append(out, b)
		}
	}
	return out, nil
}
