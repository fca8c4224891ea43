package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	bookingRepo "tripdesk/database/repository/bookings"
	commissionRepo "tripdesk/database/repository/commissions"
	contactRepo "tripdesk/database/repository/contacts"
	invoiceRepo "tripdesk/database/repository/invoices"
	quoteRepo "tripdesk/database/repository/quotes"
	"tripdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingInvoiceRepo fails invoice creation for one engineered quote id.
type failingInvoiceRepo struct {
	invoiceRepo.InvoiceRepository
	failForQuote string
}

func (r *failingInvoiceRepo) Create(ctx context.Context, inv models.Invoice) (string, error) {
	if inv.QuoteID == r.failForQuote {
		return "", fmt.Errorf("simulated invoice store outage")
	}
	return r.InvoiceRepository.Create(ctx, inv)
}

type testEnv struct {
	svc      *DefaultFulfillmentService
	quotes   quoteRepo.QuoteRepository
	bookings bookingRepo.BookingRepository
	invoices invoiceRepo.InvoiceRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	quotes := quoteRepo.NewMemoryQuoteRepo()
	bookings := bookingRepo.NewMemoryBookingRepo()
	invoices := invoiceRepo.NewMemoryInvoiceRepo()
	commissions := commissionRepo.NewMemoryCommissionRepo()
	contacts := contactRepo.NewMemoryContactRepo()

	require.NoError(t, contacts.Upsert(context.Background(), models.Contact{
		ID:    "contact-1",
		Name:  "Ada Wong",
		Email: "ada@example.com",
	}))

	return &testEnv{
		svc: &DefaultFulfillmentService{
			Quotes:                quotes,
			Bookings:              bookings,
			Invoices:              invoices,
			Commissions:           commissions,
			Contacts:              contacts,
			Lease:                 NewMemoryQuoteLease(),
			Duplicates:            DefaultDuplicatePolicy(),
			DefaultCommissionRate: 10,
			InvoiceTermsDays:      30,
			Logger:                zap.NewNop(),
		},
		quotes:   quotes,
		bookings: bookings,
		invoices: invoices,
	}
}

func acceptedQuote(price float64, qty int) models.Quote {
	return models.Quote{
		ContactID: "contact-1",
		AgentID:   "agent-7",
		Title:     "Miami getaway",
		Status:    models.QuoteStatusAccepted,
		Items: []models.TravelItem{
			{
				ID:        "item-1",
				Type:      models.TravelItemHotel,
				Name:      "Hilton Garden Inn Miami",
				StartDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
				Price:     price,
				Quantity:  qty,
			},
		},
	}
}

func TestFulfillCreatesBookingInvoiceAndCommission(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	quoteID, err := env.quotes.Create(ctx, acceptedQuote(500, 1))
	require.NoError(t, err)

	result, err := env.svc.Fulfill(ctx, quoteID, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, result.BookingID)
	require.NotEmpty(t, result.InvoiceID)
	require.NotEmpty(t, result.CommissionID)

	booking, err := env.bookings.GetByID(ctx, result.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 500.0, booking.TotalAmount)
	assert.Len(t, booking.Items, 1)

	inv, err := env.invoices.GetByID(ctx, result.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, inv.Total)
	assert.Equal(t, 500.0, inv.RemainingAmount)
	assert.Equal(t, "Ada Wong", inv.CustomerName)

	comm, err := env.svc.Commissions.GetByID(ctx, result.CommissionID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, comm.CommissionAmount)
	assert.Equal(t, "agent-7", comm.AgentID)
	assert.Equal(t, models.CommissionStatusPending, comm.Status)

	q, err := env.quotes.GetByID(ctx, quoteID)
	require.NoError(t, err)
	require.NotNil(t, q.FulfilledAt)
}

func TestFulfillRejectsQuoteNotAccepted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	q := acceptedQuote(500, 1)
	q.Status = models.QuoteStatusDraft
	quoteID, err := env.quotes.Create(ctx, q)
	require.NoError(t, err)

	_, err = env.svc.Fulfill(ctx, quoteID, Options{})
	assert.ErrorIs(t, err, ErrQuoteNotAccepted)
}

func TestFulfillRunsOncePerQuote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	quoteID, err := env.quotes.Create(ctx, acceptedQuote(500, 1))
	require.NoError(t, err)

	_, err = env.svc.Fulfill(ctx, quoteID, Options{})
	require.NoError(t, err)

	_, err = env.svc.Fulfill(ctx, quoteID, Options{})
	assert.ErrorIs(t, err, ErrAlreadyFulfilled)
}

func TestFulfillUsesRecomputedTotalOverStoredAggregate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	quoteID, err := env.quotes.Create(ctx, acceptedQuote(300, 2))
	require.NoError(t, err)

	// Desync the stored aggregate the way a stale cache would.
	q, err := env.quotes.GetByID(ctx, quoteID)
	require.NoError(t, err)
	q.TotalCost = 99999
	require.NoError(t, env.quotes.Update(ctx, *q))

	result, err := env.svc.Fulfill(ctx, quoteID, Options{})
	require.NoError(t, err)

	inv, err := env.invoices.GetByID(ctx, result.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, 600.0, inv.Total)
}

func TestFulfillBatchIsolatesFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var quoteIDs []string
	for i := 0; i < 3; i++ {
		// Distinct totals keep the duplicate scan quiet across the batch.
		id, err := env.quotes.Create(ctx, acceptedQuote(100*float64(i+1), 1))
		require.NoError(t, err)
		quoteIDs = append(quoteIDs, id)
	}
	failing := quoteIDs[1]
	env.svc.Invoices = &failingInvoiceRepo{InvoiceRepository: env.invoices, failForQuote: failing}

	batch := env.svc.FulfillBatch(ctx, quoteIDs)

	assert.Equal(t, 2, batch.Succeeded)
	require.Len(t, batch.Errors, 1)
	assert.Equal(t, failing, batch.Errors[0].QuoteID)
	assert.Contains(t, batch.Errors[0].Message, "invoice step failed")

	// The booking created before the invoice failure is not deleted.
	orphaned, err := env.bookings.ListByQuoteID(ctx, failing)
	require.NoError(t, err)
	assert.Len(t, orphaned, 1)

	// The failed quote is not marked fulfilled.
	q, err := env.quotes.GetByID(ctx, failing)
	require.NoError(t, err)
	assert.Nil(t, q.FulfilledAt)
}

func TestFulfillStepFailureNamesTheStep(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	quoteID, err := env.quotes.Create(ctx, acceptedQuote(500, 1))
	require.NoError(t, err)
	env.svc.Invoices = &failingInvoiceRepo{InvoiceRepository: env.invoices, failForQuote: quoteID}

	_, err = env.svc.Fulfill(ctx, quoteID, Options{})
	require.Error(t, err)

	sf, ok := AsStepFailure(err)
	require.True(t, ok)
	assert.Equal(t, StepInvoice, sf.Step)
	assert.ErrorContains(t, sf.Cause, "outage")
}

func TestDuplicateDetectionFiresWithinTolerance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.invoices.Create(ctx, models.Invoice{
		QuoteID:         "older-quote",
		CustomerID:      "contact-1",
		Total:           500.00,
		RemainingAmount: 500.00,
		Status:          models.InvoiceStatusSent,
		CreatedAt:       time.Now().Add(-2 * time.Hour),
	})
	require.NoError(t, err)

	quoteID, err := env.quotes.Create(ctx, acceptedQuote(500.005, 1))
	require.NoError(t, err)

	result, err := env.svc.Fulfill(ctx, quoteID, Options{})
	require.Error(t, err)
	_, isDup := AsDuplicateWarning(err)
	assert.True(t, isDup)
	require.NotNil(t, result.DuplicateWarning)
	assert.Equal(t, "amount_window", result.DuplicateWarning.Reason)

	// Nothing was created while the warning awaits confirmation.
	assert.Empty(t, result.BookingID)
}

func TestDuplicateDetectionStaysQuietOutsideTolerance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.invoices.Create(ctx, models.Invoice{
		QuoteID:         "older-quote",
		CustomerID:      "contact-1",
		Total:           500.00,
		RemainingAmount: 500.00,
		Status:          models.InvoiceStatusSent,
		CreatedAt:       time.Now().Add(-2 * time.Hour),
	})
	require.NoError(t, err)

	quoteID, err := env.quotes.Create(ctx, acceptedQuote(510.00, 1))
	require.NoError(t, err)

	result, err := env.svc.Fulfill(ctx, quoteID, Options{})
	require.NoError(t, err)
	assert.Nil(t, result.DuplicateWarning)
}

func TestDuplicateDetectionFiresOnSameQuote(t *testing.T) {
	policy := DefaultDuplicatePolicy()
	existing := []models.Invoice{{
		ID:        "inv-1",
		QuoteID:   "quote-1",
		Total:     900,
		Status:    models.InvoiceStatusSent,
		CreatedAt: time.Now().Add(-72 * time.Hour), // well outside the window
	}}

	match := policy.FindLikelyDuplicate(existing, "quote-1", 123.45, time.Now())
	require.NotNil(t, match)
	assert.Equal(t, "same_quote", match.Reason)
}

func TestForceProceedsPastDuplicateWarning(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.invoices.Create(ctx, models.Invoice{
		QuoteID:         "older-quote",
		CustomerID:      "contact-1",
		Total:           500.00,
		RemainingAmount: 500.00,
		Status:          models.InvoiceStatusSent,
		CreatedAt:       time.Now().Add(-2 * time.Hour),
	})
	require.NoError(t, err)

	quoteID, err := env.quotes.Create(ctx, acceptedQuote(500.00, 1))
	require.NoError(t, err)

	result, err := env.svc.Fulfill(ctx, quoteID, Options{Force: true})
	require.NoError(t, err)
	assert.NotNil(t, result.DuplicateWarning)
	assert.NotEmpty(t, result.InvoiceID)
}

func TestLeaseBlocksConcurrentFulfillment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	quoteID, err := env.quotes.Create(ctx, acceptedQuote(500, 1))
	require.NoError(t, err)

	held, err := env.svc.Lease.Acquire(ctx, quoteID)
	require.NoError(t, err)
	require.True(t, held)

	_, err = env.svc.Fulfill(ctx, quoteID, Options{})
	assert.ErrorIs(t, err, ErrFulfillmentInFlight)

	require.NoError(t, env.svc.Lease.Release(ctx, quoteID))
	_, err = env.svc.Fulfill(ctx, quoteID, Options{})
	assert.NoError(t, err)
}

func TestRejectIsAStatusMutationNotADelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	quoteID, err := env.quotes.Create(ctx, acceptedQuote(500, 1))
	require.NoError(t, err)

	require.NoError(t, env.svc.Reject(ctx, quoteID))

	q, err := env.quotes.GetByID(ctx, quoteID)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusRejected, q.Status)

	_, err = env.svc.Fulfill(ctx, quoteID, Options{})
	assert.True(t, errors.Is(err, ErrQuoteNotAccepted))
}
