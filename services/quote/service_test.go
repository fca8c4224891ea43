package quote

import (
	"context"
	"testing"
	"time"

	invoiceRepo "tripdesk/database/repository/invoices"
	quoteRepo "tripdesk/database/repository/quotes"
	"tripdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() (*DefaultQuoteService, quoteRepo.QuoteRepository, invoiceRepo.InvoiceRepository) {
	quotes := quoteRepo.NewMemoryQuoteRepo()
	invoices := invoiceRepo.NewMemoryInvoiceRepo()
	return &DefaultQuoteService{
		Quotes:   quotes,
		Invoices: invoices,
		Logger:   zap.NewNop(),
	}, quotes, invoices
}

func simpleQuote() models.Quote {
	return models.Quote{
		ContactID: "contact-1",
		AgentID:   "agent-1",
		Title:     "Lisbon city break",
		Items: []models.TravelItem{
			{ID: "i1", Type: models.TravelItemHotel, Name: "Hotel Avenida", Price: 120, Quantity: 3},
			{ID: "i2", Type: models.TravelItemActivity, Name: "Tram tour", Price: 40, Quantity: 2},
		},
	}
}

func mismatchedQuote() models.Quote {
	return models.Quote{
		ContactID: "contact-1",
		AgentID:   "agent-1",
		Title:     "Broken itinerary",
		Items: []models.TravelItem{
			{
				ID: "f1", Type: models.TravelItemFlight, Name: "TP 123", Price: 300, Quantity: 1,
				Details: models.ItemDetails{Flight: &models.FlightDetails{DepartureCity: "London", ArrivalCity: "Porto"}},
			},
			{
				ID: "h1", Type: models.TravelItemHotel, Name: "Hotel Avenida", Price: 120, Quantity: 2,
				Details: models.ItemDetails{Hotel: &models.HotelDetails{City: "Lisbon", Adults: 2}},
			},
		},
	}
}

func TestGetReconcilesStaleStoredTotal(t *testing.T) {
	svc, quotes, _ := newTestService()
	ctx := context.Background()
	id, err := svc.Create(ctx, simpleQuote())
	require.NoError(t, err)

	// Desync the aggregate the way a stale cache would.
	stored, err := quotes.GetByID(ctx, id)
	require.NoError(t, err)
	stored.TotalCost = 1.23
	require.NoError(t, quotes.Update(ctx, *stored))

	q, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 440.0, q.TotalCost) // 120*3 + 40*2

	// The repair is persisted, not just returned.
	stored, err = quotes.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 440.0, stored.TotalCost)
}

func TestCreateRejectsInvalidItems(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	q := simpleQuote()
	q.Items[0].Quantity = 0
	_, err := svc.Create(ctx, q)
	assert.Error(t, err)

	q = simpleQuote()
	q.Items[0].Price = -5
	_, err = svc.Create(ctx, q)
	assert.Error(t, err)
}

func TestStatusStateMachine(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	id, err := svc.Create(ctx, simpleQuote())
	require.NoError(t, err)

	// draft -> accepted is not a legal shortcut.
	_, err = svc.Accept(ctx, id)
	assert.True(t, HasCode(err, CodeInvalidTransition))

	q, err := svc.Send(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusSent, q.Status)

	// sent -> draft is an explicit save-as-draft.
	q, err = svc.SaveAsDraft(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusDraft, q.Status)

	_, err = svc.Send(ctx, id)
	require.NoError(t, err)
	q, err = svc.Accept(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusAccepted, q.Status)

	// Accepted is terminal from the client's perspective.
	_, err = svc.Reject(ctx, id)
	assert.True(t, HasCode(err, CodeInvalidTransition))
	_, err = svc.SaveAsDraft(ctx, id)
	assert.True(t, HasCode(err, CodeInvalidTransition))
}

func TestSendBlockedByDestinationMismatch(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	id, err := svc.Create(ctx, mismatchedQuote())
	require.NoError(t, err)

	_, err = svc.Send(ctx, id)
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeDestinationMismatch))

	q, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusDraft, q.Status)
}

func TestForceSendRecordsOverrideAudit(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	id, err := svc.Create(ctx, mismatchedQuote())
	require.NoError(t, err)

	q, err := svc.ForceSend(ctx, id, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusSent, q.Status)

	require.Len(t, q.Overrides, 1)
	override := q.Overrides[0]
	assert.Equal(t, "agent-1", override.Actor)
	assert.False(t, override.At.IsZero())
	require.Len(t, override.Mismatches, 1)
	assert.Contains(t, override.Mismatches[0], "Porto")
}

func TestForceSendRequiresActor(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	id, err := svc.Create(ctx, mismatchedQuote())
	require.NoError(t, err)

	_, err = svc.ForceSend(ctx, id, "")
	assert.Error(t, err)
}

func TestApplyPaymentPartialThenPaid(t *testing.T) {
	svc, _, invoices := newTestService()
	ctx := context.Background()

	_, err := invoices.Create(ctx, models.Invoice{
		ID:              "inv-1",
		QuoteID:         "quote-1",
		CustomerID:      "contact-1",
		Total:           600,
		RemainingAmount: 600,
		Status:          models.InvoiceStatusSent,
	})
	require.NoError(t, err)

	inv, err := svc.ApplyPayment(ctx, models.PaymentEvent{QuoteID: "quote-1", AmountPaid: 200, Status: "succeeded", ReceivedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPartial, inv.Status)
	assert.Equal(t, 200.0, inv.PaidAmount)
	assert.Equal(t, 400.0, inv.RemainingAmount)

	// Overpayment settles the invoice; remaining never goes negative.
	inv, err = svc.ApplyPayment(ctx, models.PaymentEvent{QuoteID: "quote-1", AmountPaid: 450, Status: "succeeded", ReceivedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, inv.Status)
	assert.Equal(t, 0.0, inv.RemainingAmount)
}

func TestApplyPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.ApplyPayment(context.Background(), models.PaymentEvent{QuoteID: "quote-1", AmountPaid: 0})
	assert.Error(t, err)
}

func TestDetectDestinationMismatches(t *testing.T) {
	assert.Len(t, DetectDestinationMismatches(mismatchedQuote()), 1)

	// No hotels booked: nothing to cross-check against.
	q := mismatchedQuote()
	q.Items = q.Items[:1]
	assert.Empty(t, DetectDestinationMismatches(q))

	// Matching cities, case-insensitively.
	q = mismatchedQuote()
	q.Items[0].Details.Flight.ArrivalCity = "LISBON"
	assert.Empty(t, DetectDestinationMismatches(q))
}
