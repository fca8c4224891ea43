package fulfillment

import (
	"math"
	"time"

	"tripdesk/models"
)

// DuplicatePolicy is the explicit, configurable window for flagging likely
// duplicate invoices: same customer, near-identical amount, created
// recently — or any invoice already generated from the same quote.
type DuplicatePolicy struct {
	AmountTolerance float64
	Window          time.Duration
}

// DefaultDuplicatePolicy mirrors the shipped defaults: 0.01 currency units
// within 24 hours.
func DefaultDuplicatePolicy() DuplicatePolicy {
	return DuplicatePolicy{AmountTolerance: 0.01, Window: 24 * time.Hour}
}

// FindLikelyDuplicate scans the customer's existing invoices for one that
// the new invoice would likely duplicate. Returns nil when nothing fires.
func (p DuplicatePolicy) FindLikelyDuplicate(existing []models.Invoice, quoteID string, total float64, now time.Time) *models.DuplicateMatch {
	for _, inv := range existing {
		if inv.Status == models.InvoiceStatusVoid || inv.Status == models.InvoiceStatusCancelled {
			continue
		}
		if inv.QuoteID == quoteID {
			return &models.DuplicateMatch{
				InvoiceID: inv.ID,
				Total:     inv.Total,
				CreatedAt: inv.CreatedAt,
				Reason:    "same_quote",
			}
		}
		if math.Abs(inv.Total-total) <= p.AmountTolerance && now.Sub(inv.CreatedAt) <= p.Window {
			return &models.DuplicateMatch{
				InvoiceID: inv.ID,
				Total:     inv.Total,
				CreatedAt: inv.CreatedAt,
				Reason:    "amount_window",
			}
		}
	}
	return nil
}
