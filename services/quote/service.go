package quote

import (
	"context"
	"fmt"
	"time"

	"tripdesk/models"
	"tripdesk/services/pricing"

	"go.uber.org/zap"
)

// Create validates and stores a new quote. The stored total is always
// recomputed from the items, never taken from the caller.
func (s *DefaultQuoteService) Create(ctx context.Context, q models.Quote) (string, error) {
	for _, item := range q.Items {
		if item.Price < 0 {
			return "", fmt.Errorf("item %q has a negative price", item.Name)
		}
		if item.Quantity < 1 {
			return "", fmt.Errorf("item %q has quantity < 1", item.Name)
		}
		if item.SupplierCost != nil && item.ClientPrice != nil && *item.ClientPrice != item.Price {
			return "", fmt.Errorf("item %q client price does not mirror its price", item.Name)
		}
	}
	q.TotalCost = q.RecomputeTotal()
	return s.Quotes.Create(ctx, q)
}

// Get returns the quote with its total reconciled from the items. A stale
// stored aggregate is repaired in place before the quote is handed out.
func (s *DefaultQuoteService) Get(ctx context.Context, id string) (*models.Quote, error) {
	q, err := s.Quotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	recomputed := q.RecomputeTotal()
	if q.TotalCost != recomputed {
		s.Logger.Warn("quote total desynced from items, reconciling",
			zap.String("quoteId", q.ID),
			zap.Float64("stored", q.TotalCost),
			zap.Float64("recomputed", recomputed))
		q.TotalCost = recomputed
		if err := s.Quotes.Update(ctx, *q); err != nil {
			return nil, fmt.Errorf("failed to persist reconciled total: %w", err)
		}
	}
	return q, nil
}

// Send moves a draft quote to sent after the destination cross-check.
// A failed check blocks the send; ForceSend is the recorded bypass.
func (s *DefaultQuoteService) Send(ctx context.Context, id string) (*models.Quote, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if mismatches := DetectDestinationMismatches(*q); len(mismatches) > 0 {
		return nil, NewDestinationMismatchError(mismatches)
	}
	return s.transition(ctx, q, models.QuoteStatusSent)
}

// ForceSend sends the quote even when the destination cross-check fails,
// appending an audit record with the actor, timestamp and detected issues.
func (s *DefaultQuoteService) ForceSend(ctx context.Context, id, actor string) (*models.Quote, error) {
	if actor == "" {
		return nil, fmt.Errorf("force-send requires an authorizing actor")
	}
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if mismatches := DetectDestinationMismatches(*q); len(mismatches) > 0 {
		q.Overrides = append(q.Overrides, models.ValidationOverride{
			Actor:      actor,
			At:         time.Now(),
			Mismatches: mismatches,
		})
		s.Logger.Info("destination-mismatch check overridden",
			zap.String("quoteId", q.ID),
			zap.String("actor", actor),
			zap.Strings("mismatches", mismatches))
	}
	return s.transition(ctx, q, models.QuoteStatusSent)
}

// SaveAsDraft pulls a sent quote back to draft.
func (s *DefaultQuoteService) SaveAsDraft(ctx context.Context, id string) (*models.Quote, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, q, models.QuoteStatusDraft)
}

// Accept marks a sent quote accepted by the client.
func (s *DefaultQuoteService) Accept(ctx context.Context, id string) (*models.Quote, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, q, models.QuoteStatusAccepted)
}

// Reject marks a sent quote rejected by the client.
func (s *DefaultQuoteService) Reject(ctx context.Context, id string) (*models.Quote, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, q, models.QuoteStatusRejected)
}

func (s *DefaultQuoteService) transition(ctx context.Context, q *models.Quote, to models.QuoteStatus) (*models.Quote, error) {
	if !canTransition(q.Status, to) {
		return nil, NewInvalidTransitionError(fmt.Sprintf("cannot move quote %s from %s to %s", q.ID, q.Status, to))
	}
	q.Status = to
	if err := s.Quotes.Update(ctx, *q); err != nil {
		return nil, fmt.Errorf("failed to update quote status: %w", err)
	}
	return q, nil
}

// canTransition encodes draft -> sent -> {accepted, rejected}, with
// sent -> draft permitted as an explicit save-as-draft. Accepted and
// rejected are terminal from the client's perspective.
func canTransition(from, to models.QuoteStatus) bool {
	switch from {
	case models.QuoteStatusDraft:
		return to == models.QuoteStatusSent
	case models.QuoteStatusSent:
		return to == models.QuoteStatusDraft || to == models.QuoteStatusAccepted || to == models.QuoteStatusRejected
	default:
		return false
	}
}

// ApplyPayment consumes a confirmed payment event from the (external)
// gateway and updates the quote's invoice. Remaining amount never goes
// negative; an overpayment simply settles the invoice.
func (s *DefaultQuoteService) ApplyPayment(ctx context.Context, event models.PaymentEvent) (*models.Invoice, error) {
	if event.AmountPaid <= 0 {
		return nil, fmt.Errorf("payment event for quote %s carries a non-positive amount", event.QuoteID)
	}
	inv, err := s.Invoices.GetByQuoteID(ctx, event.QuoteID)
	if err != nil {
		return nil, fmt.Errorf("no invoice for quote %s: %w", event.QuoteID, err)
	}

	inv.PaidAmount = pricing.RoundCurrency(inv.PaidAmount + event.AmountPaid)
	remaining := inv.Total - inv.PaidAmount
	if remaining <= 0 {
		remaining = 0
		inv.Status = models.InvoiceStatusPaid
	} else {
		inv.Status = models.InvoiceStatusPartial
	}
	inv.RemainingAmount = pricing.RoundCurrency(remaining)

	if err := s.Invoices.Update(ctx, *inv); err != nil {
		return nil, fmt.Errorf("failed to update invoice %s: %w", inv.ID, err)
	}
	s.Logger.Info("payment applied",
		zap.String("quoteId", event.QuoteID),
		zap.String("invoiceId", inv.ID),
		zap.Float64("amount", event.AmountPaid),
		zap.String("status", string(inv.Status)))
	return inv, nil
}
