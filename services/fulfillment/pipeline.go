package fulfillment

import (
	"context"
	"fmt"
	"time"

	"tripdesk/models"
	"tripdesk/services/pricing"

	"go.uber.org/zap"
)

// Fulfill runs the three-step pipeline for one accepted quote:
// duplicate check, then booking -> invoice -> commission, each step's
// success gating the next. There is no cross-entity transaction: a failure
// after the booking step leaves the booking in place (an orphaned booking
// is acceptable, a duplicated invoice is not), and the error reports
// exactly which step failed.
func (s *DefaultFulfillmentService) Fulfill(ctx context.Context, quoteID string, opts Options) (models.FulfillResult, error) {
	result := models.FulfillResult{QuoteID: quoteID}

	acquired, err := s.Lease.Acquire(ctx, quoteID)
	if err != nil {
		return result, fmt.Errorf("failed to acquire fulfillment lease: %w", err)
	}
	if !acquired {
		return result, ErrFulfillmentInFlight
	}
	defer func() {
		if err := s.Lease.Release(ctx, quoteID); err != nil {
			s.Logger.Warn("failed to release fulfillment lease", zap.String("quoteId", quoteID), zap.Error(err))
		}
	}()

	q, err := s.Quotes.GetByID(ctx, quoteID)
	if err != nil {
		return result, err
	}
	if q.Status != models.QuoteStatusAccepted {
		return result, fmt.Errorf("%w: quote %s is %s", ErrQuoteNotAccepted, q.ID, q.Status)
	}
	if q.FulfilledAt != nil {
		return result, fmt.Errorf("%w: quote %s at %s", ErrAlreadyFulfilled, q.ID, q.FulfilledAt.Format(time.RFC3339))
	}

	// The stored total is a cache; fulfill against the recomputed one.
	total := pricing.RoundCurrency(q.RecomputeTotal())

	// Step 1: duplicate check. A hit is a warning for the operator, not an
	// automatic abort; without Force it blocks so a human decides.
	existing, err := s.Invoices.ListByCustomer(ctx, q.ContactID)
	if err != nil {
		return result, fmt.Errorf("duplicate scan failed: %w", err)
	}
	if match := s.Duplicates.FindLikelyDuplicate(existing, q.ID, total, time.Now()); match != nil {
		result.DuplicateWarning = match
		if !opts.Force {
			return result, &DuplicateInvoiceError{Match: *match}
		}
		s.Logger.Warn("proceeding past duplicate-invoice warning",
			zap.String("quoteId", q.ID),
			zap.String("existingInvoiceId", match.InvoiceID),
			zap.String("reason", match.Reason))
	}

	// Step 2: booking.
	bookingID, err := s.Bookings.Create(ctx, models.Booking{
		QuoteID:     q.ID,
		ContactID:   q.ContactID,
		Items:       append([]models.TravelItem(nil), q.Items...),
		TotalAmount: total,
		Status:      models.BookingStatusConfirmed,
	})
	if err != nil {
		return result, &StepFailure{Step: StepBooking, Cause: err}
	}
	result.BookingID = bookingID
	s.Logger.Info("booking created", zap.String("quoteId", q.ID), zap.String("bookingId", bookingID))

	// Step 3: invoice. The booking above is intentionally not rolled back
	// on failure here.
	contact, err := s.Contacts.GetByID(ctx, q.ContactID)
	if err != nil {
		return result, &StepFailure{Step: StepInvoice, Cause: fmt.Errorf("customer snapshot: %w", err)}
	}
	invoiceID, err := s.Invoices.Create(ctx, models.Invoice{
		QuoteID:         q.ID,
		BookingID:       bookingID,
		CustomerID:      contact.ID,
		CustomerName:    contact.Name,
		CustomerEmail:   contact.Email,
		CustomerAddress: contact.Address,
		Total:           total,
		PaidAmount:      0,
		RemainingAmount: total,
		Status:          models.InvoiceStatusSent,
		DueDate:         time.Now().AddDate(0, 0, s.InvoiceTermsDays),
	})
	if err != nil {
		return result, &StepFailure{Step: StepInvoice, Cause: err}
	}
	result.InvoiceID = invoiceID
	s.Logger.Info("invoice created", zap.String("quoteId", q.ID), zap.String("invoiceId", invoiceID))

	// Step 4: commission, attributed to the initiating agent.
	rate := s.DefaultCommissionRate
	if q.CommissionRate != nil {
		rate = *q.CommissionRate
	}
	commissionID, err := s.Commissions.Create(ctx, models.Commission{
		AgentID:          q.AgentID,
		BookingID:        bookingID,
		QuoteID:          q.ID,
		InvoiceID:        invoiceID,
		CustomerID:       contact.ID,
		CommissionAmount: pricing.RoundCurrency(total * rate / 100),
		CommissionRate:   rate,
		Status:           models.CommissionStatusPending,
	})
	if err != nil {
		return result, &StepFailure{Step: StepCommission, Cause: err}
	}
	result.CommissionID = commissionID

	// All three succeeded; only now does the quote count as fulfilled.
	now := time.Now()
	q.FulfilledAt = &now
	q.TotalCost = total
	if err := s.Quotes.Update(ctx, *q); err != nil {
		s.Logger.Error("fulfillment succeeded but quote update failed",
			zap.String("quoteId", q.ID), zap.Error(err))
	}

	s.Logger.Info("quote fulfilled",
		zap.String("quoteId", q.ID),
		zap.String("bookingId", bookingID),
		zap.String("invoiceId", invoiceID),
		zap.String("commissionId", commissionID))
	return result, nil
}

// Reject removes a queued quote from fulfillment consideration. It is a
// status mutation, never a delete, so history survives.
func (s *DefaultFulfillmentService) Reject(ctx context.Context, quoteID string) error {
	q, err := s.Quotes.GetByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if q.Status == models.QuoteStatusRejected {
		return nil
	}
	if q.FulfilledAt != nil {
		return fmt.Errorf("quote %s has already been fulfilled", q.ID)
	}
	q.Status = models.QuoteStatusRejected
	if err := s.Quotes.Update(ctx, *q); err != nil {
		return fmt.Errorf("failed to reject quote %s: %w", q.ID, err)
	}
	s.Logger.Info("quote rejected from fulfillment queue", zap.String("quoteId", q.ID))
	return nil
}
