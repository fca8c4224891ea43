package fulfillment

import (
	"context"

	bookingRepo "tripdesk/database/repository/bookings"
	commissionRepo "tripdesk/database/repository/commissions"
	contactRepo "tripdesk/database/repository/contacts"
	invoiceRepo "tripdesk/database/repository/invoices"
	quoteRepo "tripdesk/database/repository/quotes"
	"tripdesk/models"

	"go.uber.org/zap"
)

// Options tune a single fulfillment run.
type Options struct {
	// Force proceeds past a duplicate-invoice warning. It is the operator's
	// explicit confirmation, never a default.
	Force bool
}

// FulfillmentService turns accepted quotes into bookings, invoices and
// commissions.
type FulfillmentService interface {
	Fulfill(ctx context.Context, quoteID string, opts Options) (models.FulfillResult, error)
	FulfillBatch(ctx context.Context, quoteIDs []string) models.BatchResult
	Reject(ctx context.Context, quoteID string) error
}

// DefaultFulfillmentService implements FulfillmentService.
type DefaultFulfillmentService struct {
	Quotes      quoteRepo.QuoteRepository
	Bookings    bookingRepo.BookingRepository
	Invoices    invoiceRepo.InvoiceRepository
	Commissions commissionRepo.CommissionRepository
	Contacts    contactRepo.ContactRepository
	Lease       QuoteLease
	Duplicates  DuplicatePolicy

	// DefaultCommissionRate applies when the quote carries no override.
	DefaultCommissionRate float64
	// InvoiceTermsDays sets the due date (e.g. net-30).
	InvoiceTermsDays int

	Logger *zap.Logger
}
