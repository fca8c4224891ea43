package quote

import (
	"context"

	invoiceRepo "tripdesk/database/repository/invoices"
	quoteRepo "tripdesk/database/repository/quotes"
	"tripdesk/models"

	"go.uber.org/zap"
)

// QuoteService manages quote lifecycle: totals reconciliation, the status
// state machine, the destination cross-check and payment application.
type QuoteService interface {
	Create(ctx context.Context, q models.Quote) (string, error)
	Get(ctx context.Context, id string) (*models.Quote, error)
	Send(ctx context.Context, id string) (*models.Quote, error)
	ForceSend(ctx context.Context, id, actor string) (*models.Quote, error)
	SaveAsDraft(ctx context.Context, id string) (*models.Quote, error)
	Accept(ctx context.Context, id string) (*models.Quote, error)
	Reject(ctx context.Context, id string) (*models.Quote, error)
	ApplyPayment(ctx context.Context, event models.PaymentEvent) (*models.Invoice, error)
}

// DefaultQuoteService implements QuoteService.
type DefaultQuoteService struct {
	Quotes   quoteRepo.QuoteRepository
	Invoices invoiceRepo.InvoiceRepository
	Logger   *zap.Logger
}
