package invoiceRepo

import (
	"context"

	"tripdesk/config"
	"tripdesk/database"
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InvoiceRepository defines data access for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv models.Invoice) (string, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	GetByQuoteID(ctx context.Context, quoteID string) (*models.Invoice, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Invoice, error)
	List(ctx context.Context) ([]models.Invoice, error)
	Update(ctx context.Context, inv models.Invoice) error
}

type mongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo returns an InvoiceRepository backed by MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoInvoiceRepo{
		coll: db.Collection("invoices"),
	}
}
