package invoiceRepo

import (
	"context"
	"errors"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new invoice and returns its ID.
func (r *mongoInvoiceRepo) Create(ctx context.Context, inv models.Invoice) (string, error) {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	inv.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return "", err
	}
	return inv.ID, nil
}

// GetByID returns an invoice by its ID.
func (r *mongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("invoice not found")
		}
		return nil, err
	}
	return &inv, nil
}

// GetByQuoteID returns the invoice generated from a given quote, if any.
func (r *mongoInvoiceRepo) GetByQuoteID(ctx context.Context, quoteID string) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.coll.FindOne(ctx, bson.M{"quote_id": quoteID}).Decode(&inv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("invoice not found")
		}
		return nil, err
	}
	return &inv, nil
}

// ListByCustomer fetches all invoices for a customer.
func (r *mongoInvoiceRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Invoice, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"customer_id": customerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// List fetches all invoices.
func (r *mongoInvoiceRepo) List(ctx context.Context) ([]models.Invoice, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// Update replaces the stored invoice.
func (r *mongoInvoiceRepo) Update(ctx context.Context, inv models.Invoice) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": inv.ID}, inv)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}
