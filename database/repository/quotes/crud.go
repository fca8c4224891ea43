package quoteRepo

import (
	"context"
	"errors"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new quote and returns its ID.
func (r *mongoQuoteRepo) Create(ctx context.Context, q models.Quote) (string, error) {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	if q.Status == "" {
		q.Status = models.QuoteStatusDraft
	}
	q.CreatedAt = time.Now()
	q.TotalCost = q.RecomputeTotal()

	if _, err := r.coll.InsertOne(ctx, q); err != nil {
		return "", err
	}
	return q.ID, nil
}

// GetByID returns a quote by its ID.
func (r *mongoQuoteRepo) GetByID(ctx context.Context, id string) (*models.Quote, error) {
	var q models.Quote
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&q)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("quote not found")
		}
		return nil, err
	}
	return &q, nil
}

// Update replaces the stored quote.
func (r *mongoQuoteRepo) Update(ctx context.Context, q models.Quote) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": q.ID}, q)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("quote not found")
	}
	return nil
}

// ListByStatus fetches all quotes in the given status.
func (r *mongoQuoteRepo) ListByStatus(ctx context.Context, status models.QuoteStatus) ([]models.Quote, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quotes []models.Quote
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}
