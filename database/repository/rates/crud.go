package ratesRepo

import (
	"context"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a validated rate record and returns its ID.
func (r *mongoRateRepo) Create(ctx context.Context, rec models.RateRecord) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// CreateMany inserts a batch of parsed rate records. Validation failures
// reject the whole batch so a half-ingested sheet never enters the catalog.
func (r *mongoRateRepo) CreateMany(ctx context.Context, recs []models.RateRecord) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(recs))
	now := time.Now()
	for i := range recs {
		if err := recs[i].Validate(); err != nil {
			return 0, err
		}
		if recs[i].ID == "" {
			recs[i].ID = uuid.New().String()
		}
		if recs[i].CreatedAt.IsZero() {
			recs[i].CreatedAt = now
		}
		docs = append(docs, recs[i])
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// Snapshot returns the full catalog for in-memory matching and queries.
func (r *mongoRateRepo) Snapshot(ctx context.Context) (models.RateCatalog, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var catalog models.RateCatalog
	if err := cursor.All(ctx, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// DeleteAll clears the catalog (bulk management action).
func (r *mongoRateRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
