package ratesRepo

import (
	"context"

	"tripdesk/database"
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/mongo"

	"tripdesk/config"
)

// RateRepository defines data access for the negotiated rate catalog.
// Records are created by ingestion, read by the pricing core and cleared
// by bulk management actions; there are no per-record updates.
type RateRepository interface {
	Create(ctx context.Context, rec models.RateRecord) (string, error)
	CreateMany(ctx context.Context, recs []models.RateRecord) (int, error)
	Snapshot(ctx context.Context) (models.RateCatalog, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type mongoRateRepo struct {
	coll *mongo.Collection
}

// NewMongoRateRepo returns a RateRepository backed by MongoDB.
func NewMongoRateRepo() RateRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoRateRepo{
		coll: db.Collection("rate_records"),
	}
}
