package quoteRepo

import (
	"context"

	"tripdesk/config"
	"tripdesk/database"
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// QuoteRepository defines data access for quotes.
type QuoteRepository interface {
	Create(ctx context.Context, q models.Quote) (string, error)
	GetByID(ctx context.Context, id string) (*models.Quote, error)
	Update(ctx context.Context, q models.Quote) error
	ListByStatus(ctx context.Context, status models.QuoteStatus) ([]models.Quote, error)
}

type mongoQuoteRepo struct {
	coll *mongo.Collection
}

// NewMongoQuoteRepo returns a QuoteRepository backed by MongoDB.
func NewMongoQuoteRepo() QuoteRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoQuoteRepo{
		coll: db.Collection("quotes"),
	}
}
