package contactRepo

import (
	"context"

	"tripdesk/config"
	"tripdesk/database"
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository is the lookup interface the pipeline needs from the
// (external) contact management side: a customer snapshot by id.
type ContactRepository interface {
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	Upsert(ctx context.Context, c models.Contact) error
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo returns a ContactRepository backed by MongoDB.
func NewMongoContactRepo() ContactRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoContactRepo{
		coll: db.Collection("contacts"),
	}
}
