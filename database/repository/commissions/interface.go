package commissionRepo

import (
	"context"

	"tripdesk/config"
	"tripdesk/database"
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CommissionRepository defines data access for agent commissions.
type CommissionRepository interface {
	Create(ctx context.Context, c models.Commission) (string, error)
	GetByID(ctx context.Context, id string) (*models.Commission, error)
	ListByAgent(ctx context.Context, agentID string) ([]models.Commission, error)
	List(ctx context.Context) ([]models.Commission, error)
	Update(ctx context.Context, c models.Commission) error
}

type mongoCommissionRepo struct {
	coll *mongo.Collection
}

// NewMongoCommissionRepo returns a CommissionRepository backed by MongoDB.
func NewMongoCommissionRepo() CommissionRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCommissionRepo{
		coll: db.Collection("commissions"),
	}
}
