package commissionRepo

import (
	"context"
	"errors"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new commission record and returns its ID.
func (r *mongoCommissionRepo) Create(ctx context.Context, c models.Commission) (string, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = models.CommissionStatusPending
	}
	c.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return "", err
	}
	return c.ID, nil
}

// GetByID returns a commission by its ID.
func (r *mongoCommissionRepo) GetByID(ctx context.Context, id string) (*models.Commission, error) {
	var c models.Commission
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("commission not found")
		}
		return nil, err
	}
	return &c, nil
}

// ListByAgent fetches all commissions attributed to an agent.
func (r *mongoCommissionRepo) ListByAgent(ctx context.Context, agentID string) ([]models.Commission, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"agent_id": agentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var commissions []models.Commission
	if err := cursor.All(ctx, &commissions); err != nil {
		return nil, err
	}
	return commissions, nil
}

// List fetches all commissions.
func (r *mongoCommissionRepo) List(ctx context.Context) ([]models.Commission, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var commissions []models.Commission
	if err := cursor.All(ctx, &commissions); err != nil {
		return nil, err
	}
	return commissions, nil
}

// Update replaces the stored commission.
func (r *mongoCommissionRepo) Update(ctx context.Context, c models.Commission) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("commission not found")
	}
	return nil
}
