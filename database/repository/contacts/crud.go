package contactRepo

import (
	"context"
	"errors"

	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID returns a contact snapshot by its ID.
func (r *mongoContactRepo) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	var c models.Contact
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("contact not found")
		}
		return nil, err
	}
	return &c, nil
}

// Upsert stores or replaces a contact snapshot.
func (r *mongoContactRepo) Upsert(ctx context.Context, c models.Contact) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": c.ID}, c, opts)
	return err
}
