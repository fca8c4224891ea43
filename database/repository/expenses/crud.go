package expenseRepo

import (
	"context"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new expense and returns its ID.
func (r *mongoExpenseRepo) Create(ctx context.Context, e models.Expense) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return "", err
	}
	return e.ID, nil
}

// List fetches all expenses.
func (r *mongoExpenseRepo) List(ctx context.Context) ([]models.Expense, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var expenses []models.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}
