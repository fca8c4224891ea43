package expenseRepo

import (
	"context"

	"tripdesk/config"
	"tripdesk/database"
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ExpenseRepository defines data access for back-office expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e models.Expense) (string, error)
	List(ctx context.Context) ([]models.Expense, error)
}

type mongoExpenseRepo struct {
	coll *mongo.Collection
}

// NewMongoExpenseRepo returns an ExpenseRepository backed by MongoDB.
func NewMongoExpenseRepo() ExpenseRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoExpenseRepo{
		coll: db.Collection("expenses"),
	}
}
