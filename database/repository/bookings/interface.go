package bookingRepo

import (
	"context"

	"tripdesk/config"
	"tripdesk/database"
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
