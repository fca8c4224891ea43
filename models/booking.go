package models

import "time"

const BookingStatusConfirmed = "confirmed"

// Booking is the confirmed record created from an accepted quote.
// It is immutable once created except for status edits by staff.
type Booking struct {
	ID          string       `bson:"id" json:"id"`
	QuoteID     string       `bson:"quote_id" json:"quote_id"`
	ContactID   string       `bson:"contact_id" json:"contact_id"`
	Items       []TravelItem `bson:"items" json:"items"` // copied from the quote
	TotalAmount float64      `bson:"total_amount" json:"total_amount"`
	Status      string       `bson:"status" json:"status"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
}
