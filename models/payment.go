package models

import "time"

// PaymentEvent is the confirmed-payment notification delivered by the
// (external) payment gateway integration.
type PaymentEvent struct {
	QuoteID    string    `json:"quote_id"`
	AmountPaid float64   `json:"amount_paid"`
	Status     string    `json:"status"` // e.g. "succeeded"
	ReceivedAt time.Time `json:"received_at"`
}
