package models

import "time"

// CommissionStatus is the payout state of an agent commission.
type CommissionStatus string

const (
	CommissionStatusPending  CommissionStatus = "pending"
	CommissionStatusApproved CommissionStatus = "approved"
	CommissionStatusPaid     CommissionStatus = "paid"
	CommissionStatusDisputed CommissionStatus = "disputed"
)

// Commission is the agency's share of a fulfilled booking, attributed to
// the initiating agent.
type Commission struct {
	ID               string           `bson:"id" json:"id"`
	AgentID          string           `bson:"agent_id" json:"agent_id"`
	BookingID        string           `bson:"booking_id" json:"booking_id"`
	QuoteID          string           `bson:"quote_id" json:"quote_id"`
	InvoiceID        string           `bson:"invoice_id" json:"invoice_id"`
	CustomerID       string           `bson:"customer_id" json:"customer_id"`
	CommissionAmount float64          `bson:"commission_amount" json:"commission_amount"`
	CommissionRate   float64          `bson:"commission_rate" json:"commission_rate"`
	Status           CommissionStatus `bson:"status" json:"status"`
	CreatedAt        time.Time        `bson:"created_at" json:"created_at"`
	PaidAt           *time.Time       `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
}
