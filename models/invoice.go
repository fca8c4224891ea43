package models

import "time"

// InvoiceStatus is the payment lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusVoid      InvoiceStatus = "void"
)

// Invoice is generated from a quote and its booking. The customer fields
// are a snapshot taken at generation time, not a live reference.
type Invoice struct {
	ID              string        `bson:"id" json:"id"`
	QuoteID         string        `bson:"quote_id" json:"quote_id"`
	BookingID       string        `bson:"booking_id" json:"booking_id"`
	CustomerID      string        `bson:"customer_id" json:"customer_id"`
	CustomerName    string        `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string        `bson:"customer_email" json:"customer_email"`
	CustomerAddress string        `bson:"customer_address,omitempty" json:"customer_address,omitempty"`
	Total           float64       `bson:"total" json:"total"`
	PaidAmount      float64       `bson:"paid_amount" json:"paid_amount"`
	RemainingAmount float64       `bson:"remaining_amount" json:"remaining_amount"` // total - paid, never negative
	Status          InvoiceStatus `bson:"status" json:"status"`
	DueDate         time.Time     `bson:"due_date" json:"due_date"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
}
