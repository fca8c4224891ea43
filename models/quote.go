package models

import "time"

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// TravelDates is the overall travel window of a quote.
type TravelDates struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// ValidationOverride records a deliberate bypass of the destination-mismatch
// check: who forced the send, when, and what was flagged.
type ValidationOverride struct {
	Actor      string    `bson:"actor" json:"actor"`
	At         time.Time `bson:"at" json:"at"`
	Mismatches []string  `bson:"mismatches" json:"mismatches"`
}

// Quote aggregates travel items for one contact.
type Quote struct {
	ID             string               `bson:"id" json:"id"`
	ContactID      string               `bson:"contact_id" json:"contact_id"`
	AgentID        string               `bson:"agent_id" json:"agent_id"`
	Title          string               `bson:"title" json:"title"`
	TravelDates    TravelDates          `bson:"travel_dates" json:"travel_dates"`
	Items          []TravelItem         `bson:"items" json:"items"`
	TotalCost      float64              `bson:"total_cost" json:"total_cost"` // derived; reconcile before trusting
	Status         QuoteStatus          `bson:"status" json:"status"`
	CommissionRate *float64             `bson:"commission_rate,omitempty" json:"commission_rate,omitempty"`
	Overrides      []ValidationOverride `bson:"overrides,omitempty" json:"overrides,omitempty"`
	FulfilledAt    *time.Time           `bson:"fulfilled_at,omitempty" json:"fulfilled_at,omitempty"`
	CreatedAt      time.Time            `bson:"created_at" json:"created_at"`
}

// RecomputeTotal returns the authoritative quote total from its items.
// The stored TotalCost is a cache and must never win over this.
func (q Quote) RecomputeTotal() float64 {
	total := 0.0
	for _, item := range q.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += item.Price * float64(qty)
	}
	return total
}
