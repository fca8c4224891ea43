package models

import "time"

// DuplicateMatch describes an existing invoice flagged as a likely
// duplicate of the one about to be created.
type DuplicateMatch struct {
	InvoiceID string    `json:"invoice_id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	Reason    string    `json:"reason"` // "same_quote" or "amount_window"
}

// FulfillResult carries the ids of the three records a successful
// fulfillment run created, plus any duplicate warning that was raised.
type FulfillResult struct {
	QuoteID          string          `json:"quote_id"`
	BookingID        string          `json:"booking_id"`
	InvoiceID        string          `json:"invoice_id"`
	CommissionID     string          `json:"commission_id"`
	DuplicateWarning *DuplicateMatch `json:"duplicate_warning,omitempty"`
}

// QuoteError ties a failed quote in a batch to its human-readable cause.
type QuoteError struct {
	QuoteID string `json:"quote_id"`
	Message string `json:"message"`
}

// BatchResult summarizes a batch fulfillment run. Each quote is processed
// independently; one failure never hides the others' outcomes.
type BatchResult struct {
	Succeeded int             `json:"succeeded"`
	Results   []FulfillResult `json:"results"`
	Errors    []QuoteError    `json:"errors"`
}
