package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeFulfillQuote = "fulfillment:run"

// FulfillPayload is the task body for a queued fulfillment run.
type FulfillPayload struct {
	QuoteID string `json:"quote_id"`
	// Force carries the operator's duplicate-warning confirmation into the
	// queued run.
	Force bool `json:"force"`
}

// NewFulfillTask builds the asynq task for fulfilling one accepted quote.
func NewFulfillTask(payload FulfillPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeFulfillQuote, b), nil
}
