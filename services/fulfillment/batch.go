package fulfillment

import (
	"context"

	"tripdesk/models"

	"go.uber.org/zap"
)

// FulfillBatch processes each quote independently: one quote's failure
// never stops the remaining quotes from being attempted, and every failure
// stays associated with its source quote. Steps within a quote run
// serially; quotes themselves are processed in submission order.
func (s *DefaultFulfillmentService) FulfillBatch(ctx context.Context, quoteIDs []string) models.BatchResult {
	var batch models.BatchResult
	for _, quoteID := range quoteIDs {
		result, err := s.Fulfill(ctx, quoteID, Options{})
		if err != nil {
			batch.Errors = append(batch.Errors, models.QuoteError{
				QuoteID: quoteID,
				Message: err.Error(),
			})
			s.Logger.Warn("batch fulfillment: quote failed",
				zap.String("quoteId", quoteID), zap.Error(err))
			continue
		}
		batch.Succeeded++
		batch.Results = append(batch.Results, result)
	}
	s.Logger.Info("batch fulfillment finished",
		zap.Int("attempted", len(quoteIDs)),
		zap.Int("succeeded", batch.Succeeded),
		zap.Int("failed", len(batch.Errors)))
	return batch
}
