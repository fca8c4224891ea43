package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tripdesk/config"
	"tripdesk/services/fulfillment"

	"github.com/hibiken/asynq"
)

// NewClient returns an asynq client on the fulfillment queue DB, used by
// handlers to enqueue accepted quotes for the finance queue worker.
func NewClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// InitFulfillmentWorker runs the async fulfillment worker in background.
func InitFulfillmentWorker(svc fulfillment.FulfillmentService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: config.AppConfig.QueueConcurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFulfillQuote, handleFulfillTask(svc))

	// Start async worker with retry logic.
	go func() {
		log.Println("[FulfillmentWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FulfillmentWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FulfillmentWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleFulfillTask(svc fulfillment.FulfillmentService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p FulfillPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FulfillmentWorker] invalid payload: %v", err)
			return err
		}

		result, err := svc.Fulfill(ctx, p.QuoteID, fulfillment.Options{Force: p.Force})
		if err != nil {
			if _, isDup := fulfillment.AsDuplicateWarning(err); isDup {
				// Needs a human decision; retrying will not change that.
				log.Printf("[FulfillmentWorker] quote %s held for duplicate review: %v", p.QuoteID, err)
				return nil
			}
			log.Printf("[FulfillmentWorker] quote %s failed: %v", p.QuoteID, err)
			return err
		}

		log.Printf("[FulfillmentWorker] quote %s fulfilled: booking=%s invoice=%s commission=%s",
			p.QuoteID, result.BookingID, result.InvoiceID, result.CommissionID)
		return nil
	}
}
