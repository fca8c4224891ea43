package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"tripdesk/queue"
	"tripdesk/services/fulfillment"
	"tripdesk/utils"
)

// FulfillmentHandler runs the accepted-quote pipeline, synchronously or via
// the finance queue, and exposes the operator's reject action.
type FulfillmentHandler struct {
	Fulfillment fulfillment.FulfillmentService
	Queue       *asynq.Client
}

func NewFulfillmentHandler(svc fulfillment.FulfillmentService, qc *asynq.Client) *FulfillmentHandler {
	return &FulfillmentHandler{Fulfillment: svc, Queue: qc}
}

// FulfillQuoteHandler handles POST /api/fulfillment/:quoteID/run. With
// ?force=true a duplicate-invoice warning is acknowledged and the run
// proceeds.
func (h *FulfillmentHandler) FulfillQuoteHandler(c *gin.Context) {
	quoteID := c.Param("quoteID")
	opts := fulfillment.Options{Force: c.Query("force") == "true"}

	result, err := h.Fulfillment.Fulfill(c.Request.Context(), quoteID, opts)
	if err != nil {
		h.fulfillError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// EnqueueFulfillmentHandler handles POST /api/fulfillment/:quoteID/enqueue.
// The quote is fulfilled by the background worker; the response only
// acknowledges the enqueue.
func (h *FulfillmentHandler) EnqueueFulfillmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	quoteID := c.Param("quoteID")

	task, err := queue.NewFulfillTask(queue.FulfillPayload{
		QuoteID: quoteID,
		Force:   c.Query("force") == "true",
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build task", err.Error())
		return
	}
	info, err := h.Queue.Enqueue(task)
	if err != nil {
		logger.Error("Enqueue failed", zap.String("quoteID", quoteID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to enqueue fulfillment", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"quote_id": quoteID, "task_id": info.ID})
}

// FulfillBatchHandler handles POST /api/fulfillment/batch. Quotes are
// processed independently; the response lists per-quote outcomes.
func (h *FulfillmentHandler) FulfillBatchHandler(c *gin.Context) {
	var input struct {
		QuoteIDs []string `json:"quote_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if len(input.QuoteIDs) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "quote_ids is empty")
		return
	}
	c.JSON(http.StatusOK, h.Fulfillment.FulfillBatch(c.Request.Context(), input.QuoteIDs))
}

// RejectQuoteHandler handles POST /api/fulfillment/:quoteID/reject, the
// operator's alternative to running the pipeline on an accepted quote.
func (h *FulfillmentHandler) RejectQuoteHandler(c *gin.Context) {
	quoteID := c.Param("quoteID")
	if err := h.Fulfillment.Reject(c.Request.Context(), quoteID); err != nil {
		h.fulfillError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote_id": quoteID, "status": "rejected"})
}

func (h *FulfillmentHandler) fulfillError(c *gin.Context, err error) {
	if dup, ok := fulfillment.AsDuplicateWarning(err); ok {
		// 409 with the match attached so the UI can ask for confirmation.
		c.JSON(http.StatusConflict, gin.H{
			"error":           "likely duplicate invoice; repeat with force=true to proceed",
			"duplicate_match": dup.Match,
		})
		return
	}
	switch {
	case errors.Is(err, fulfillment.ErrQuoteNotAccepted):
		utils.JSONError(c, http.StatusConflict, "quote is not accepted", err.Error())
	case errors.Is(err, fulfillment.ErrAlreadyFulfilled):
		utils.JSONError(c, http.StatusConflict, "quote already fulfilled", err.Error())
	case errors.Is(err, fulfillment.ErrFulfillmentInFlight):
		utils.JSONError(c, http.StatusConflict, "fulfillment already in flight", err.Error())
	default:
		if sf, ok := fulfillment.AsStepFailure(err); ok {
			utils.JSONError(c, http.StatusInternalServerError, "fulfillment step failed: "+sf.Step, sf.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "fulfillment failed", err.Error())
	}
}
