package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripdesk/models"
	"tripdesk/services/quote"
	"tripdesk/utils"
)

// PaymentHandler receives confirmed-payment notifications from the payment
// gateway integration and applies them to the quote's invoice.
type PaymentHandler struct {
	Quotes quote.QuoteService
}

func NewPaymentHandler(svc quote.QuoteService) *PaymentHandler {
	return &PaymentHandler{Quotes: svc}
}

// ConfirmPaymentHandler handles POST /api/payments/confirm.
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var event models.PaymentEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = time.Now().UTC()
	}

	inv, err := h.Quotes.ApplyPayment(c.Request.Context(), event)
	if err != nil {
		logger.Warn("Payment application failed", zap.String("quoteID", event.QuoteID), zap.Error(err))
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to apply payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, inv)
}
