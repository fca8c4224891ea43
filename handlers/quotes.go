package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/models"
	"tripdesk/services/quote"
	"tripdesk/utils"
)

// QuoteHandler exposes the quote lifecycle: creation, retrieval with total
// reconciliation, and the status state machine.
type QuoteHandler struct {
	Quotes quote.QuoteService
}

func NewQuoteHandler(svc quote.QuoteService) *QuoteHandler {
	return &QuoteHandler{Quotes: svc}
}

// CreateQuoteHandler handles POST /api/quotes.
func (h *QuoteHandler) CreateQuoteHandler(c *gin.Context) {
	var q models.Quote
	if err := c.ShouldBindJSON(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	id, err := h.Quotes.Create(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to create quote", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetQuoteHandler handles GET /api/quotes/:id.
func (h *QuoteHandler) GetQuoteHandler(c *gin.Context) {
	q, err := h.Quotes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "quote not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, q)
}

// SendQuoteHandler handles POST /api/quotes/:id/send. With ?force=true the
// destination-mismatch check is bypassed; the X-Actor header names who takes
// responsibility and is required for a forced send.
func (h *QuoteHandler) SendQuoteHandler(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var (
		q   *models.Quote
		err error
	)
	if c.Query("force") == "true" {
		q, err = h.Quotes.ForceSend(ctx, id, c.GetHeader("X-Actor"))
	} else {
		q, err = h.Quotes.Send(ctx, id)
	}
	if err != nil {
		h.quoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// SaveAsDraftHandler handles POST /api/quotes/:id/draft.
func (h *QuoteHandler) SaveAsDraftHandler(c *gin.Context) {
	q, err := h.Quotes.SaveAsDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.quoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// AcceptQuoteHandler handles POST /api/quotes/:id/accept.
func (h *QuoteHandler) AcceptQuoteHandler(c *gin.Context) {
	q, err := h.Quotes.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.quoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// RejectQuoteHandler handles POST /api/quotes/:id/reject.
func (h *QuoteHandler) RejectQuoteHandler(c *gin.Context) {
	q, err := h.Quotes.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.quoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// quoteError maps service error codes onto HTTP statuses.
func (h *QuoteHandler) quoteError(c *gin.Context, err error) {
	switch {
	case quote.HasCode(err, quote.CodeInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "invalid status transition", err.Error())
	case quote.HasCode(err, quote.CodeDestinationMismatch):
		utils.JSONError(c, http.StatusUnprocessableEntity, "destination mismatch", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "quote operation failed", err.Error())
	}
}
