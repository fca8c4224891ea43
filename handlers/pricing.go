package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ratesRepo "tripdesk/database/repository/rates"
	"tripdesk/models"
	"tripdesk/services/pricing"
	"tripdesk/utils"
)

// PricingHandler prices a single travel item against the current catalog
// snapshot. It is the endpoint behind the quote builder's "suggest price"
// action.
type PricingHandler struct {
	Pricing pricing.PricingService
	Rates   ratesRepo.RateRepository
}

func NewPricingHandler(svc pricing.PricingService, rates ratesRepo.RateRepository) *PricingHandler {
	return &PricingHandler{Pricing: svc, Rates: rates}
}

// PriceItemHandler handles POST /api/pricing/item.
func (h *PricingHandler) PriceItemHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input struct {
		Item      models.TravelItem `json:"item"`
		Adults    int               `json:"adults"`
		Children  int               `json:"children"`
		StayStart time.Time         `json:"stay_start"`
		StayEnd   time.Time         `json:"stay_end"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	catalog, err := h.Rates.Snapshot(c.Request.Context())
	if err != nil {
		logger.Error("Catalog snapshot failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rate catalog", err.Error())
		return
	}

	priced, err := h.Pricing.PriceItem(input.Item, catalog, input.Adults, input.Children, input.StayStart, input.StayEnd)
	if err != nil {
		if pricing.HasCode(err, pricing.CodeInvalidDateRange) || pricing.HasCode(err, pricing.CodeInvalidOccupancyRate) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "cannot price item", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "pricing failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, priced)
}
