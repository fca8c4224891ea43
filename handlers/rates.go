package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ratesRepo "tripdesk/database/repository/rates"
	"tripdesk/models"
	"tripdesk/utils"
)

// RateHandler exposes the negotiated rate catalog: bulk ingestion from
// parsed rate sheets, snapshot queries for the quote-building UI and the
// bulk clear used before a fresh ingestion.
type RateHandler struct {
	Rates ratesRepo.RateRepository
}

func NewRateHandler(rates ratesRepo.RateRepository) *RateHandler {
	return &RateHandler{Rates: rates}
}

// IngestRatesHandler handles POST /api/rates.
func (h *RateHandler) IngestRatesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input struct {
		Rates []models.RateRecord `json:"rates"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if len(input.Rates) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "rates list is empty")
		return
	}
	for i, rec := range input.Rates {
		if err := rec.Validate(); err != nil {
			utils.JSONError(c, http.StatusUnprocessableEntity, "invalid rate record", err.Error())
			logger.Warn("Rate ingestion rejected", zap.Int("index", i), zap.Error(err))
			return
		}
	}

	count, err := h.Rates.CreateMany(c.Request.Context(), input.Rates)
	if err != nil {
		logger.Error("Rate ingestion failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to store rates", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ingested": count})
}

// ListRatesHandler handles GET /api/rates. Filters: kind, q (text search),
// from/to (validity window intersection, RFC 3339 dates).
func (h *RateHandler) ListRatesHandler(c *gin.Context) {
	catalog, err := h.Rates.Snapshot(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rate catalog", err.Error())
		return
	}

	if kind := c.Query("kind"); kind != "" {
		catalog = catalog.ByKind(models.ItemKind(kind))
	}
	if q := c.Query("q"); q != "" {
		catalog = catalog.Search(q)
	}
	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" || toStr != "" {
		from, to, err := parseDateRange(fromStr, toStr)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date range", err.Error())
			return
		}
		catalog = catalog.ByDateRange(from, to)
	}

	c.JSON(http.StatusOK, gin.H{"count": len(catalog), "rates": catalog})
}

// ClearRatesHandler handles DELETE /api/rates.
func (h *RateHandler) ClearRatesHandler(c *gin.Context) {
	deleted, err := h.Rates.DeleteAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear rate catalog", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	// Open ends default to the widest window the catalog can hold.
	from := time.Time{}
	to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	var err error
	if fromStr != "" {
		if from, err = time.Parse("2006-01-02", fromStr); err != nil {
			return from, to, err
		}
	}
	if toStr != "" {
		if to, err = time.Parse("2006-01-02", toStr); err != nil {
			return from, to, err
		}
	}
	return from, to, nil
}
