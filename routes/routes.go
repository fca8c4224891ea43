package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripdesk/handlers"
)

// HandlerBundle groups the handlers the route registrations need.
type HandlerBundle struct {
	Rates       *handlers.RateHandler
	Pricing     *handlers.PricingHandler
	Quotes      *handlers.QuoteHandler
	Fulfillment *handlers.FulfillmentHandler
	Payments    *handlers.PaymentHandler
	Ledger      *handlers.LedgerHandler
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Actor"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRateRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterFulfillmentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterLedgerRoutes(r, hb)
	RegisterHealthRoute(r)
}

// RegisterRateRoutes registers the rate catalog endpoints.
func RegisterRateRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/rates")
	{
		api.POST("", hb.Rates.IngestRatesHandler)
		api.GET("", hb.Rates.ListRatesHandler)
		api.DELETE("", hb.Rates.ClearRatesHandler)
	}
}

// RegisterPricingRoutes registers the pricing endpoints.
func RegisterPricingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.POST("/item", hb.Pricing.PriceItemHandler)
	}
}

// RegisterQuoteRoutes registers the quote lifecycle endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		api.POST("", hb.Quotes.CreateQuoteHandler)
		api.GET("/:id", hb.Quotes.GetQuoteHandler)
		api.POST("/:id/send", hb.Quotes.SendQuoteHandler)
		api.POST("/:id/draft", hb.Quotes.SaveAsDraftHandler)
		api.POST("/:id/accept", hb.Quotes.AcceptQuoteHandler)
		api.POST("/:id/reject", hb.Quotes.RejectQuoteHandler)
	}
}

// RegisterFulfillmentRoutes registers the fulfillment pipeline endpoints.
func RegisterFulfillmentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/fulfillment")
	{
		api.POST("/:quoteID/run", hb.Fulfillment.FulfillQuoteHandler)
		api.POST("/:quoteID/enqueue", hb.Fulfillment.EnqueueFulfillmentHandler)
		api.POST("/:quoteID/reject", hb.Fulfillment.RejectQuoteHandler)
		api.POST("/batch", hb.Fulfillment.FulfillBatchHandler)
	}
}

// RegisterPaymentRoutes registers the payment gateway webhook.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/confirm", hb.Payments.ConfirmPaymentHandler)
	}
}

// RegisterLedgerRoutes registers the dashboard rollup endpoints.
func RegisterLedgerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/ledger")
	{
		api.GET("/summary", hb.Ledger.SummaryHandler)
		api.GET("/invoices", hb.Ledger.ListInvoicesHandler)
		api.GET("/commissions", hb.Ledger.ListCommissionsHandler)
		api.POST("/expenses", hb.Ledger.CreateExpenseHandler)
		api.GET("/expenses", hb.Ledger.ListExpensesHandler)
	}
}

// RegisterHealthRoute registers the liveness probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
