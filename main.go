// File: tripdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripdesk/config"
	"tripdesk/database"
	bookingRepo "tripdesk/database/repository/bookings"
	commissionRepo "tripdesk/database/repository/commissions"
	contactRepo "tripdesk/database/repository/contacts"
	expenseRepo "tripdesk/database/repository/expenses"
	invoiceRepo "tripdesk/database/repository/invoices"
	quoteRepo "tripdesk/database/repository/quotes"
	ratesRepo "tripdesk/database/repository/rates"
	"tripdesk/handlers"
	"tripdesk/middleware"
	"tripdesk/queue"
	"tripdesk/routes"
	"tripdesk/services/fulfillment"
	"tripdesk/services/pricing"
	"tripdesk/services/quote"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCatalogCache()
	utils.InitLeaseClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	rateRepository := ratesRepo.NewCachedRateRepo(ratesRepo.NewMongoRateRepo(), utils.GetCatalogCacheClient(), 5*time.Minute)
	quoteRepository := quoteRepo.NewMongoQuoteRepo()
	bookingRepository := bookingRepo.NewMongoBookingRepo()
	invoiceRepository := invoiceRepo.NewMongoInvoiceRepo()
	commissionRepository := commissionRepo.NewMongoCommissionRepo()
	contactRepository := contactRepo.NewMongoContactRepo()
	expenseRepository := expenseRepo.NewMongoExpenseRepo()

	// services.
	pricingService := &pricing.DefaultPricingService{
		Matcher:       pricing.RateMatcher{},
		Policy:        pricing.NewMarkupPolicy(config.AppConfig.DefaultMarkupPercent),
		FallbackRatio: config.AppConfig.NettFallbackRatio,
	}

	quoteService := &quote.DefaultQuoteService{
		Quotes:   quoteRepository,
		Invoices: invoiceRepository,
		Logger:   logger,
	}

	fulfillmentService := &fulfillment.DefaultFulfillmentService{
		Quotes:      quoteRepository,
		Bookings:    bookingRepository,
		Invoices:    invoiceRepository,
		Commissions: commissionRepository,
		Contacts:    contactRepository,
		Lease:       fulfillment.NewRedisQuoteLease(utils.GetLeaseClient(), 2*time.Minute),
		Duplicates: fulfillment.DuplicatePolicy{
			AmountTolerance: config.AppConfig.DuplicateAmountTolerance,
			Window:          time.Duration(config.AppConfig.DuplicateWindowHours) * time.Hour,
		},
		DefaultCommissionRate: config.AppConfig.DefaultCommissionRate,
		InvoiceTermsDays:      config.AppConfig.InvoiceTermsDays,
		Logger:                logger,
	}

	// Background fulfillment worker and the client handlers enqueue with.
	queue.InitFulfillmentWorker(fulfillmentService)
	queueClient := queue.NewClient()
	defer queueClient.Close()

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Rates:       handlers.NewRateHandler(rateRepository),
		Pricing:     handlers.NewPricingHandler(pricingService, rateRepository),
		Quotes:      handlers.NewQuoteHandler(quoteService),
		Fulfillment: handlers.NewFulfillmentHandler(fulfillmentService, queueClient),
		Payments:    handlers.NewPaymentHandler(quoteService),
		Ledger:      handlers.NewLedgerHandler(invoiceRepository, commissionRepository, expenseRepository),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
