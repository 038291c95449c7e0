// File: probook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"probook/config"
	"probook/database"
	availabilityRepo "probook/database/repository/availability"
	bookingRepo "probook/database/repository/booking"
	customerRepo "probook/database/repository/customer"
	jobRepo "probook/database/repository/job"
	"probook/handlers"
	"probook/middleware"
	"probook/routes"
	"probook/services/booking"
	"probook/services/customer"
	"probook/services/dashboard"
	"probook/services/payment"
	"probook/services/scheduling"
	"probook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	availability := availabilityRepo.NewMongoAvailabilityRepo()
	customers := customerRepo.NewMongoCustomerRepo()
	jobs := jobRepo.NewMongoJobRepo()

	for name, ensure := range map[string]func() error{
		"bookings":     bookings.EnsureIndexes,
		"availability": availability.EnsureIndexes,
		"customers":    customers.EnsureIndexes,
		"jobs":         jobs.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	resolver := &scheduling.DefaultResolver{
		Avail:    availability,
		Bookings: bookings,
		Cache:    utils.GetCacheClient(),
		Logger:   logger,
	}

	customerService := &customer.DefaultCustomerService{
		Repo:     customers,
		Jobs:     jobs,
		Bookings: bookings,
		Logger:   logger,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      bookings,
		Resolver:  resolver,
		Customers: customerService,
		Logger:    logger,
	}

	var processor payment.ChargeProcessor
	if config.AppConfig.PaymentProvider == "stripe" {
		processor = &payment.StripeProcessor{Logger: logger}
	} else {
		processor = &payment.SimulatedProcessor{Logger: logger}
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:      bookings,
		Processor: processor,
		Customers: customerService,
		FeeRate:   config.AppConfig.PlatformFeeRate,
		Currency:  config.AppConfig.Currency,
		Logger:    logger,
	}

	dashboardService := &dashboard.DefaultDashboardService{
		Jobs:     jobs,
		Bookings: bookings,
		Logger:   logger,
	}

	// handlers + routes.
	routes.RegisterRoutes(router, &routes.Handlers{
		Availability: handlers.NewAvailabilityHandler(resolver),
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Payment:      handlers.NewPaymentHandler(paymentService, logger),
		Customer:     handlers.NewCustomerHandler(customerService),
		Job:          handlers.NewJobHandler(jobs),
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
	})

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect: %v", err)
	}
}
