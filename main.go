// File: dojovcp/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dojovcp/config"
	"dojovcp/cron"
	"dojovcp/database"
	bookingsRepo "dojovcp/database/repository/bookings"
	catalogRepo "dojovcp/database/repository/catalog"
	"dojovcp/handlers"
	"dojovcp/routes"
	"dojovcp/services/booking"
	"dojovcp/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// repositories.
	reservationRepo := bookingsRepo.NewMongoReservationRepo()
	catalog := catalogRepo.NewMongoCatalogRepo()

	// services.
	bookingService := booking.NewBookingService(reservationRepo, catalog)

	// background payment reminders.
	cron.InitReminderWorker(bookingService)

	handlerBundle := &handlers.HandlerBundle{
		Booking: bookingService,
		Catalog: catalog,
	}
	router := routes.SetupRouter(handlerBundle)

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
