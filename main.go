package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"studiobook/config"
	"studiobook/database"
	bookingRepoPkg "studiobook/database/repository/booking"
	profileRepoPkg "studiobook/database/repository/profile"
	"studiobook/handlers"
	"studiobook/middleware"
	"studiobook/routes"
	"studiobook/services/booking"
	"studiobook/services/calendar"
	"studiobook/services/profile"
	"studiobook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.StartHealthMonitor(utils.GetAuthCacheClient())

	ctx := context.Background()
	calendarAPI, err := calendar.NewCalendarService(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profileRepo := profileRepoPkg.NewFirestoreProfileRepo(database.FirestoreClient)
	bookingRepo := bookingRepoPkg.NewFirestoreBookingRepo(database.FirestoreClient)

	// services.
	calendarService := calendar.NewDefaultCalendarService(calendarAPI, config.AppConfig.GoogleCalendarID)

	profileService := &profile.DefaultProfileService{
		Auth: profile.NewFirebaseAuthAdmin(database.AuthClient),
		Repo: profileRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Calendar: calendarService,
		Repo:     bookingRepo,
	}

	profileHandler := handlers.NewProfileHandler(profileService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthMiddleware: middleware.FirebaseAuthMiddleware(database.AuthClient),

		// Profile endpoints.
		UpdateUserProfileHandler: profileHandler.UpdateUserProfileHandler,

		// Booking endpoints.
		ConfirmBookingHandler: bookingHandler.ConfirmBookingHandler,
		GetBookingHandler:     bookingHandler.GetBookingHandler,
		CancelBookingHandler:  bookingHandler.CancelBookingHandler,
	}

	// Register routes with the assembled handler bundle.
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
