// File: bookly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookly/config"
	"bookly/cron"
	"bookly/database"
	bookingRepoPkg "bookly/database/repository/booking"
	businessRepoPkg "bookly/database/repository/business"
	userRepoPkg "bookly/database/repository/user"
	"bookly/database/seed"
	"bookly/handlers"
	"bookly/middleware"
	"bookly/routes"
	"bookly/services/booking"
	"bookly/services/business"
	"bookly/services/user"
	"bookly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	ledger := bookingRepoPkg.NewMongoBookingRepo()

	if err := userRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure user indexes: %v", err)
	}
	if err := businessRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure business indexes: %v", err)
	}
	if err := ledger.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	if err := seed.Run(userRepo, businessRepo); err != nil {
		logger.Sugar().Warnf("main: demo seed skipped: %v", err)
	}

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	businessService := &business.DefaultBusinessService{
		Repo:  businessRepo,
		Cache: utils.GetCacheClient(),
	}

	bookingService := booking.NewBookingService(ledger, businessRepo)
	bookingService.Cache = utils.GetCacheClient()
	bookingService.Reminders = cron.NewReminderScheduler()

	cron.InitReminderWorker(ledger, cron.LogNotifier{})

	userHandler := handlers.NewUserHandler(userService)
	businessHandler := handlers.NewBusinessHandler(businessService, userService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:        userHandler.Register,
		AuthenticateUserHandler:    userHandler.Authenticate,
		GetUserByIDHandler:         userHandler.GetByID,
		RevokeUserAuthTokenHandler: userHandler.RevokeToken,

		// Business endpoints.
		ListBusinessesHandler:  businessHandler.List,
		GetBusinessByIDHandler: businessHandler.GetByID,
		CreateBusinessHandler:  businessHandler.Create,
		UpdateBusinessHandler:  businessHandler.Update,

		// Booking endpoints.
		ListAvailableSlotsHandler:   bookingHandler.ListAvailableSlots,
		ReserveHandler:              bookingHandler.Reserve,
		CancelBookingHandler:        bookingHandler.Cancel,
		ListMyBookingsHandler:       bookingHandler.ListMine,
		ListBusinessBookingsHandler: bookingHandler.ListForBusiness,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
