package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Present111/Hotel-Booking/config"
	"github.com/Present111/Hotel-Booking/cron"
	"github.com/Present111/Hotel-Booking/database"
	bookingRepo "github.com/Present111/Hotel-Booking/database/repository/booking"
	hotelRepo "github.com/Present111/Hotel-Booking/database/repository/hotel"
	userRepo "github.com/Present111/Hotel-Booking/database/repository/user"
	"github.com/Present111/Hotel-Booking/handlers"
	"github.com/Present111/Hotel-Booking/routes"
	"github.com/Present111/Hotel-Booking/services/booking"
	"github.com/Present111/Hotel-Booking/services/payment"
	"github.com/Present111/Hotel-Booking/services/tasks"
	"github.com/Present111/Hotel-Booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.AppConfig.JWTSecret == "" {
		logger.Fatal("main: JWT_SECRET must be set")
	}

	database.InitDB()
	db := database.DB()
	lockClient := utils.GetLockClient()

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo(db)
	idxCtx, idxCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := bookings.EnsureIndexes(idxCtx); err != nil {
		logger.Fatal("main: failed to ensure booking indexes", zap.Error(err))
	}
	idxCancel()
	hotels := hotelRepo.NewMongoHotelRepo(db)
	users := userRepo.NewMongoUserRepo(db)

	// counter ledger with its retry queue and worker.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	retryQueue := tasks.NewAsynqCounterQueue(queueClient, config.AppConfig.LedgerMaxRetry)
	ledger := booking.NewCounterLedger(hotels, users, retryQueue, logger.Named("ledger"))

	worker, err := cron.InitLedgerWorker(ledger, logger.Named("ledger-worker"))
	if err != nil {
		logger.Fatal("main: failed to start ledger worker", zap.Error(err))
	}

	bookingService, err := booking.NewBookingService(booking.Dependencies{
		Bookings: bookings,
		Hotels:   hotels,
		Users:    users,
		Gateway:  payment.NewStripeGateway(config.AppConfig.StripeKey, nil),
		Ledger:   ledger,
		Locker:   utils.NewRedisIntentLocker(lockClient, config.IntentLockTTL()),
		Logger:   logger.Named("booking"),
		Currency: config.AppConfig.PaymentCurrency,
	})
	if err != nil {
		logger.Fatal("main: failed to build booking service", zap.Error(err))
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, lockClient, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		BookingHandler:    handlers.NewBookingHandler(bookingService, logger.Named("http")),
		AdminHandler:      handlers.NewAdminHandler(bookingService, logger.Named("http")),
		MaxRequestsPerMin: config.AppConfig.MaxRequestsPerMin,
		AllowedOrigins:    config.AllowedOrigins(),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	if err := lockClient.Close(); err != nil {
		logger.Warn("main: closing redis lock client", zap.Error(err))
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: disconnecting mongo", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
