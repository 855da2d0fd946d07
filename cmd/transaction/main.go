package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nusabank/transaction-core/internal/pkg/config"
	"github.com/nusabank/transaction-core/internal/pkg/database"
	"github.com/nusabank/transaction-core/internal/pkg/health"
	"github.com/nusabank/transaction-core/internal/pkg/logger"
	"github.com/nusabank/transaction-core/internal/pkg/middleware"
	nsqpkg "github.com/nusabank/transaction-core/internal/pkg/nsq"
	"github.com/nusabank/transaction-core/internal/pkg/retry"
	"github.com/nusabank/transaction-core/internal/pkg/server"
	"github.com/nusabank/transaction-core/services/transaction/gateway"
	"github.com/nusabank/transaction-core/services/transaction/handler"
	"github.com/nusabank/transaction-core/services/transaction/repository"
	"github.com/nusabank/transaction-core/services/transaction/usecase"
	"github.com/nusabank/transaction-core/services/transaction/validator"
)

func main() {
	appName := "transaction-core"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithField("app", appName).
		WithField("version", configs.App.Version).
		WithField("environment", configs.App.Environment).
		Info("starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to connect to Redis")
	}

	// Initialize NSQ producer. The broker often comes up after the service,
	// so the connection is retried with backoff.
	var producer *nsqpkg.Producer
	retrier := retry.NewWithDefaults(appLogger)
	err = retrier.Execute(context.Background(), "nsq connect", func(ctx context.Context) error {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		return err
	})
	if err != nil {
		appLogger.WithError(err).Fatal("failed to connect to NSQ")
	}

	// Initialize repositories
	aggregateCache := repository.NewAggregateCache(redisClient, appLogger)
	accountRepo := repository.NewPostgresAccountRepo(postgresClient.GetDB())
	transactionRepo := repository.NewPostgresTransactionRepo(postgresClient.GetDB(), aggregateCache)

	// Initialize validator and gateway
	securityValidator := validator.NewSecurityValidator(configs.Security, appLogger)
	notificationGW := gateway.NewNotificationGW(producer, configs.NSQ, appLogger)

	// Initialize use case
	transactionUC := usecase.NewTransactionUC(configs, accountRepo, transactionRepo, securityValidator, notificationGW, appLogger)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(logger.EchoMiddleware(appLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": postgresClient.Ping,
		"redis":    redisClient.Ping,
	})

	// Register service routes
	transactionHandler := handler.NewTransactionHandler(transactionUC, accountRepo)
	transactionHandler.RegisterRoutes(e)

	// Collect component cleanups to run after the server drains
	shutdownManager := server.NewShutdownManager(appLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		postgresClient.Close()
		return nil
	})

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Error("server shutdown with error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownManager.Shutdown(ctx)
}
