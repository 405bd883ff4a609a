package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/nebengjek-fare/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengjek-fare/internal/pkg/config"
	"github.com/piresc/nebengjek-fare/internal/pkg/database"
	"github.com/piresc/nebengjek-fare/internal/pkg/health"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/middleware"
	"github.com/piresc/nebengjek-fare/internal/pkg/nsq"
	"github.com/piresc/nebengjek-fare/internal/pkg/retry"
	"github.com/piresc/nebengjek-fare/internal/pkg/server"
	"github.com/piresc/nebengjek-fare/services/fare"
	"github.com/piresc/nebengjek-fare/services/fare/gateway"
	fareHandler "github.com/piresc/nebengjek-fare/services/fare/handler"
	fareRepository "github.com/piresc/nebengjek-fare/services/fare/repository"
	fareUsecase "github.com/piresc/nebengjek-fare/services/fare/usecase"
	locationHandler "github.com/piresc/nebengjek-fare/services/location/handler"
	locationRepository "github.com/piresc/nebengjek-fare/services/location/repository"
	locationUsecase "github.com/piresc/nebengjek-fare/services/location/usecase"
)

func main() {
	appName := "fare-service"
	configPath := "config/fare.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.InitAppLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	logger.SetGlobalLogger(appLogger)

	if configs.JWT.Secret == "" {
		appLogger.Fatal("JWT_SECRET must be set")
	}

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		appLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Repositories
	var configRepo fare.FareConfigRepo = fareRepository.NewFareConfigRepository(configs, postgresClient.GetDB())
	if configs.Cache.Enabled {
		configRepo = fareRepository.NewCachedFareConfigRepository(configRepo, redisClient, configs.Cache.TTL)
		logger.Info("Fare configuration cache enabled", logger.Duration("ttl", configs.Cache.TTL))
	}
	fareRepo := fareRepository.NewFareRepository(postgresClient.GetDB())
	locationRepo := locationRepository.NewLocationRepository(redisClient, configs.Location.TTL)

	// Gateway
	publishBreaker := circuitbreaker.New(circuitbreaker.DefaultConfig("nsq.fare_calculated"), nil)
	fareGW := gateway.NewNSQGateway(producer, retry.NewWithDefaults(appLogger), publishBreaker)

	// Usecases
	locationUC := locationUsecase.NewLocationUC(configs, locationRepo)
	fareUC := fareUsecase.NewFareUC(configs, configRepo, fareRepo, fareGW, locationUC, nil)

	// Handlers
	fareHandlers := fareHandler.NewHandler(fareUC, configs)
	locationHandlers := locationHandler.NewHandler(locationUC)

	if err := fareHandlers.InitNSQConsumers(); err != nil {
		appLogger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true

	// Panic recovery must run first
	e.Use(middleware.PanicRecoveryWithLogger(appLogger))
	e.Use(echomw.RequestID())
	e.Use(logger.EchoMiddleware(appLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nsq", health.NewNSQHealthChecker(producer))
	health.RegisterHealthEndpoints(e, appName, healthService)

	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(configs.JWT))
	fareHandlers.RegisterRoutes(api)
	locationHandlers.RegisterRoutes(api)

	// Released in reverse order: consumers stop before the producer and stores close
	components := server.NewShutdownManager(appLogger)
	components.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	components.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	components.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	components.Register(func(ctx context.Context) error {
		fareHandlers.Stop()
		return nil
	})

	srv := server.NewGracefulServer(e, appLogger, configs.Server, components)
	if err := srv.Start(); err != nil {
		appLogger.Error("Server exited with error", logger.Err(err))
		return
	}

	appLogger.Info("Server exiting gracefully")
}
