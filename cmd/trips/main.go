package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/mpawlak/wedrownik/internal/pkg/config"
	"github.com/mpawlak/wedrownik/internal/pkg/database"
	"github.com/mpawlak/wedrownik/internal/pkg/health"
	"github.com/mpawlak/wedrownik/internal/pkg/logger"
	"github.com/mpawlak/wedrownik/internal/pkg/middleware"
	nsqpkg "github.com/mpawlak/wedrownik/internal/pkg/nsq"
	"github.com/mpawlak/wedrownik/internal/pkg/server"
	"github.com/mpawlak/wedrownik/services/trips"
	"github.com/mpawlak/wedrownik/services/trips/gateway"
	gatewayHTTP "github.com/mpawlak/wedrownik/services/trips/gateway/http"
	"github.com/mpawlak/wedrownik/services/trips/handler"
	"github.com/mpawlak/wedrownik/services/trips/repository"
	"github.com/mpawlak/wedrownik/services/trips/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "trips-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/trips.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(logger.Config{Level: configs.Logger.Level})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Trip storage is pluggable: Postgres for the full deployment, a Redis
	// key-value store for lightweight ones. Accounts always live in Postgres.
	var tripRepo trips.TripRepo
	switch configs.Trips.Storage {
	case "local":
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		tripRepo = repository.NewLocalTripRepo(redisClient)
		zapLogger.Info("Using local key-value trip storage")
	default:
		tripRepo = repository.NewPostgresTripRepo(configs, postgresClient.GetDB())
	}
	userRepo := repository.NewUserRepo(configs, postgresClient.GetDB())

	var publisher gateway.Publisher
	if configs.NSQ.Enabled {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		defer producer.Stop()
		publisher = producer
	}

	placeGW := gatewayHTTP.NewPlaceGateway(configs)
	plannerGW := gatewayHTTP.NewPlannerGateway(configs)
	eventsGW := gateway.NewTripEventsGateway(publisher)

	tripUC := usecase.NewTripUC(configs, tripRepo, userRepo, placeGW, plannerGW, eventsGW)
	tripsHandler := handler.NewHandler(tripUC, configs)

	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	tripsHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
