package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mpawlak/wedrownik/internal/pkg/config"
	"github.com/mpawlak/wedrownik/internal/pkg/database"
	"github.com/mpawlak/wedrownik/internal/pkg/health"
	"github.com/mpawlak/wedrownik/internal/pkg/logger"
	"github.com/mpawlak/wedrownik/internal/pkg/middleware"
	"github.com/mpawlak/wedrownik/internal/pkg/server"
	"github.com/mpawlak/wedrownik/services/places/handler"
	"github.com/mpawlak/wedrownik/services/places/repository"
	"github.com/mpawlak/wedrownik/services/places/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "places-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/places.env"
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

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	placeRepo := repository.NewPlaceRepo(configs, postgresClient.GetDB(), redisClient)

	if configs.Places.SeedCatalog {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := placeRepo.SeedCatalog(ctx, repository.DefaultCatalog()); err != nil {
			cancel()
			zapLogger.Fatal("Failed to seed place catalog", zap.Error(err))
		}
		cancel()
		zapLogger.Info("Place catalog seeded")
	}

	placeUC := usecase.NewPlaceUC(configs, placeRepo)
	placesHandler := handler.NewHandler(placeUC)

	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	placesHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
