package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Achala357/cargills-backend/docs"
	"github.com/Achala357/cargills-backend/internal/config"
	"github.com/Achala357/cargills-backend/internal/handler"
	"github.com/Achala357/cargills-backend/internal/logger"
	"github.com/Achala357/cargills-backend/internal/repository/sqlite"
	"github.com/Achala357/cargills-backend/internal/seed"
	"github.com/Achala357/cargills-backend/internal/service"
)

// @title Personalization Portal API
// @version 1.0
// @description Record store and analytics backend for the retail personalization portal
// @host localhost:5000
// @BasePath /
// @schemes http https
func main() {
	// Optional .env for local development; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.ServiceEnvironment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.ServiceEnvironment),
		zap.String("port", cfg.ServiceAPIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.ServiceHost

	ctx := context.Background()

	client, err := sqlite.NewClient(ctx, cfg.SQLitePath, log)
	if err != nil {
		log.Fatal("Failed to open record store", zap.Error(err))
	}
	defer func(client *sqlite.Client) {
		if err := client.Close(); err != nil {
			log.Error("Failed to close record store", zap.Error(err))
		}
	}(client)

	repo := sqlite.NewRepository(client, log)
	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize record store schema", zap.Error(err))
	}

	recordService := service.NewRecordService(repo, cfg.TransactionsImmutable, log)
	reportService := service.NewReportService(repo, cfg.ChurnWindowDays, log)

	if cfg.SeedPath != "" {
		if err := seed.Load(ctx, cfg.SeedPath, recordService, log); err != nil {
			log.Fatal("Failed to seed record store", zap.Error(err))
		}
	}

	h := handler.NewHandler(recordService, reportService, log)

	addr := fmt.Sprintf(":%s", cfg.ServiceAPIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
