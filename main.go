package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/medcalc/backend/internal/cache"
	"github.com/medcalc/backend/internal/config"
	"github.com/medcalc/backend/internal/database"
	"github.com/medcalc/backend/internal/domain"
	"github.com/medcalc/backend/internal/handlers"
	"github.com/medcalc/backend/internal/logger"
	"github.com/medcalc/backend/internal/repository"
	"github.com/medcalc/backend/internal/server"
	"github.com/medcalc/backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("Starting Medical Calculator API...")

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Optional Redis cache for enrichment API responses
	var apiCache domain.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Port)
		if err != nil {
			logger.Warnf("Redis unavailable, continuing without cache: %v", err)
		} else {
			defer redisCache.Close()
			apiCache = redisCache
		}
	}

	// Optional external calories provider
	var provider domain.ActivityCaloriesProvider
	var catalog domain.ActivityCatalog
	if cfg.APINinjas.Enabled {
		caloriesAPI := services.NewCaloriesAPIService(cfg.APINinjas.Key, apiCache)
		provider = caloriesAPI
		catalog = caloriesAPI
	}

	repo := repository.NewCalculatorRepository(db)
	enrichment := services.NewEnrichmentService(provider)
	calculationService := services.NewCalculationService(repo, enrichment)
	historyService := services.NewHistoryService(repo)
	userService := services.NewUserService(repo)
	metricsService := services.NewMetricsService(repo)
	logger.Info("Services initialized successfully")

	router := server.NewRouter(server.RouterConfig{
		AllowedOrigins:     cfg.Server.AllowedOrigins,
		HealthHandler:      handlers.NewHealthCheckHandler(db),
		CalculationHandler: handlers.NewCalculationHandler(calculationService, historyService),
		UserHandler:        handlers.NewUserHandler(userService),
		MetricsHandler:     handlers.NewMetricsHandler(metricsService),
		ActivitiesHandler:  handlers.NewActivitiesHandler(catalog),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("Listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server stopped with error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
	logger.Info("Server stopped")
}
