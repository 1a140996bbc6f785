package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"persona-engine/internal/catalog"
	"persona-engine/internal/config"
	"persona-engine/internal/db"
	"persona-engine/internal/engine"
	apihttp "persona-engine/internal/http"
	"persona-engine/internal/persona"
	"persona-engine/internal/repository"
	"persona-engine/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// The catalog is loaded once here and threaded into the engine; there
	// is no module-level question bank.
	cat, err := loadCatalog(cfg)
	if err != nil {
		logger.Fatal("catalog load", zap.Error(err))
	}
	personas := persona.Default()

	eng, err := engine.New(cat, personas)
	if err != nil {
		logger.Fatal("engine init", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	assessmentRepo := repository.NewPgAssessmentRepository(pool)

	var cache service.ResultCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cache = service.NewRedisResultCache(redisClient, time.Duration(cfg.ResultCacheTTLMinutes)*time.Minute)
		}
		cancel()
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	assessmentSvc := service.NewAssessmentService(eng, assessmentRepo, cache, logger)
	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc)
	catalogHandler := apihttp.NewCatalogHandler(logger, cat, personas)
	router := apihttp.NewRouter(logger, assessmentHandler, catalogHandler, jwtSvc)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("catalog_version", cat.Version),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.LoadDefault()
}
