package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"scripture-llm/internal/bible"
	"scripture-llm/internal/config"
	"scripture-llm/internal/db"
	apihttp "scripture-llm/internal/http"
	"scripture-llm/internal/llm"
	"scripture-llm/internal/repository"
	"scripture-llm/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
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

	// Persistencia de consumo: postgres si hay DATABASE_URL, no-op si no.
	var usageRepo repository.UsageRepository = repository.NewDisabledUsageRepository()
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		usageRepo = repository.NewPgUsageRepository(pool)
	} else {
		logger.Warn("usage tracking disabled, DATABASE_URL not configured")
	}

	chapterCache := bible.NewChapterCache(cfg.ChapterCacheSize)
	bibleClient := bible.NewClient(
		cfg.BibleAPIBaseURL,
		time.Duration(cfg.BibleFetchTimeoutSeconds)*time.Second,
		chapterCache,
		logger,
	)

	llmClient := llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.LLMModel, cfg.LLMMaxTokens, logger)

	interpretSvc := service.NewInterpretService(
		bibleClient,
		llmClient,
		usageRepo,
		service.NewDailyCache(),
		service.CostRates{InputPerMTok: cfg.InputCostPerMTok, OutputPerMTok: cfg.OutputCostPerMTok},
		cfg.LLMModel,
		cfg.DefaultTranslation,
		logger,
	)

	// Rate limiter: en memoria por defecto, redis cuando hay más de una réplica.
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	var limiter service.RateLimiter = service.NewSlidingWindowLimiter(window, cfg.RateLimitMax)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, falling back to in-memory limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, window, cfg.RateLimitMax)
		}
		cancel()
	}

	interpretHandler := apihttp.NewInterpretHandler(logger, interpretSvc)
	passageHandler := apihttp.NewPassageHandler(logger, interpretSvc, cfg.DefaultTranslation)
	router := apihttp.NewRouter(logger, limiter, interpretHandler, passageHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("model", cfg.LLMModel),
		zap.String("default_translation", cfg.DefaultTranslation),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
