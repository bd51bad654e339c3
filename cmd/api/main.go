package main

// @title CityPulse Backend API
// @version 1.0.0
// @description Backend for a city discovery platform. Stores institution posts, points of interest and news as schemaless documents, serves geohash-based proximity search and translates natural language queries into structured post filters with an LLM.
// @description
// @description Main capabilities:
// @description - Institution posts pinned to map locations with radius search
// @description - Natural language post search (LLM query translation + ranking)
// @description - News aggregation across NewsAPI, SerpAPI, Serper and RSS providers
// @description - Readable article extraction from news URLs
// @description - Document CRUD for users, institutions and points of interest

// @contact.name API Support
// @contact.email support@citypulse.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/citypulse-backend/docs"
	"github.com/citypulse-backend/internal/config"
	httpDelivery "github.com/citypulse-backend/internal/delivery/http"
	"github.com/citypulse-backend/internal/delivery/http/handler"
	"github.com/citypulse-backend/internal/domain/repository"
	"github.com/citypulse-backend/internal/infrastructure/news"
	"github.com/citypulse-backend/internal/infrastructure/scraper"
	"github.com/citypulse-backend/internal/infrastructure/translate"
	"github.com/citypulse-backend/internal/pkg/logger"
	"github.com/citypulse-backend/internal/repository/cache"
	"github.com/citypulse-backend/internal/repository/docstore"
	"github.com/citypulse-backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting CityPulse Backend")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL (document store)
	db, err := docstore.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	docRepo := docstore.NewDocumentRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize infrastructure clients
	// Registration order decides which copy of a duplicate story survives
	// merging, so the higher-quality providers go first.
	providers := []repository.NewsProvider{
		news.NewNewsAPIClient(&cfg.News, log),
		news.NewSerpAPIClient(&cfg.News, log),
		news.NewSerperClient(&cfg.News, log),
		news.NewRSSClient(&cfg.News, log),
	}
	for _, p := range providers {
		log.Info("News provider registered",
			zap.String("provider", p.Name()),
			zap.Bool("configured", p.Configured()),
		)
	}

	var completion repository.CompletionRepository
	switch cfg.Translator.Backend {
	case "gemini":
		completion, err = translate.NewGeminiClient(context.Background(), &cfg.Translator, log)
		if err != nil {
			log.Fatal("Failed to initialize Gemini client", zap.Error(err))
		}
	default:
		completion = translate.NewOllamaClient(&cfg.Translator, log)
	}
	log.Info("Query translator initialized", zap.String("backend", cfg.Translator.Backend))

	articleClient := scraper.NewArticleClient(&cfg.News, log)

	// 8. Initialize use cases
	translateUC := usecase.NewTranslateUseCase(completion, log, cfg.Translator.RequestTimeout)

	userUC := usecase.NewUserUseCase(docRepo, log)
	poiUC := usecase.NewPOIUseCase(docRepo, log)
	institutionUC := usecase.NewInstitutionUseCase(docRepo, log)

	postUC := usecase.NewPostUseCase(
		docRepo,
		translateUC,
		log,
		cfg.Geo.WritePrecision,
		cfg.Geo.QueryPrecision,
		cfg.Geo.MaxResults,
	)

	newsUC := usecase.NewNewsUseCase(
		docRepo,
		cacheRepo,
		articleClient,
		providers,
		log,
		cfg.Cache.NewsSearchTTL,
		cfg.News.DefaultQuery,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	userHandler := handler.NewUserHandler(userUC, log)
	poiHandler := handler.NewPOIHandler(poiUC, log)
	institutionHandler := handler.NewInstitutionHandler(institutionUC, log)
	postHandler := handler.NewPostHandler(postUC, log)
	newsHandler := handler.NewNewsHandler(newsUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		userHandler,
		poiHandler,
		institutionHandler,
		postHandler,
		newsHandler,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
