package http

import (
	"context"
	"time"

	"github.com/citypulse-backend/internal/config"
	"github.com/citypulse-backend/internal/delivery/http/handler"
	"github.com/citypulse-backend/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - Fiber HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	userHandler        *handler.UserHandler
	poiHandler         *handler.POIHandler
	institutionHandler *handler.InstitutionHandler
	postHandler        *handler.PostHandler
	newsHandler        *handler.NewsHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	userHandler *handler.UserHandler,
	poiHandler *handler.POIHandler,
	institutionHandler *handler.InstitutionHandler,
	postHandler *handler.PostHandler,
	newsHandler *handler.NewsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "CityPulse Backend",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		userHandler:        userHandler,
		poiHandler:         poiHandler,
		institutionHandler: institutionHandler,
		postHandler:        postHandler,
		newsHandler:        newsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// User routes
	api.Post("/users", s.userHandler.Create)
	api.Get("/users", s.userHandler.List)
	api.Get("/users/:id", s.userHandler.Get)
	api.Put("/users/:id", s.userHandler.Update)
	api.Delete("/users/:id", s.userHandler.Delete)

	// POI routes
	api.Post("/pois", s.poiHandler.Create)
	api.Get("/pois", s.poiHandler.List)
	api.Get("/pois/:id", s.poiHandler.Get)
	api.Put("/pois/:id", s.poiHandler.Update)
	api.Delete("/pois/:id", s.poiHandler.Delete)

	// Institution routes
	api.Post("/institutions", s.institutionHandler.Create)
	api.Get("/institutions", s.institutionHandler.List)
	api.Get("/institutions/:id", s.institutionHandler.Get)
	api.Put("/institutions/:id", s.institutionHandler.Update)
	api.Delete("/institutions/:id", s.institutionHandler.Delete)

	// Institution post routes. The search routes are registered before
	// the :id ones so "nearby" and "ai-search" never match as IDs.
	api.Get("/institution-posts/nearby", s.postHandler.Nearby)
	api.Get("/institution-posts/ai-search", s.postHandler.AISearch)
	api.Post("/institution-posts", s.postHandler.Create)
	api.Get("/institution-posts", s.postHandler.List)
	api.Get("/institution-posts/:id", s.postHandler.Get)
	api.Put("/institution-posts/:id", s.postHandler.Update)
	api.Delete("/institution-posts/:id", s.postHandler.Delete)

	// News routes, same ordering rule for "search" and "article"
	api.Get("/news/search", s.newsHandler.Search)
	api.Get("/news/article", s.newsHandler.Article)
	api.Post("/news", s.newsHandler.Create)
	api.Get("/news", s.newsHandler.List)
	api.Get("/news/:id", s.newsHandler.Get)
	api.Put("/news/:id", s.newsHandler.Update)
	api.Delete("/news/:id", s.newsHandler.Delete)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
