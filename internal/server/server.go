// Package server wires the HTTP API: router, middleware and handlers.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arloliu/rechenmodul/internal/config"
	"github.com/arloliu/rechenmodul/internal/pipeline"
	"github.com/arloliu/rechenmodul/internal/server/handlers"
	"github.com/arloliu/rechenmodul/internal/server/middleware"
	"github.com/arloliu/rechenmodul/store"
)

// Server represents the HTTP API server
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	logger     *zap.Logger
	store      *store.Store
	pipeline   *pipeline.Pipeline
}

// New creates a server for the session store s and its recalculation
// pipeline p.
func New(cfg *config.Config, s *store.Store, p *pipeline.Pipeline, logger *zap.Logger) *Server {
	srv := &Server{
		config:   cfg,
		logger:   logger.Named("http"),
		store:    s,
		pipeline: p,
	}
	srv.setupRouter()
	srv.httpServer = &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.router,
		ReadTimeout:       cfg.ReadTimeoutDuration(),
		ReadHeaderTimeout: cfg.ReadTimeoutDuration(),
		WriteTimeout:      cfg.WriteTimeoutDuration(),
	}

	return srv
}

// setupRouter sets up the Gin router with all routes and middleware
func (s *Server) setupRouter() {
	router := gin.New()

	rateLimiter := middleware.NewRateLimiter(s.config.RateLimit, s.config.RateBurst, time.Minute)

	router.Use(middleware.Logger(s.logger))
	router.Use(middleware.Recovery(s.logger))
	router.Use(middleware.RateLimit(rateLimiter))
	router.Use(middleware.RequestSizeLimit(s.config.MaxBodyBytes))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	calculateHandler := handlers.NewCalculateHandler(s.config.Limits())
	pointsHandler := handlers.NewPointsHandler(s.store)
	resultHandler := handlers.NewResultHandler(s.store, s.pipeline)
	tokenHandler := handlers.NewTokenHandler(s.store, s.config.Encoding(), s.config.Compression())

	api := router.Group("/api/v1")
	{
		api.POST("/calculate", calculateHandler.Calculate)

		api.GET("/points", pointsHandler.List)
		api.POST("/points", pointsHandler.Create)
		api.PUT("/points", pointsHandler.Replace)
		api.POST("/points/import", pointsHandler.Import)
		api.PUT("/points/:id", pointsHandler.Update)
		api.DELETE("/points/:id", pointsHandler.Delete)

		api.GET("/contingency", pointsHandler.Table)
		api.PUT("/contingency", pointsHandler.SetTable)

		api.GET("/result", resultHandler.Get)

		api.GET("/token", tokenHandler.Export)
		api.POST("/token", tokenHandler.Import)
	}

	s.router = router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("listen", s.config.Listen))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")

	return s.httpServer.Shutdown(ctx)
}

// Router returns the Gin router (for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
