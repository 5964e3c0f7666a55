package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/zpeteman/content-repurposer/internal/api/middleware"
	"github.com/zpeteman/content-repurposer/internal/api/v1/handlers"
	v1routes "github.com/zpeteman/content-repurposer/internal/api/v1/routes"
	"github.com/zpeteman/content-repurposer/internal/app/repository"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string
}

// Server exposes the pipeline over HTTP.
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer builds the router and wires the v1 routes.
func NewServer(config Config, runner handlers.PipelineRunner, runs repository.RunDAO, logger *zap.Logger) *Server {
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := &v1routes.Handlers{
		Generation: handlers.NewGenerationHandler(runner),
		Runs:       handlers.NewRunsHandler(runs),
	}

	api := router.Group("/api")
	{
		v1 := api.Group("/v1")
		v1routes.RegisterRoutes(v1, h)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ContentCraft API",
			"version": "1.0",
			"endpoints": gin.H{
				"health":      "/health",
				"metrics":     "/metrics",
				"generations": "/api/v1/generations",
				"runs":        "/api/v1/runs/recent",
			},
		})
	})

	httpServer := &http.Server{
		Addr:         config.Addr,
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		config:     config,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start begins serving. It blocks until the listener fails or the server is
// shut down.
func (s *Server) Start() error {
	s.logger.Info("starting API server",
		zap.String("addr", s.config.Addr),
		zap.String("environment", s.config.Environment),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	return s.httpServer.Shutdown(ctx)
}

// Router returns the Gin router, useful for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
