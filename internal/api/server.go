// Package api implements the HTTP API for the news service.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmgpulse/rmgpulse/internal/ai"
	"github.com/rmgpulse/rmgpulse/internal/config"
	"github.com/rmgpulse/rmgpulse/internal/database"
	"github.com/rmgpulse/rmgpulse/internal/domain"
	"github.com/rmgpulse/rmgpulse/internal/logger"
)

const apiVersion = "1.0.0"

// ArticleStore is the read surface the API needs from the database.
type ArticleStore interface {
	List(ctx context.Context, filters database.ListFilters) ([]*domain.Article, error)
	Count(ctx context.Context, filters database.ListFilters) (int, error)
	ListRecent(ctx context.Context, since time.Time, limit int) ([]*domain.Article, error)
}

// HarvestRunner triggers a full harvest pass.
type HarvestRunner interface {
	HarvestAll(ctx context.Context, perSource int) map[string]int
}

// Analyzer produces article analytics.
type Analyzer interface {
	AnalyzeArticle(ctx context.Context, text, title string) ai.Analysis
	TrendingTopics(ctx context.Context, texts []string) []ai.Topic
}

// Server is the HTTP API server.
type Server struct {
	cfg        config.ServerConfig
	store      ArticleStore
	harvester  HarvestRunner
	analyzer   Analyzer
	sources    []domain.Source
	log        logger.Interface
	engine     *gin.Engine
	httpServer *http.Server
}

// Params holds the dependencies for creating a server.
type Params struct {
	Config    config.ServerConfig
	Store     ArticleStore
	Harvester HarvestRunner
	Analyzer  Analyzer
	Sources   []domain.Source
	Logger    logger.Interface
}

// NewServer creates the API server and registers all routes.
func NewServer(p Params) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:       p.Config,
		store:     p.Store,
		harvester: p.Harvester,
		analyzer:  p.Analyzer,
		sources:   p.Sources,
		log:       p.Logger.WithComponent("api"),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())
	engine.Use(s.requestLogger())

	s.engine = engine
	s.registerRoutes()
	return s
}

// Router exposes the gin engine, used by tests.
func (s *Server) Router() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.root)
	s.engine.GET("/health", s.health)

	api := s.engine.Group("/api")
	{
		api.GET("/news", s.getNews)
		api.GET("/news/sources/:id", s.getNewsBySource)
		api.GET("/headlines", s.getHeadlines)
		api.GET("/sources", s.getSources)
		api.POST("/harvest", s.postHarvest)
		api.POST("/analyze", s.postAnalyze)
		api.GET("/sentiment", s.getSentiment)
		api.GET("/trending", s.getTrending)
		api.GET("/insights", s.getInsights)
	}
}

// Start runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("api server listening", "address", s.cfg.Address)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("api server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api server shutdown failed: %w", err)
	}
	s.log.Info("api server stopped")
	return nil
}

// corsMiddleware allows cross-origin requests from any origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to RMG Pulse API",
		"status":  "healthy",
		"version": apiVersion,
		"features": []string{
			"AI-Powered News Analysis",
			"Market Intelligence Dashboard",
			"Trending Topics Detection",
		},
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "API is running successfully",
	})
}
