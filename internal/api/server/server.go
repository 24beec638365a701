package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pharmadna/pharma-ledger/internal/api/middleware"
	"github.com/pharmadna/pharma-ledger/internal/api/rest"
	"github.com/pharmadna/pharma-ledger/internal/ledger"
	"github.com/pharmadna/pharma-ledger/internal/logger"
	"github.com/pharmadna/pharma-ledger/internal/provenance"
	"github.com/pharmadna/pharma-ledger/internal/providers/temporal"
	"github.com/pharmadna/pharma-ledger/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug                 bool
	Host                  string
	Port                  int
	ReadTimeout           time.Duration
	WriteTimeout          time.Duration
	IdleTimeout           time.Duration
	OrchestratorTaskQueue string
	Auth                  middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config       Config
	ledger       *ledger.Ledger
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	httpServer   *http.Server
}

// New creates a new API server
func New(cfg Config, l *ledger.Ledger, st store.Store, orchestrator temporal.TemporalOrchestrator) *Server {
	return &Server{
		config:       cfg,
		ledger:       l,
		store:        st,
		orchestrator: orchestrator,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	prov := provenance.NewService(s.ledger, s.store)
	restHandler := rest.NewHandler(s.ledger, s.store, prov, s.orchestrator, s.config.OrchestratorTaskQueue)

	rest.SetupRoutes(router, restHandler, s.config.Auth)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
