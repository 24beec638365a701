package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pharmadna/pharma-ledger/internal/adapter"
	"github.com/pharmadna/pharma-ledger/internal/bridge"
	"github.com/pharmadna/pharma-ledger/internal/config"
	"github.com/pharmadna/pharma-ledger/internal/logger"
	"github.com/pharmadna/pharma-ledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEventBridgeConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "event-bridge",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting Event Bridge")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create bridge
	eventBridge, err := bridge.NewBridge(ctx,
		bridge.Config{
			URL:             cfg.NATS.URL,
			StreamName:      cfg.NATS.StreamName,
			ConsumerName:    cfg.NATS.ConsumerName,
			MaxReconnects:   cfg.NATS.MaxReconnects,
			ReconnectWait:   cfg.NATS.ReconnectWait,
			ConnectionName:  cfg.NATS.ConnectionName,
			AckWaitTimeout:  cfg.NATS.AckWait,
			MaxDeliver:      cfg.NATS.MaxDeliver,
			WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
			WorkerQueueSize: cfg.Worker.WorkerQueueSize,
		},
		natsJS,
		dataStore,
		jsonAdapter,
	)
	if err != nil {
		logger.Fatal("Failed to create event bridge", zap.Error(err))
	}
	defer eventBridge.Close()
	logger.Info("Event bridge created", zap.String("stream", cfg.NATS.StreamName), zap.String("consumer", cfg.NATS.ConsumerName))

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel for bridge errors
	errCh := make(chan error, 1)

	// Start the bridge
	go func() {
		if err := eventBridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.Error(err, zap.String("component", "bridge"))
		cancel()
	}

	// Give the worker pool time to drain in-flight events
	time.Sleep(time.Second)

	logger.Info("Event Bridge stopped")
}
