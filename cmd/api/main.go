package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pharmadna/pharma-ledger/internal/adapter"
	"github.com/pharmadna/pharma-ledger/internal/api/middleware"
	"github.com/pharmadna/pharma-ledger/internal/api/server"
	"github.com/pharmadna/pharma-ledger/internal/config"
	"github.com/pharmadna/pharma-ledger/internal/ledger"
	"github.com/pharmadna/pharma-ledger/internal/logger"
	"github.com/pharmadna/pharma-ledger/internal/providers/jetstream"
	temporal "github.com/pharmadna/pharma-ledger/internal/providers/temporal"
	"github.com/pharmadna/pharma-ledger/internal/store"
	"github.com/pharmadna/pharma-ledger/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Pharma Ledger API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Connect to NATS and create the custody event publisher
	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create custody event publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Initialize the custody ledger and its chain client
	custodyLedger := ledger.New(cfg.Ledger.DeployerAddress, publisher)
	chainClient := ledger.NewClient(custodyLedger, ledger.ClientConfig{
		ConfirmationTimeout: cfg.Ledger.ConfirmationTimeout,
		PollInterval:        cfg.Ledger.PollInterval,
	})
	logger.InfoCtx(ctx, "Initialized custody ledger", zap.String("deployer", cfg.Ledger.DeployerAddress))

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	// The ledger lives in this process, so the transfer worker runs alongside
	// the API server. Activities touch the ledger and the store directly.
	executor := workflows.NewExecutor(dataStore, chainClient)
	handoffWorker := workflows.NewHandoffWorker(executor)

	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.TransferTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
		})

	temporalWorker.RegisterWorkflow(handoffWorker.ApproveTransfer)
	temporalWorker.RegisterActivity(executor.MarkRequestApproved)
	temporalWorker.RegisterActivity(executor.ExecuteCustodyTransfer)
	temporalWorker.RegisterActivity(executor.CompleteRequest)
	temporalWorker.RegisterActivity(executor.RollbackRequestApproval)

	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start Temporal worker", zap.Error(err))
	}
	defer temporalWorker.Stop()
	logger.InfoCtx(ctx, "Started transfer worker", zap.String("task_queue", cfg.Temporal.TransferTaskQueue))

	// Create server config
	serverConfig := server.Config{
		Debug:                 cfg.Debug,
		Host:                  cfg.Server.Host,
		Port:                  cfg.Server.Port,
		ReadTimeout:           time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(cfg.Server.IdleTimeout) * time.Second,
		OrchestratorTaskQueue: cfg.Temporal.TransferTaskQueue,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, custodyLedger, dataStore, temporalClient)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
