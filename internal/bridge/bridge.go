package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/pharmadna/pharma-ledger/internal/adapter"
	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/logger"
	"github.com/pharmadna/pharma-ledger/internal/providers/jetstream"
	"github.com/pharmadna/pharma-ledger/internal/store"
)

const (
	DEFAULT_WORKER_POOL_SIZE  = 20
	DEFAULT_WORKER_QUEUE_SIZE = 2048
)

// Config holds the configuration for the event bridge
type Config struct {
	URL             string
	StreamName      string
	ConsumerName    string
	MaxReconnects   int
	ReconnectWait   time.Duration
	ConnectionName  string
	AckWaitTimeout  time.Duration
	MaxDeliver      int
	WorkerPoolSize  int
	WorkerQueueSize int
}

// Bridge consumes custody events from the broker and applies them to the
// database mirror
type Bridge interface {
	// Run starts the event bridge and blocks until the context is cancelled
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	sub    *jetstream.Subscription
	store  store.Store
	json   adapter.JSON
	config Config
	pool   pond.Pool
}

// NewBridge creates a new event bridge backed by a durable consumer on the
// custody event stream
func NewBridge(
	ctx context.Context,
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	sub, err := jetstream.NewConsumer(ctx, jetstream.ConsumerConfig{
		Config: jetstream.Config{
			URL:            cfg.URL,
			StreamName:     cfg.StreamName,
			MaxReconnects:  cfg.MaxReconnects,
			ReconnectWait:  cfg.ReconnectWait,
			ConnectionName: cfg.ConnectionName,
		},
		ConsumerName: cfg.ConsumerName,
		AckWait:      cfg.AckWaitTimeout,
		MaxDeliver:   cfg.MaxDeliver,
	}, natsJS)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to custody event stream: %w", err)
	}

	b := &bridge{
		sub:    sub,
		store:  st,
		json:   jsonAdapter,
		config: cfg,
	}

	return b, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName))

	workerPoolSize := b.config.WorkerPoolSize
	if workerPoolSize == 0 {
		workerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	workerQueueSize := b.config.WorkerQueueSize
	if workerQueueSize == 0 {
		workerQueueSize = DEFAULT_WORKER_QUEUE_SIZE
	}

	b.pool = pond.NewPool(
		workerPoolSize,
		pond.WithQueueSize(workerQueueSize),
		pond.WithContext(ctx),
	)

	defer func() {
		if b.pool != nil {
			b.pool.StopAndWait()

			logger.Info("Event bridge worker pool shutdown complete",
				zap.Uint64("total_submitted", b.pool.SubmittedTasks()),
				zap.Uint64("total_completed", b.pool.CompletedTasks()),
				zap.Uint64("total_failed", b.pool.FailedTasks()))
		}
	}()

	consumeCtx, err := b.sub.Consumer.Consume(func(msg adapter.Message) {
		b.pool.Submit(func() {
			b.handleMessage(ctx, msg)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer consumeCtx.Stop()

	logger.Info("Started consuming custody events")

	<-ctx.Done()
	logger.Info("Shutting down event bridge")
	return ctx.Err()
}

// handleMessage applies a single custody event to the mirror. Malformed
// payloads are terminated so the broker stops redelivering them; transient
// database failures are NAKed for redelivery.
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	var event domain.CustodyEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal custody event"), zap.String("subject", msg.Subject()))
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	if !event.Valid() {
		logger.Warn("Dropping malformed custody event",
			zap.Uint64("sequence", event.Sequence),
			zap.String("eventType", string(event.EventType)))
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	if err := b.store.ApplyCustodyEvent(ctx, &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to apply custody event"), zap.Uint64("sequence", event.Sequence))
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.sub != nil {
		b.sub.Close()
	}
}
