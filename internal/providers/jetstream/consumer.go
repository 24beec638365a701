package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/pharmadna/pharma-ledger/internal/adapter"
)

// ConsumerConfig holds the configuration for a durable custody event consumer
type ConsumerConfig struct {
	Config
	ConsumerName string
	AckWait      time.Duration
	MaxDeliver   int
}

// Subscription bundles a durable consumer with the connection that owns it
type Subscription struct {
	Conn     adapter.NatsConn
	Consumer adapter.Consumer
}

// NewConsumer creates a durable pull consumer over the custody event stream
func NewConsumer(ctx context.Context, cfg ConsumerConfig, natsJS adapter.NatsJetStream) (*Subscription, error) {
	nc, js, err := connect(cfg.Config, natsJS)
	if err != nil {
		return nil, err
	}

	consumer, err := js.CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
		Durable:       cfg.ConsumerName,
		FilterSubject: SubjectPrefix + ".>",
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       cfg.AckWait,
		MaxDeliver:    cfg.MaxDeliver,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create custody consumer: %w", err)
	}

	return &Subscription{Conn: nc, Consumer: consumer}, nil
}

// Close closes the underlying NATS connection
func (s *Subscription) Close() {
	if s.Conn == nil {
		return
	}

	s.Conn.Close()
}
