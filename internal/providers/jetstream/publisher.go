package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/pharmadna/pharma-ledger/internal/adapter"
	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/logger"
	"github.com/pharmadna/pharma-ledger/internal/messaging"
)

// SubjectPrefix is the root of the custody event subject space. Events are
// published to custody.<event_type>.
const SubjectPrefix = "custody"

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// connect dials NATS with reconnect handlers wired into the logger
func connect(cfg Config, natsJS adapter.NatsJetStream) (adapter.NatsConn, adapter.JetStream, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return nc, js, nil
}

// NewPublisher creates a new NATS JetStream publisher for custody events. The
// custody stream is created if it does not exist yet, so the ledger can start
// before the bridge.
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	nc, js, err := connect(cfg, natsJS)
	if err != nil {
		return nil, err
	}

	if err := js.CreateStream(ctx, jetstream.StreamConfig{
		Name:      cfg.StreamName,
		Subjects:  []string{SubjectPrefix + ".>"},
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
	}); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create custody stream: %w", err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// PublishEvent publishes a custody event to NATS JetStream
func (p *publisher) PublishEvent(ctx context.Context, event *domain.CustodyEvent) error {
	logger.Debug("publishing custody event",
		zap.Uint64("sequence", event.Sequence),
		zap.String("event_type", string(event.EventType)))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", SubjectPrefix, event.EventType)

	// MsgId dedupes re-publishes of the same ledger sequence on the broker side
	_, err = p.js.Publish(ctx, subject, data,
		jetstream.WithMsgID(fmt.Sprintf("%d", event.Sequence)))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
