package messaging

import (
	"context"

	"github.com/pharmadna/pharma-ledger/internal/domain"
)

// Publisher defines the interface for publishing custody events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a custody event to the message broker
	PublishEvent(ctx context.Context, event *domain.CustodyEvent) error
	// Close closes the connection
	Close()
}
