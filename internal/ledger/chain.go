package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/pharmadna/pharma-ledger/internal/domain"
)

// Node abstracts the chain execution environment a transfer is submitted to.
// The in-process Ledger satisfies it with instant finality; a remote chain
// gateway would confirm asynchronously.
//
//go:generate mockgen -source=chain.go -destination=../mocks/chain_node.go -package=mocks -mock_names=Node=MockChainNode
type Node interface {
	// SubmitTransfer applies a custody transfer and returns the ledger event
	// sequence it was recorded at. Policy rejections (NotOwner,
	// InvalidRoleTransition, NotFound) are returned verbatim.
	SubmitTransfer(ctx context.Context, caller string, tokenID domain.TokenID, to string) (uint64, error)

	// ConfirmedSequence returns the highest event sequence the chain has
	// finalized.
	ConfirmedSequence(ctx context.Context) (uint64, error)
}

// SubmitTransfer implements Node on the in-process ledger
func (l *Ledger) SubmitTransfer(ctx context.Context, caller string, tokenID domain.TokenID, to string) (uint64, error) {
	if err := l.Transfer(ctx, caller, tokenID, to); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sequence, nil
}

// ConfirmedSequence implements Node on the in-process ledger. Calls commit
// synchronously, so everything recorded is final.
func (l *Ledger) ConfirmedSequence(ctx context.Context) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sequence, nil
}

// ClientConfig holds chain client configuration
type ClientConfig struct {
	// ConfirmationTimeout bounds how long a submitted transfer may stay
	// unconfirmed before it is treated as failed.
	ConfirmationTimeout time.Duration
	// PollInterval is the initial confirmation poll interval; polling backs
	// off exponentially from here.
	PollInterval time.Duration
}

// Client submits custody transfers and awaits their confirmation. A transfer
// that is never confirmed within the timeout surfaces domain.ErrChainUnavailable
// so the caller can roll back its off-chain state; it must never hang.
type Client struct {
	node Node
	cfg  ClientConfig
}

// NewClient creates a chain client around a node
func NewClient(node Node, cfg ClientConfig) *Client {
	if cfg.ConfirmationTimeout == 0 {
		cfg.ConfirmationTimeout = 30 * time.Second
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 250 * time.Millisecond
	}
	return &Client{node: node, cfg: cfg}
}

// Transfer submits a custody transfer and blocks until it is confirmed,
// the context is cancelled, or the confirmation timeout elapses.
func (c *Client) Transfer(ctx context.Context, caller string, tokenID domain.TokenID, to string) error {
	seq, err := c.node.SubmitTransfer(ctx, caller, tokenID, to)
	if err != nil {
		// Ledger policy errors are terminal and surfaced verbatim; retrying
		// a role or ownership failure cannot change the outcome.
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ConfirmationTimeout)
	defer cancel()

	policy := backoff.WithContext(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(c.cfg.PollInterval),
		backoff.WithMaxElapsedTime(c.cfg.ConfirmationTimeout),
	), ctx)

	err = backoff.Retry(func() error {
		confirmed, err := c.node.ConfirmedSequence(ctx)
		if err != nil {
			return err
		}
		if confirmed < seq {
			return fmt.Errorf("sequence %d not yet confirmed (head %d)", seq, confirmed)
		}
		return nil
	}, policy)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrChainUnavailable, err)
	}

	return nil
}
