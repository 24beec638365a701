package workflows

import (
	"context"
	"fmt"

	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/ledger"
	"github.com/pharmadna/pharma-ledger/internal/store"
	"github.com/pharmadna/pharma-ledger/internal/store/schema"
)

// ApproveTransferInput carries the approved transfer request into the workflow
type ApproveTransferInput struct {
	RequestID    string  `json:"request_id"`
	TokenID      uint64  `json:"token_id"`
	FromAddress  string  `json:"from_address"`
	ToAddress    string  `json:"to_address"`
	ResponseNote *string `json:"response_note,omitempty"`
}

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockHandoffExecutor
type Executor interface {
	// MarkRequestApproved claims a pending request for the approval saga.
	// A request that is no longer pending fails with RequestConflict.
	MarkRequestApproved(ctx context.Context, requestID string, responseNote *string) error

	// ExecuteCustodyTransfer moves custody on the ledger and awaits
	// confirmation. Ledger policy rejections and confirmation timeouts come
	// back as typed application errors.
	ExecuteCustodyTransfer(ctx context.Context, input ApproveTransferInput) error

	// CompleteRequest finalizes an approved request after the custody
	// transfer is confirmed
	CompleteRequest(ctx context.Context, requestID string) error

	// RollbackRequestApproval is the compensation: it puts an approved
	// request back to pending after a failed custody transfer
	RollbackRequestApproval(ctx context.Context, requestID string) error
}

// executor is the concrete implementation of Executor
type executor struct {
	store store.Store
	chain *ledger.Client
}

// NewExecutor creates a new executor instance
func NewExecutor(store store.Store, chain *ledger.Client) Executor {
	return &executor{
		store: store,
		chain: chain,
	}
}

// MarkRequestApproved claims a pending request for the approval saga
func (e *executor) MarkRequestApproved(ctx context.Context, requestID string, responseNote *string) error {
	err := e.store.UpdateTransferRequestStatus(ctx, requestID,
		schema.TransferRequestStatusPending, schema.TransferRequestStatusApproved, responseNote)
	if err != nil {
		return wrapActivityError(fmt.Errorf("failed to mark request approved: %w", err))
	}

	return nil
}

// ExecuteCustodyTransfer moves custody on the ledger and awaits confirmation
func (e *executor) ExecuteCustodyTransfer(ctx context.Context, input ApproveTransferInput) error {
	err := e.chain.Transfer(ctx, input.FromAddress, domain.TokenID(input.TokenID), input.ToAddress)
	if err != nil {
		return wrapActivityError(err)
	}

	return nil
}

// CompleteRequest finalizes an approved request
func (e *executor) CompleteRequest(ctx context.Context, requestID string) error {
	err := e.store.UpdateTransferRequestStatus(ctx, requestID,
		schema.TransferRequestStatusApproved, schema.TransferRequestStatusCompleted, nil)
	if err != nil {
		return wrapActivityError(fmt.Errorf("failed to complete request: %w", err))
	}

	return nil
}

// RollbackRequestApproval puts an approved request back to pending
func (e *executor) RollbackRequestApproval(ctx context.Context, requestID string) error {
	err := e.store.UpdateTransferRequestStatus(ctx, requestID,
		schema.TransferRequestStatusApproved, schema.TransferRequestStatusPending, nil)
	if err != nil {
		return wrapActivityError(fmt.Errorf("failed to roll back request approval: %w", err))
	}

	return nil
}
