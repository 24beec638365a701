package store

import (
	"context"
	"time"

	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/store/schema"
)

// CreateTransferRequestInput carries the fields for a new transfer request
type CreateTransferRequestInput struct {
	TokenID     uint64
	FromAddress string
	ToAddress   string
	Note        *string
}

// TransferRequestFilter narrows transfer request listings. Zero-valued fields
// are ignored.
type TransferRequestFilter struct {
	TokenID *uint64
	Address string
	Status  schema.TransferRequestStatus
}

// CreateMilestoneInput carries the fields for a new milestone record
type CreateMilestoneInput struct {
	TokenID       uint64
	MilestoneType string
	Description   string
	Location      *string
	Actor         string
	Timestamp     time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks
type Store interface {
	// ApplyCustodyEvent applies a ledger event to the mirror tables. Events
	// already applied (same sequence) are skipped, so redelivery is safe.
	ApplyCustodyEvent(ctx context.Context, event *domain.CustodyEvent) error
	// GetTokenRecord retrieves a mirrored token record, nil when absent
	GetTokenRecord(ctx context.Context, tokenID uint64) (*schema.TokenRecord, error)
	// ListTokenRecordsByOwner retrieves the mirrored tokens held by an address
	ListTokenRecordsByOwner(ctx context.Context, owner string) ([]schema.TokenRecord, error)
	// GetAccountRole retrieves a mirrored role assignment, nil when absent
	GetAccountRole(ctx context.Context, address string) (*schema.AccountRole, error)
	// GetCustodyEventsByToken retrieves a token's mirrored events ordered by sequence
	GetCustodyEventsByToken(ctx context.Context, tokenID uint64) ([]schema.CustodyEvent, error)

	// CreateTransferRequest inserts a pending transfer request. At most one
	// pending request may exist per (token, recipient); a duplicate returns
	// domain.ErrRequestConflict.
	CreateTransferRequest(ctx context.Context, input CreateTransferRequestInput) (*schema.TransferRequest, error)
	// GetTransferRequest retrieves a transfer request by ID, nil when absent
	GetTransferRequest(ctx context.Context, id string) (*schema.TransferRequest, error)
	// ListTransferRequests retrieves transfer requests matching the filter,
	// newest first
	ListTransferRequests(ctx context.Context, filter TransferRequestFilter) ([]schema.TransferRequest, error)
	// UpdateTransferRequestStatus transitions a request from one status to
	// another atomically. A request in any other status returns
	// domain.ErrRequestConflict; an unknown ID returns domain.ErrRequestNotFound.
	UpdateTransferRequestStatus(ctx context.Context, id string, from, to schema.TransferRequestStatus, responseNote *string) error

	// CreateMilestone appends a milestone record for a token
	CreateMilestone(ctx context.Context, input CreateMilestoneInput) (*schema.Milestone, error)
	// ListMilestonesByToken retrieves a token's milestones ordered by timestamp
	ListMilestonesByToken(ctx context.Context, tokenID uint64) ([]schema.Milestone, error)
}
