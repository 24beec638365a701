package schema

import (
	"time"
)

// TransferRequestStatus represents the lifecycle state of a transfer request
type TransferRequestStatus string

const (
	// TransferRequestStatusPending indicates the request awaits the recipient's decision
	TransferRequestStatusPending TransferRequestStatus = "pending"
	// TransferRequestStatusApproved indicates the recipient accepted and the custody transfer is executing
	TransferRequestStatusApproved TransferRequestStatus = "approved"
	// TransferRequestStatusRejected indicates the recipient declined the request
	TransferRequestStatusRejected TransferRequestStatus = "rejected"
	// TransferRequestStatusCancelled indicates the sender withdrew the request
	TransferRequestStatusCancelled TransferRequestStatus = "cancelled"
	// TransferRequestStatusCompleted indicates the custody transfer was confirmed on the ledger
	TransferRequestStatusCompleted TransferRequestStatus = "completed"
)

// TransferRequest represents the transfer_requests table - the off-chain
// handoff protocol between custody holders. At most one pending request may
// exist per (token_id, to_address); a partial unique index enforces it.
type TransferRequest struct {
	// ID is the request identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// TokenID is the batch token the request concerns
	TokenID uint64 `gorm:"column:token_id;not null;index:idx_transfer_requests_token_id"`
	// FromAddress is the current custody holder proposing the handoff
	FromAddress string `gorm:"column:from_address;not null;type:text;index:idx_transfer_requests_from_address"`
	// ToAddress is the proposed recipient
	ToAddress string `gorm:"column:to_address;not null;type:text;index:idx_transfer_requests_to_address"`
	// Note is an optional message from the sender
	Note *string `gorm:"column:note;type:text"`
	// Status is the current lifecycle state
	Status TransferRequestStatus `gorm:"column:status;not null;type:text"`
	// ResponseNote is an optional message recorded with the recipient's decision
	ResponseNote *string `gorm:"column:response_note;type:text"`
	// CreatedAt is the timestamp when the request was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last status change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TransferRequest model
func (TransferRequest) TableName() string {
	return "transfer_requests"
}
