package rest

import (
	"errors"
	"fmt"
	"time"

	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/store/schema"
)

// AssignRoleRequest represents the request body for a role assignment
type AssignRoleRequest struct {
	Caller  string `json:"caller"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// Validate validates the request body
func (r *AssignRoleRequest) Validate() error {
	if !domain.ValidAddress(r.Caller) {
		return fmt.Errorf("invalid caller address: %s", r.Caller)
	}
	if !domain.ValidAddress(r.Address) {
		return fmt.Errorf("invalid address: %s", r.Address)
	}
	if !domain.Role(r.Role).Valid() {
		return fmt.Errorf("invalid role: %s", r.Role)
	}
	return nil
}

// MintTokenRequest represents the request body for minting a batch token
type MintTokenRequest struct {
	Caller      string `json:"caller"`
	MetadataRef string `json:"metadata_ref"`
}

// Validate validates the request body
func (r *MintTokenRequest) Validate() error {
	if !domain.ValidAddress(r.Caller) {
		return fmt.Errorf("invalid caller address: %s", r.Caller)
	}
	if r.MetadataRef == "" {
		return errors.New("metadata_ref is required")
	}
	return nil
}

// CreateTransferRequestBody represents the request body for proposing a handoff
type CreateTransferRequestBody struct {
	TokenID     *uint64 `json:"token_id"`
	FromAddress string  `json:"from_address"`
	ToAddress   string  `json:"to_address"`
	Note        *string `json:"note,omitempty"`
}

// Validate validates the request body
func (r *CreateTransferRequestBody) Validate() error {
	if r.TokenID == nil {
		return errors.New("token_id is required")
	}
	if !domain.ValidAddress(r.FromAddress) {
		return fmt.Errorf("invalid from_address: %s", r.FromAddress)
	}
	if !domain.ValidAddress(r.ToAddress) {
		return fmt.Errorf("invalid to_address: %s", r.ToAddress)
	}
	return nil
}

// RespondTransferRequestBody represents the recipient's decision on a request
type RespondTransferRequestBody struct {
	Responder    string  `json:"responder"`
	Decision     string  `json:"decision"` // "approve" or "reject"
	ResponseNote *string `json:"response_note,omitempty"`
}

// Validate validates the request body
func (r *RespondTransferRequestBody) Validate() error {
	if !domain.ValidAddress(r.Responder) {
		return fmt.Errorf("invalid responder address: %s", r.Responder)
	}
	if r.Decision != "approve" && r.Decision != "reject" {
		return fmt.Errorf("decision must be either approve or reject, got %q", r.Decision)
	}
	return nil
}

// CancelTransferRequestBody represents the requester's cancellation
type CancelTransferRequestBody struct {
	Requester string `json:"requester"`
}

// Validate validates the request body
func (r *CancelTransferRequestBody) Validate() error {
	if !domain.ValidAddress(r.Requester) {
		return fmt.Errorf("invalid requester address: %s", r.Requester)
	}
	return nil
}

// CreateMilestoneRequest represents the request body for recording a milestone
type CreateMilestoneRequest struct {
	Actor         string     `json:"actor"`
	MilestoneType string     `json:"milestone_type"`
	Description   string     `json:"description"`
	Location      *string    `json:"location,omitempty"`
	Timestamp     *time.Time `json:"timestamp,omitempty"`
}

// Validate validates the request body
func (r *CreateMilestoneRequest) Validate() error {
	if !domain.ValidAddress(r.Actor) {
		return fmt.Errorf("invalid actor address: %s", r.Actor)
	}
	if r.MilestoneType == "" {
		return errors.New("milestone_type is required")
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	return nil
}

// RoleResponse is the view of a role assignment
type RoleResponse struct {
	Address string      `json:"address"`
	Role    domain.Role `json:"role"`
}

// MintResponse is returned after a successful mint
type MintResponse struct {
	TokenID     domain.TokenID `json:"token_id"`
	MetadataRef string         `json:"metadata_ref"`
	Owner       string         `json:"owner"`
}

// TokenResponse is the mirror-backed view of a batch token
type TokenResponse struct {
	TokenID      uint64              `json:"token_id"`
	MetadataRef  string              `json:"metadata_ref"`
	CurrentOwner string              `json:"current_owner"`
	CustodyState domain.CustodyState `json:"custody_state"`
	MintedAt     time.Time           `json:"minted_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// TokenListResponse wraps a list of mirror-backed tokens
type TokenListResponse struct {
	Tokens []TokenResponse `json:"tokens"`
}

// CustodyEventResponse is the view of a mirrored custody event
type CustodyEventResponse struct {
	Sequence     uint64                  `json:"sequence"`
	EventType    domain.CustodyEventType `json:"event_type"`
	TokenID      *uint64                 `json:"token_id,omitempty"`
	MetadataRef  *string                 `json:"metadata_ref,omitempty"`
	FromAddress  *string                 `json:"from_address,omitempty"`
	ToAddress    string                  `json:"to_address"`
	Role         *domain.Role            `json:"role,omitempty"`
	CustodyState *domain.CustodyState    `json:"custody_state,omitempty"`
	Timestamp    time.Time               `json:"timestamp"`
}

// CustodyEventListResponse wraps a token's custody event log
type CustodyEventListResponse struct {
	Events []CustodyEventResponse `json:"events"`
}

// TransferRequestResponse is the view of a transfer request row
type TransferRequestResponse struct {
	ID           string                        `json:"id"`
	TokenID      uint64                        `json:"token_id"`
	FromAddress  string                        `json:"from_address"`
	ToAddress    string                        `json:"to_address"`
	Note         *string                       `json:"note,omitempty"`
	Status       schema.TransferRequestStatus  `json:"status"`
	ResponseNote *string                       `json:"response_note,omitempty"`
	CreatedAt    time.Time                     `json:"created_at"`
	UpdatedAt    time.Time                     `json:"updated_at"`
}

// TransferRequestListResponse wraps a list of transfer requests
type TransferRequestListResponse struct {
	Requests []TransferRequestResponse `json:"requests"`
}

// MilestoneResponse is returned after recording a milestone
type MilestoneResponse struct {
	ID            string    `json:"id"`
	TokenID       uint64    `json:"token_id"`
	MilestoneType string    `json:"milestone_type"`
	Description   string    `json:"description"`
	Location      *string   `json:"location,omitempty"`
	Actor         string    `json:"actor"`
	Timestamp     time.Time `json:"timestamp"`
}

func newTokenResponse(record *schema.TokenRecord) TokenResponse {
	return TokenResponse{
		TokenID:      record.TokenID,
		MetadataRef:  record.MetadataRef,
		CurrentOwner: record.CurrentOwner,
		CustodyState: record.CustodyState,
		MintedAt:     record.MintedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

func newCustodyEventResponse(row *schema.CustodyEvent) CustodyEventResponse {
	return CustodyEventResponse{
		Sequence:     row.Sequence,
		EventType:    row.EventType,
		TokenID:      row.TokenID,
		MetadataRef:  row.MetadataRef,
		FromAddress:  row.FromAddress,
		ToAddress:    row.ToAddress,
		Role:         row.Role,
		CustodyState: row.CustodyState,
		Timestamp:    row.Timestamp,
	}
}

func newTransferRequestResponse(row *schema.TransferRequest) TransferRequestResponse {
	return TransferRequestResponse{
		ID:           row.ID,
		TokenID:      row.TokenID,
		FromAddress:  row.FromAddress,
		ToAddress:    row.ToAddress,
		Note:         row.Note,
		Status:       row.Status,
		ResponseNote: row.ResponseNote,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func newMilestoneResponse(row *schema.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:            row.ID,
		TokenID:       row.TokenID,
		MilestoneType: row.MilestoneType,
		Description:   row.Description,
		Location:      row.Location,
		Actor:         row.Actor,
		Timestamp:     row.Timestamp,
	}
}
