package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.temporal.io/sdk/client"

	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/ledger"
	"github.com/pharmadna/pharma-ledger/internal/provenance"
	"github.com/pharmadna/pharma-ledger/internal/providers/temporal"
	"github.com/pharmadna/pharma-ledger/internal/store"
	"github.com/pharmadna/pharma-ledger/internal/store/schema"
	"github.com/pharmadna/pharma-ledger/internal/workflows"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetProvenance returns the full public custody trace of a token
	// GET /api/v1/provenance/:token_id
	GetProvenance(c *gin.Context)

	// GetToken retrieves a single mirror-backed token record
	// GET /api/v1/tokens/:token_id
	GetToken(c *gin.Context)

	// ListTokens retrieves the mirror-backed tokens held by an owner
	// GET /api/v1/tokens?owner=<address>
	ListTokens(c *gin.Context)

	// ListTokenEvents retrieves a token's mirrored custody events in sequence order
	// GET /api/v1/tokens/:token_id/events
	ListTokenEvents(c *gin.Context)

	// AssignRole assigns (or revokes, with role "none") a supply chain role
	// POST /api/v1/roles
	AssignRole(c *gin.Context)

	// GetRole returns the role of an address; "none" for unknown addresses
	// GET /api/v1/roles/:address
	GetRole(c *gin.Context)

	// MintToken mints a new batch token bound to a metadata reference
	// POST /api/v1/tokens
	MintToken(c *gin.Context)

	// CreateTransferRequest proposes a custody handoff to a recipient
	// POST /api/v1/requests
	CreateTransferRequest(c *gin.Context)

	// RespondTransferRequest approves or rejects a pending request. Approval
	// runs the transfer saga synchronously and reports its outcome.
	// POST /api/v1/requests/:id/respond
	RespondTransferRequest(c *gin.Context)

	// CancelTransferRequest cancels a pending request, requester only
	// POST /api/v1/requests/:id/cancel
	CancelTransferRequest(c *gin.Context)

	// ListTransferRequests retrieves requests filtered by token, party or status
	// GET /api/v1/requests?token_id=<id>&address=<address>&status=<status>
	ListTransferRequests(c *gin.Context)

	// CreateMilestone records a supply chain milestone for a token
	// POST /api/v1/tokens/:token_id/milestones
	CreateMilestone(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	ledger       *ledger.Ledger
	store        store.Store
	provenance   *provenance.Service
	orchestrator temporal.TemporalOrchestrator
	taskQueue    string
}

// NewHandler creates a new REST API handler
func NewHandler(
	l *ledger.Ledger,
	st store.Store,
	prov *provenance.Service,
	orchestrator temporal.TemporalOrchestrator,
	taskQueue string,
) Handler {
	return &handler{
		ledger:       l,
		store:        st,
		provenance:   prov,
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
	}
}

// parseTokenID parses the token_id path parameter
func parseTokenID(c *gin.Context) (uint64, bool) {
	raw := c.Param("token_id")
	id, err := domain.ParseTokenID(raw)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid token ID: %s", raw))
		return 0, false
	}
	return uint64(id), true
}

// GetProvenance returns the full public custody trace of a token
func (h *handler) GetProvenance(c *gin.Context) {
	id, ok := parseTokenID(c)
	if !ok {
		return
	}

	trace, err := h.provenance.GetProvenance(c.Request.Context(), domain.TokenID(id))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, trace)
}

// GetToken retrieves a single mirror-backed token record
func (h *handler) GetToken(c *gin.Context) {
	id, ok := parseTokenID(c)
	if !ok {
		return
	}

	record, err := h.store.GetTokenRecord(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get token")
		return
	}
	if record == nil {
		respondNotFound(c, "Token not found")
		return
	}

	c.JSON(http.StatusOK, newTokenResponse(record))
}

// ListTokens retrieves the mirror-backed tokens held by an owner
func (h *handler) ListTokens(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		respondBadRequest(c, "owner query parameter is required")
		return
	}
	if !domain.ValidAddress(owner) {
		respondValidationError(c, fmt.Sprintf("invalid owner address: %s", owner))
		return
	}

	records, err := h.store.ListTokenRecordsByOwner(c.Request.Context(), domain.NormalizeAddress(owner))
	if err != nil {
		respondInternalError(c, err, "Failed to list tokens")
		return
	}

	tokens := make([]TokenResponse, 0, len(records))
	for i := range records {
		tokens = append(tokens, newTokenResponse(&records[i]))
	}

	c.JSON(http.StatusOK, TokenListResponse{Tokens: tokens})
}

// ListTokenEvents retrieves the mirrored custody event log for a token
func (h *handler) ListTokenEvents(c *gin.Context) {
	id, ok := parseTokenID(c)
	if !ok {
		return
	}

	rows, err := h.store.GetCustodyEventsByToken(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to list custody events")
		return
	}
	if len(rows) == 0 {
		respondNotFound(c, "Token not found")
		return
	}

	events := make([]CustodyEventResponse, 0, len(rows))
	for i := range rows {
		events = append(events, newCustodyEventResponse(&rows[i]))
	}

	c.JSON(http.StatusOK, CustodyEventListResponse{Events: events})
}

// AssignRole assigns or revokes a supply chain role
func (h *handler) AssignRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.ledger.AssignRole(c.Request.Context(), req.Caller, req.Address, domain.Role(req.Role)); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, RoleResponse{
		Address: domain.NormalizeAddress(req.Address),
		Role:    domain.Role(req.Role),
	})
}

// GetRole returns the role of an address
func (h *handler) GetRole(c *gin.Context) {
	address := c.Param("address")
	if !domain.ValidAddress(address) {
		respondValidationError(c, fmt.Sprintf("invalid address: %s", address))
		return
	}

	c.JSON(http.StatusOK, RoleResponse{
		Address: domain.NormalizeAddress(address),
		Role:    h.ledger.GetRole(address),
	})
}

// MintToken mints a new batch token
func (h *handler) MintToken(c *gin.Context) {
	var req MintTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	id, err := h.ledger.Mint(c.Request.Context(), req.Caller, req.MetadataRef)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MintResponse{
		TokenID:     id,
		MetadataRef: req.MetadataRef,
		Owner:       domain.NormalizeAddress(req.Caller),
	})
}

// CreateTransferRequest proposes a custody handoff. The proposer must be the
// current on-chain owner of the token; the ledger is consulted directly, not
// the mirror.
func (h *handler) CreateTransferRequest(c *gin.Context) {
	var req CreateTransferRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	owner, err := h.ledger.OwnerOf(domain.TokenID(*req.TokenID))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if domain.NormalizeAddress(req.FromAddress) != owner {
		respondDomainError(c, domain.ErrNotOwner)
		return
	}

	row, err := h.store.CreateTransferRequest(c.Request.Context(), store.CreateTransferRequestInput{
		TokenID:     *req.TokenID,
		FromAddress: domain.NormalizeAddress(req.FromAddress),
		ToAddress:   domain.NormalizeAddress(req.ToAddress),
		Note:        req.Note,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTransferRequestResponse(row))
}

// RespondTransferRequest approves or rejects a pending transfer request
func (h *handler) RespondTransferRequest(c *gin.Context) {
	requestID := c.Param("id")
	if requestID == "" {
		respondBadRequest(c, "request id is required")
		return
	}

	var req RespondTransferRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	row, err := h.store.GetTransferRequest(c.Request.Context(), requestID)
	if err != nil {
		respondInternalError(c, err, "Failed to get transfer request")
		return
	}
	if row == nil {
		respondNotFound(c, "Transfer request not found")
		return
	}

	// Only the proposed recipient may answer
	if domain.NormalizeAddress(req.Responder) != row.ToAddress {
		respondDomainError(c, domain.ErrNotAuthorized)
		return
	}

	if req.Decision == "reject" {
		err := h.store.UpdateTransferRequestStatus(c.Request.Context(), requestID,
			schema.TransferRequestStatusPending, schema.TransferRequestStatusRejected, req.ResponseNote)
		if err != nil {
			respondDomainError(c, err)
			return
		}
	} else {
		if err := h.approveTransfer(c, row, req.ResponseNote); err != nil {
			respondDomainError(c, err)
			return
		}
	}

	updated, err := h.store.GetTransferRequest(c.Request.Context(), requestID)
	if err != nil || updated == nil {
		respondInternalError(c, err, "Failed to reload transfer request")
		return
	}

	c.JSON(http.StatusOK, newTransferRequestResponse(updated))
}

// approveTransfer runs the transfer approval saga synchronously and maps its
// failure back onto the custody error taxonomy
func (h *handler) approveTransfer(c *gin.Context, row *schema.TransferRequest, responseNote *string) error {
	input := workflows.ApproveTransferInput{
		RequestID:    row.ID,
		TokenID:      row.TokenID,
		FromAddress:  row.FromAddress,
		ToAddress:    row.ToAddress,
		ResponseNote: responseNote,
	}

	w := workflows.NewHandoffWorker(nil)
	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("approve-transfer-%s", row.ID),
		TaskQueue:                h.taskQueue,
		WorkflowExecutionTimeout: 5 * time.Minute,
	}

	run, err := h.orchestrator.ExecuteWorkflow(c.Request.Context(), options, w.ApproveTransfer, input)
	if err != nil {
		return fmt.Errorf("failed to start transfer approval: %w", err)
	}

	if err := run.Get(c.Request.Context(), nil); err != nil {
		return workflows.DomainError(err)
	}

	return nil
}

// CancelTransferRequest cancels a pending request
func (h *handler) CancelTransferRequest(c *gin.Context) {
	requestID := c.Param("id")
	if requestID == "" {
		respondBadRequest(c, "request id is required")
		return
	}

	var req CancelTransferRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	row, err := h.store.GetTransferRequest(c.Request.Context(), requestID)
	if err != nil {
		respondInternalError(c, err, "Failed to get transfer request")
		return
	}
	if row == nil {
		respondNotFound(c, "Transfer request not found")
		return
	}

	// Only the original proposer may cancel
	if domain.NormalizeAddress(req.Requester) != row.FromAddress {
		respondDomainError(c, domain.ErrNotAuthorized)
		return
	}

	err = h.store.UpdateTransferRequestStatus(c.Request.Context(), requestID,
		schema.TransferRequestStatusPending, schema.TransferRequestStatusCancelled, nil)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	updated, err := h.store.GetTransferRequest(c.Request.Context(), requestID)
	if err != nil || updated == nil {
		respondInternalError(c, err, "Failed to reload transfer request")
		return
	}

	c.JSON(http.StatusOK, newTransferRequestResponse(updated))
}

// ListTransferRequests retrieves requests filtered by token, party or status
func (h *handler) ListTransferRequests(c *gin.Context) {
	filter := store.TransferRequestFilter{}

	if raw := c.Query("token_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, fmt.Sprintf("Invalid token ID: %s", raw))
			return
		}
		filter.TokenID = &id
	}

	if address := c.Query("address"); address != "" {
		if !domain.ValidAddress(address) {
			respondValidationError(c, fmt.Sprintf("invalid address: %s", address))
			return
		}
		filter.Address = domain.NormalizeAddress(address)
	}

	if status := c.Query("status"); status != "" {
		filter.Status = schema.TransferRequestStatus(status)
	}

	rows, err := h.store.ListTransferRequests(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list transfer requests")
		return
	}

	requests := make([]TransferRequestResponse, 0, len(rows))
	for i := range rows {
		requests = append(requests, newTransferRequestResponse(&rows[i]))
	}

	c.JSON(http.StatusOK, TransferRequestListResponse{Requests: requests})
}

// CreateMilestone records a supply chain milestone for a token. The actor
// must hold a role and the token must exist on the ledger.
func (h *handler) CreateMilestone(c *gin.Context) {
	id, ok := parseTokenID(c)
	if !ok {
		return
	}

	var req CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if _, err := h.ledger.OwnerOf(domain.TokenID(id)); err != nil {
		respondDomainError(c, err)
		return
	}
	if h.ledger.GetRole(req.Actor) == domain.RoleNone {
		respondDomainError(c, domain.ErrNotAuthorized)
		return
	}

	input := store.CreateMilestoneInput{
		TokenID:       id,
		MilestoneType: req.MilestoneType,
		Description:   req.Description,
		Location:      req.Location,
		Actor:         domain.NormalizeAddress(req.Actor),
	}
	if req.Timestamp != nil {
		input.Timestamp = *req.Timestamp
	}

	row, err := h.store.CreateMilestone(c.Request.Context(), input)
	if err != nil {
		respondInternalError(c, err, "Failed to create milestone")
		return
	}

	c.JSON(http.StatusCreated, newMilestoneResponse(row))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "pharma-ledger-api",
	})
}
