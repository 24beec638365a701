// Package ledger implements the product-custody contract: a role registry and
// an append-only non-fungible token ledger with a role-gated transfer state
// machine. Every call executes atomically and serially under a single writer
// lock, mirroring the execution model of the chain contract it stands in for.
// The ledger is the source of truth for roles and ownership; the relational
// mirror kept by the event bridge is a read cache only.
package ledger

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/logger"
	"github.com/pharmadna/pharma-ledger/internal/messaging"
	"github.com/pharmadna/pharma-ledger/internal/metadata"
)

// TokenInfo is a read-only snapshot of a minted token
type TokenInfo struct {
	ID           domain.TokenID
	MetadataRef  string
	CurrentOwner string
	MintedAt     time.Time
	// History is the full custody chain, oldest first. The first entry is
	// always the minting manufacturer and the last always equals CurrentOwner.
	History []string
}

type token struct {
	metadataRef string
	mintedAt    time.Time
	history     []string
}

func (t *token) owner() string {
	return t.history[len(t.history)-1]
}

// Ledger is the in-process custody contract
type Ledger struct {
	mu sync.Mutex

	deployer string
	hasAdmin bool
	roles    map[string]domain.Role
	tokens   []*token

	sequence  uint64
	publisher messaging.Publisher
	now       func() time.Time
}

// New creates a ledger owned by the deployer address. The deployer may assign
// roles until the first Admin exists; after that only Admins may. Publisher
// may be nil when event fan-out is not wired (tests).
func New(deployer string, publisher messaging.Publisher) *Ledger {
	return &Ledger{
		deployer:  domain.NormalizeAddress(deployer),
		roles:     make(map[string]domain.Role),
		publisher: publisher,
		now:       time.Now,
	}
}

// AssignRole sets or overwrites the role of an address. Assigning RoleNone
// revokes. Only an Admin may call; the deployer is allowed until the first
// Admin is assigned.
func (l *Ledger) AssignRole(ctx context.Context, caller, address string, role domain.Role) error {
	if !domain.ValidAddress(address) {
		return domain.ErrInvalidAddress
	}
	if !role.Valid() {
		return domain.ErrInvalidRole
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.isAdminLocked(caller) {
		return domain.ErrNotAuthorized
	}

	address = domain.NormalizeAddress(address)
	if role == domain.RoleNone {
		delete(l.roles, address)
	} else {
		l.roles[address] = role
	}
	if role == domain.RoleAdmin {
		l.hasAdmin = true
	}

	l.emitLocked(ctx, &domain.CustodyEvent{
		EventType: domain.CustodyEventTypeRoleChanged,
		ToAddress: address,
		Role:      role,
		Timestamp: l.now(),
	})

	return nil
}

// GetRole returns the role of an address; RoleNone for unknown addresses.
// Never fails.
func (l *Ledger) GetRole(address string) domain.Role {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.roleLocked(address)
}

// Mint creates a new token bound permanently to the metadata reference and
// returns its sequential ID. The caller must hold the Manufacturer role at
// execution time.
func (l *Ledger) Mint(ctx context.Context, caller, metadataRef string) (domain.TokenID, error) {
	if metadataRef == "" {
		return 0, domain.ErrEmptyMetadataReference
	}
	if !metadata.ValidReference(metadataRef) {
		return 0, domain.ErrInvalidMetadataReference
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Role is re-read at execution time: a manufacturer revoked mid-flight
	// cannot complete a mint submitted earlier.
	if l.roleLocked(caller) != domain.RoleManufacturer {
		return 0, domain.ErrNotAuthorized
	}

	caller = domain.NormalizeAddress(caller)
	id := domain.TokenID(len(l.tokens))
	l.tokens = append(l.tokens, &token{
		metadataRef: metadataRef,
		mintedAt:    l.now(),
		history:     []string{caller},
	})

	l.emitLocked(ctx, &domain.CustodyEvent{
		EventType:    domain.CustodyEventTypeMinted,
		TokenID:      &id,
		MetadataRef:  metadataRef,
		ToAddress:    caller,
		Role:         domain.RoleManufacturer,
		CustodyState: domain.CustodyStateMinted,
		Timestamp:    l.now(),
	})

	return id, nil
}

// Transfer moves custody of a token from the caller to the recipient. The
// caller must be the current owner and the recipient's role must be the
// custody successor of the caller's role.
func (l *Ledger) Transfer(ctx context.Context, caller string, tokenID domain.TokenID, to string) error {
	if !domain.ValidAddress(to) {
		return domain.ErrInvalidAddress
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tok, err := l.tokenLocked(tokenID)
	if err != nil {
		return err
	}

	caller = domain.NormalizeAddress(caller)
	if tok.owner() != caller {
		return domain.ErrNotOwner
	}

	successor, ok := l.roleLocked(caller).Successor()
	if !ok {
		return domain.ErrInvalidRoleTransition
	}
	toRole := l.roleLocked(to)
	if toRole != successor {
		return domain.ErrInvalidRoleTransition
	}

	to = domain.NormalizeAddress(to)
	from := tok.owner()
	tok.history = append(tok.history, to)

	l.emitLocked(ctx, &domain.CustodyEvent{
		EventType:    domain.CustodyEventTypeTransferred,
		TokenID:      &tokenID,
		FromAddress:  &from,
		ToAddress:    to,
		Role:         toRole,
		CustodyState: domain.CustodyStateForRole(toRole),
		Timestamp:    l.now(),
	})

	return nil
}

// OwnerOf returns the current owner of a token
func (l *Ledger) OwnerOf(tokenID domain.TokenID) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tok, err := l.tokenLocked(tokenID)
	if err != nil {
		return "", err
	}
	return tok.owner(), nil
}

// HistoryOf returns the full custody history of a token, oldest first
func (l *Ledger) HistoryOf(tokenID domain.TokenID) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tok, err := l.tokenLocked(tokenID)
	if err != nil {
		return nil, err
	}

	history := make([]string, len(tok.history))
	copy(history, tok.history)
	return history, nil
}

// Token returns a read-only snapshot of a minted token
func (l *Ledger) Token(tokenID domain.TokenID) (*TokenInfo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tok, err := l.tokenLocked(tokenID)
	if err != nil {
		return nil, err
	}

	history := make([]string, len(tok.history))
	copy(history, tok.history)

	return &TokenInfo{
		ID:           tokenID,
		MetadataRef:  tok.metadataRef,
		CurrentOwner: tok.owner(),
		MintedAt:     tok.mintedAt,
		History:      history,
	}, nil
}

// TokenCount returns the number of minted tokens
func (l *Ledger) TokenCount() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint64(len(l.tokens))
}

func (l *Ledger) tokenLocked(tokenID domain.TokenID) (*token, error) {
	if uint64(tokenID) >= uint64(len(l.tokens)) {
		return nil, domain.ErrTokenNotFound
	}
	return l.tokens[tokenID], nil
}

func (l *Ledger) roleLocked(address string) domain.Role {
	role, ok := l.roles[domain.NormalizeAddress(address)]
	if !ok {
		return domain.RoleNone
	}
	return role
}

func (l *Ledger) isAdminLocked(caller string) bool {
	if l.roleLocked(caller) == domain.RoleAdmin {
		return true
	}
	// Bootstrap: the deployer administers the registry until the first Admin
	// is assigned.
	return !l.hasAdmin && domain.NormalizeAddress(caller) == l.deployer
}

// emitLocked publishes a custody event. Fan-out is best effort: the ledger
// mutation has already committed, so a broker failure is logged and the
// mirror catches up on the next replay rather than failing the call.
func (l *Ledger) emitLocked(ctx context.Context, event *domain.CustodyEvent) {
	l.sequence++
	event.Sequence = l.sequence

	if l.publisher == nil {
		return
	}
	if err := l.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("event_type", string(event.EventType)),
			zap.Uint64("sequence", event.Sequence),
		)
	}
}
