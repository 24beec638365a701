package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Role represents the supply-chain role assigned to an account address.
type Role string

const (
	RoleNone         Role = "none"
	RoleManufacturer Role = "manufacturer"
	RoleDistributor  Role = "distributor"
	RolePharmacy     Role = "pharmacy"
	RoleAdmin        Role = "admin"
)

// Valid checks if a role is a known enum value
func (r Role) Valid() bool {
	switch r {
	case RoleNone, RoleManufacturer, RoleDistributor, RolePharmacy, RoleAdmin:
		return true
	}
	return false
}

// custodySuccessor is the custody chain transition table. A batch only moves
// forward through the chain; extending the chain (e.g. a secondary
// distributor) is a table edit, not a code change.
var custodySuccessor = map[Role]Role{
	RoleManufacturer: RoleDistributor,
	RoleDistributor:  RolePharmacy,
}

// Successor returns the role a holder with role r may transfer custody to.
// The second return value is false when r has no successor (terminal or
// non-custodial role).
func (r Role) Successor() (Role, bool) {
	next, ok := custodySuccessor[r]
	return next, ok
}

// CustodyState represents the position of a batch in the custody chain,
// derived from the current holder's role.
type CustodyState string

const (
	CustodyStateMinted     CustodyState = "minted"
	CustodyStateInTransit  CustodyState = "in_transit"
	CustodyStateAtPharmacy CustodyState = "at_pharmacy"
)

// CustodyStateForRole derives the custody state from the holder's role.
func CustodyStateForRole(holder Role) CustodyState {
	switch holder {
	case RoleDistributor:
		return CustodyStateInTransit
	case RolePharmacy:
		return CustodyStateAtPharmacy
	default:
		return CustodyStateMinted
	}
}

// TokenID is the sequential identifier the ledger assigns at mint time.
type TokenID uint64

// String returns the decimal representation of the TokenID
func (t TokenID) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// ParseTokenID parses a decimal token ID string
func ParseTokenID(s string) (TokenID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token id %q", s)
	}
	return TokenID(n), nil
}

// ValidAddress checks if an account address is a well-formed hex address
func ValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// NormalizeAddress normalizes an account address to its checksummed form.
// Role and ownership lookups always operate on normalized addresses.
func NormalizeAddress(address string) string {
	if !common.IsHexAddress(address) {
		return address
	}
	return common.HexToAddress(address).Hex()
}

// SameAddress compares two addresses ignoring checksum casing
func SameAddress(a, b string) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}

// CustodyEventType represents the type of ledger event
type CustodyEventType string

const (
	CustodyEventTypeRoleChanged CustodyEventType = "role_changed"
	CustodyEventTypeMinted      CustodyEventType = "minted"
	CustodyEventTypeTransferred CustodyEventType = "transferred"
)

// CustodyEvent represents a normalized ledger event.
// This is the standard format published to NATS and consumed by the mirror
// bridge. Sequence is the ledger-wide event counter; consumers use it for
// ordering and idempotent replay.
type CustodyEvent struct {
	Sequence     uint64           `json:"sequence"`
	EventType    CustodyEventType `json:"event_type"`
	TokenID      *TokenID         `json:"token_id,omitempty"`
	MetadataRef  string           `json:"metadata_ref,omitempty"`
	FromAddress  *string          `json:"from_address,omitempty"`
	ToAddress    string           `json:"to_address"`
	Role         Role             `json:"role,omitempty"`
	CustodyState CustodyState     `json:"custody_state,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
}

// Valid checks if a custody event is well-formed for its event type
func (e *CustodyEvent) Valid() bool {
	if e.ToAddress == "" || !ValidAddress(e.ToAddress) {
		return false
	}

	switch e.EventType {
	case CustodyEventTypeRoleChanged:
		return e.Role.Valid()
	case CustodyEventTypeMinted:
		return e.TokenID != nil && e.MetadataRef != ""
	case CustodyEventTypeTransferred:
		return e.TokenID != nil && e.FromAddress != nil && ValidAddress(*e.FromAddress)
	default:
		return false
	}
}
