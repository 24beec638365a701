package schema

import (
	"time"

	"github.com/pharmadna/pharma-ledger/internal/domain"
)

// CustodyEvent represents the custody_events table - the append-only mirror of
// the ledger event stream. Sequence is the ledger-wide event counter and doubles
// as the idempotency key under redelivery.
type CustodyEvent struct {
	// Sequence is the ledger-assigned event sequence number
	Sequence uint64 `gorm:"column:sequence;primaryKey;autoIncrement:false"`
	// EventType identifies the ledger event (role_changed, minted, transferred)
	EventType domain.CustodyEventType `gorm:"column:event_type;not null;type:text"`
	// TokenID references the batch token this event relates to (nil for role events)
	TokenID *uint64 `gorm:"column:token_id;index:idx_custody_events_token_id"`
	// MetadataRef is the batch metadata reference (mint events only)
	MetadataRef *string `gorm:"column:metadata_ref;type:text"`
	// FromAddress is the custody sender (nil for mint and role events)
	FromAddress *string `gorm:"column:from_address;type:text"`
	// ToAddress is the recipient, holder, or role subject address
	ToAddress string `gorm:"column:to_address;not null;type:text"`
	// Role is the assigned role (role events) or the recipient's role (custody events)
	Role *domain.Role `gorm:"column:role;type:text"`
	// CustodyState is the batch custody state after the event (custody events only)
	CustodyState *domain.CustodyState `gorm:"column:custody_state;type:text"`
	// Timestamp is the ledger timestamp of the event
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was mirrored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CustodyEvent model
func (CustodyEvent) TableName() string {
	return "custody_events"
}
