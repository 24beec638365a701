package schema

import (
	"time"

	"github.com/pharmadna/pharma-ledger/internal/domain"
)

// AccountRole represents the account_roles table - the read mirror of the
// ledger role registry, maintained by the event bridge
type AccountRole struct {
	// Address is the checksummed account address
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Role is the supply-chain role currently assigned to the address
	Role domain.Role `gorm:"column:role;not null;type:text"`
	// Sequence is the ledger event sequence this row was last updated from
	Sequence uint64 `gorm:"column:sequence;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AccountRole model
func (AccountRole) TableName() string {
	return "account_roles"
}
