package schema

import (
	"time"

	"github.com/pharmadna/pharma-ledger/internal/domain"
)

// TokenRecord represents the token_records table - the read mirror of minted
// batch tokens. The ledger assigns token IDs sequentially, so the primary key
// is never auto-incremented here.
type TokenRecord struct {
	// TokenID is the ledger-assigned token identifier
	TokenID uint64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// MetadataRef is the content-addressed reference to the batch metadata document
	MetadataRef string `gorm:"column:metadata_ref;not null;type:text"`
	// CurrentOwner is the address currently holding custody of the batch
	CurrentOwner string `gorm:"column:current_owner;not null;type:text;index:idx_token_records_current_owner"`
	// CustodyState is the batch position in the custody chain (minted, in_transit, at_pharmacy)
	CustodyState domain.CustodyState `gorm:"column:custody_state;not null;type:text"`
	// Sequence is the ledger event sequence this row was last updated from
	Sequence uint64 `gorm:"column:sequence;not null"`
	// MintedAt is the ledger timestamp of the mint event
	MintedAt time.Time `gorm:"column:minted_at;not null;type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	CustodyEvents []CustodyEvent `gorm:"foreignKey:TokenID;references:TokenID"`
	Milestones    []Milestone    `gorm:"foreignKey:TokenID;references:TokenID"`
}

// TableName specifies the table name for the TokenRecord model
func (TokenRecord) TableName() string {
	return "token_records"
}
