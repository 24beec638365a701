package schema

import (
	"time"
)

// Milestone represents the milestones table - the append-only audit trail of
// handling events recorded against a batch (quality checks, cold-chain readings,
// receipt confirmations). IDs are ULIDs so rows sort by creation time.
type Milestone struct {
	// ID is the milestone identifier (ULID)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TokenID is the batch token the milestone is attached to
	TokenID uint64 `gorm:"column:token_id;not null;index:idx_milestones_token_id"`
	// MilestoneType is a short classifier (e.g. "quality_check", "shipment_received")
	MilestoneType string `gorm:"column:milestone_type;not null;type:text"`
	// Description is the free-form milestone detail
	Description string `gorm:"column:description;not null;type:text"`
	// Location is an optional physical location for the milestone
	Location *string `gorm:"column:location;type:text"`
	// Actor is the address that recorded the milestone
	Actor string `gorm:"column:actor;not null;type:text"`
	// Timestamp is when the milestone occurred
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Milestone model
func (Milestone) TableName() string {
	return "milestones"
}
