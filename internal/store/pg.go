package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero-valued settings fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// ApplyCustodyEvent applies a ledger event to the mirror tables in a single
// transaction. The event row keyed by sequence is the idempotency guard: if it
// already exists, the whole event is treated as applied and skipped.
func (s *pgStore) ApplyCustodyEvent(ctx context.Context, event *domain.CustodyEvent) error {
	if !event.Valid() {
		return fmt.Errorf("refusing to mirror malformed %s event at sequence %d", event.EventType, event.Sequence)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := schema.CustodyEvent{
			Sequence:  event.Sequence,
			EventType: event.EventType,
			ToAddress: event.ToAddress,
			Timestamp: event.Timestamp,
		}
		if event.TokenID != nil {
			tokenID := uint64(*event.TokenID)
			row.TokenID = &tokenID
		}
		if event.MetadataRef != "" {
			ref := event.MetadataRef
			row.MetadataRef = &ref
		}
		if event.FromAddress != nil {
			from := *event.FromAddress
			row.FromAddress = &from
		}
		if event.Role != "" {
			role := event.Role
			row.Role = &role
		}
		if event.CustodyState != "" {
			state := event.CustodyState
			row.CustodyState = &state
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sequence"}},
			DoNothing: true,
		}).Create(&row)
		if result.Error != nil {
			return fmt.Errorf("failed to create custody event: %w", result.Error)
		}

		// Already mirrored, expected under redelivery
		if result.RowsAffected == 0 {
			return nil
		}

		switch event.EventType {
		case domain.CustodyEventTypeRoleChanged:
			accountRole := schema.AccountRole{
				Address:   event.ToAddress,
				Role:      event.Role,
				Sequence:  event.Sequence,
				UpdatedAt: event.Timestamp,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "address"}},
				DoUpdates: clause.AssignmentColumns([]string{"role", "sequence", "updated_at"}),
				Where: clause.Where{Exprs: []clause.Expression{
					gorm.Expr("account_roles.sequence <= excluded.sequence"),
				}},
			}).Create(&accountRole).Error; err != nil {
				return fmt.Errorf("failed to upsert account role: %w", err)
			}

		case domain.CustodyEventTypeMinted, domain.CustodyEventTypeTransferred:
			if err := refreshTokenRecord(tx, uint64(*event.TokenID)); err != nil {
				return err
			}
		}

		return nil
	})
}

// refreshTokenRecord rebuilds a token's mirror row from its mirrored events.
// Deliveries run on a concurrent worker pool and the broker redelivers Nak'd
// messages, so events for one token can be applied in any order; deriving the
// row from the event log makes the mirror converge regardless. The sequence
// guard on the upsert keeps a racing older projection from clobbering a newer
// one.
func refreshTokenRecord(tx *gorm.DB, tokenID uint64) error {
	var latest schema.CustodyEvent
	if err := tx.Where("token_id = ?", tokenID).
		Order("sequence DESC").
		First(&latest).Error; err != nil {
		return fmt.Errorf("failed to load latest custody event: %w", err)
	}

	record := schema.TokenRecord{
		TokenID:      tokenID,
		CurrentOwner: latest.ToAddress,
		Sequence:     latest.Sequence,
		MintedAt:     latest.Timestamp,
		UpdatedAt:    latest.Timestamp,
	}
	if latest.CustodyState != nil {
		record.CustodyState = *latest.CustodyState
	}

	// The mint event carries the metadata binding. If it has not been
	// mirrored yet the row keeps placeholders; processing the mint refreshes
	// the projection again.
	var minted schema.CustodyEvent
	err := tx.Where("token_id = ? AND event_type = ?", tokenID, domain.CustodyEventTypeMinted).
		First(&minted).Error
	switch {
	case err == nil:
		if minted.MetadataRef != nil {
			record.MetadataRef = *minted.MetadataRef
		}
		record.MintedAt = minted.Timestamp
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return fmt.Errorf("failed to load mint event: %w", err)
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "token_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"metadata_ref", "current_owner", "custody_state", "sequence", "minted_at", "updated_at",
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("token_records.sequence <= excluded.sequence"),
		}},
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to upsert token record: %w", err)
	}

	return nil
}

// GetTokenRecord retrieves a mirrored token record by token ID
func (s *pgStore) GetTokenRecord(ctx context.Context, tokenID uint64) (*schema.TokenRecord, error) {
	var record schema.TokenRecord
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token record: %w", err)
	}
	return &record, nil
}

// ListTokenRecordsByOwner retrieves the mirrored tokens held by an address
func (s *pgStore) ListTokenRecordsByOwner(ctx context.Context, owner string) ([]schema.TokenRecord, error) {
	var records []schema.TokenRecord
	err := s.db.WithContext(ctx).
		Where("current_owner = ?", owner).
		Order("token_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list token records: %w", err)
	}
	return records, nil
}

// GetAccountRole retrieves a mirrored role assignment by address
func (s *pgStore) GetAccountRole(ctx context.Context, address string) (*schema.AccountRole, error) {
	var role schema.AccountRole
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account role: %w", err)
	}
	return &role, nil
}

// GetCustodyEventsByToken retrieves a token's mirrored events ordered by sequence
func (s *pgStore) GetCustodyEventsByToken(ctx context.Context, tokenID uint64) ([]schema.CustodyEvent, error) {
	var events []schema.CustodyEvent
	err := s.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		Order("sequence ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list custody events: %w", err)
	}
	return events, nil
}

// CreateTransferRequest inserts a pending transfer request. The partial unique
// index on (token_id, to_address) WHERE status = 'pending' makes the
// at-most-one-pending rule atomic: a concurrent duplicate hits ON CONFLICT DO
// NOTHING and is reported as a conflict.
func (s *pgStore) CreateTransferRequest(ctx context.Context, input CreateTransferRequestInput) (*schema.TransferRequest, error) {
	request := schema.TransferRequest{
		ID:          uuid.NewString(),
		TokenID:     input.TokenID,
		FromAddress: input.FromAddress,
		ToAddress:   input.ToAddress,
		Note:        input.Note,
		Status:      schema.TransferRequestStatusPending,
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "token_id"}, {Name: "to_address"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Name: "status"}, Value: string(schema.TransferRequestStatusPending)},
		}},
		DoNothing: true,
	}).Create(&request)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create transfer request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrRequestConflict
	}

	return &request, nil
}

// GetTransferRequest retrieves a transfer request by ID
func (s *pgStore) GetTransferRequest(ctx context.Context, id string) (*schema.TransferRequest, error) {
	var request schema.TransferRequest
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transfer request: %w", err)
	}
	return &request, nil
}

// ListTransferRequests retrieves transfer requests matching the filter, newest first
func (s *pgStore) ListTransferRequests(ctx context.Context, filter TransferRequestFilter) ([]schema.TransferRequest, error) {
	query := s.db.WithContext(ctx).Model(&schema.TransferRequest{})
	if filter.TokenID != nil {
		query = query.Where("token_id = ?", *filter.TokenID)
	}
	if filter.Address != "" {
		query = query.Where("from_address = ? OR to_address = ?", filter.Address, filter.Address)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var requests []schema.TransferRequest
	if err := query.Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list transfer requests: %w", err)
	}
	return requests, nil
}

// UpdateTransferRequestStatus transitions a request between statuses with a
// compare-and-set update. Of two racing transitions from the same status,
// exactly one matches the WHERE clause; the loser is told the request moved on.
func (s *pgStore) UpdateTransferRequestStatus(ctx context.Context, id string, from, to schema.TransferRequestStatus, responseNote *string) error {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now().UTC(),
	}
	if responseNote != nil {
		updates["response_note"] = *responseNote
	}

	result := s.db.WithContext(ctx).Model(&schema.TransferRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update transfer request: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Distinguish a missing request from a lost race
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.TransferRequest{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check transfer request: %w", err)
	}
	if count == 0 {
		return domain.ErrRequestNotFound
	}
	return domain.ErrRequestConflict
}

// CreateMilestone appends a milestone record for a token
func (s *pgStore) CreateMilestone(ctx context.Context, input CreateMilestoneInput) (*schema.Milestone, error) {
	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	milestone := schema.Milestone{
		ID:            ulid.Make().String(),
		TokenID:       input.TokenID,
		MilestoneType: input.MilestoneType,
		Description:   input.Description,
		Location:      input.Location,
		Actor:         input.Actor,
		Timestamp:     timestamp,
	}

	if err := s.db.WithContext(ctx).Create(&milestone).Error; err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}
	return &milestone, nil
}

// ListMilestonesByToken retrieves a token's milestones ordered by timestamp
func (s *pgStore) ListMilestonesByToken(ctx context.Context, tokenID uint64) ([]schema.Milestone, error) {
	var milestones []schema.Milestone
	err := s.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		Order("timestamp ASC, id ASC").
		Find(&milestones).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	return milestones, nil
}
