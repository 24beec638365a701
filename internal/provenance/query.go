package provenance

import (
	"context"
	"fmt"
	"time"

	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/ledger"
	"github.com/pharmadna/pharma-ledger/internal/store"
)

// Hop is one custody handoff in a token's history, oldest first
type Hop struct {
	Address      string              `json:"address"`
	Role         domain.Role         `json:"role"`
	CustodyState domain.CustodyState `json:"custody_state"`
}

// Milestone is a recorded supply chain milestone attached to a token
type Milestone struct {
	ID            string    `json:"id"`
	MilestoneType string    `json:"milestone_type"`
	Description   string    `json:"description"`
	Location      *string   `json:"location,omitempty"`
	Actor         string    `json:"actor"`
	Timestamp     time.Time `json:"timestamp"`
}

// Provenance is the full public trace of a batch token
type Provenance struct {
	TokenID      domain.TokenID      `json:"token_id"`
	MetadataRef  string              `json:"metadata_ref"`
	CurrentOwner string              `json:"current_owner"`
	CurrentState domain.CustodyState `json:"current_state"`
	MintedAt     time.Time           `json:"minted_at"`
	History      []Hop               `json:"history"`
	Milestones   []Milestone         `json:"milestones"`
}

// Service assembles provenance traces from the ledger and the milestone store
type Service struct {
	ledger *ledger.Ledger
	store  store.Store
}

// NewService creates a provenance query service
func NewService(l *ledger.Ledger, st store.Store) *Service {
	return &Service{ledger: l, store: st}
}

// GetProvenance composes the custody history, per-hop roles and custody
// states, and milestones of a token. Roles are resolved at query time, so a
// hop whose holder was since revoked reports the revoked role. Returns
// domain.ErrTokenNotFound for unminted tokens.
func (s *Service) GetProvenance(ctx context.Context, tokenID domain.TokenID) (*Provenance, error) {
	info, err := s.ledger.Token(tokenID)
	if err != nil {
		return nil, err
	}

	history := make([]Hop, 0, len(info.History))
	for _, address := range info.History {
		role := s.ledger.GetRole(address)
		history = append(history, Hop{
			Address:      address,
			Role:         role,
			CustodyState: domain.CustodyStateForRole(role),
		})
	}

	records, err := s.store.ListMilestonesByToken(ctx, uint64(tokenID))
	if err != nil {
		return nil, fmt.Errorf("failed to load milestones: %w", err)
	}

	milestones := make([]Milestone, 0, len(records))
	for _, record := range records {
		milestones = append(milestones, Milestone{
			ID:            record.ID,
			MilestoneType: record.MilestoneType,
			Description:   record.Description,
			Location:      record.Location,
			Actor:         record.Actor,
			Timestamp:     record.Timestamp,
		})
	}

	return &Provenance{
		TokenID:      info.ID,
		MetadataRef:  info.MetadataRef,
		CurrentOwner: info.CurrentOwner,
		CurrentState: domain.CustodyStateForRole(s.ledger.GetRole(info.CurrentOwner)),
		MintedAt:     info.MintedAt,
		History:      history,
		Milestones:   milestones,
	}, nil
}
