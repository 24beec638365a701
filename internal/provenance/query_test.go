package provenance_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/ledger"
	"github.com/pharmadna/pharma-ledger/internal/logger"
	"github.com/pharmadna/pharma-ledger/internal/mocks"
	"github.com/pharmadna/pharma-ledger/internal/provenance"
	"github.com/pharmadna/pharma-ledger/internal/store/schema"
)

const (
	deployer    = "0x00000000000000000000000000000000000000a0"
	alice       = "0x00000000000000000000000000000000000000a1" // manufacturer
	bob         = "0x00000000000000000000000000000000000000b1" // distributor
	carol       = "0x00000000000000000000000000000000000000c1" // pharmacy
	metadataRef = "sha256:9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
)

func init() {
	_ = logger.Initialize(logger.Config{Debug: true})
}

func addr(s string) string {
	return domain.NormalizeAddress(s)
}

// newTracedToken mints a token and walks it through the full custody chain
func newTracedToken(t *testing.T) (*ledger.Ledger, domain.TokenID) {
	t.Helper()
	ctx := context.Background()

	l := ledger.New(deployer, nil)
	require.NoError(t, l.AssignRole(ctx, deployer, alice, domain.RoleManufacturer))
	require.NoError(t, l.AssignRole(ctx, deployer, bob, domain.RoleDistributor))
	require.NoError(t, l.AssignRole(ctx, deployer, carol, domain.RolePharmacy))

	id, err := l.Mint(ctx, alice, metadataRef)
	require.NoError(t, err)
	require.NoError(t, l.Transfer(ctx, alice, id, bob))
	require.NoError(t, l.Transfer(ctx, bob, id, carol))
	return l, id
}

func TestGetProvenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, id := newTracedToken(t)
	st := mocks.NewMockStore(ctrl)

	location := "Rotterdam DC"
	recorded := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	st.EXPECT().
		ListMilestonesByToken(gomock.Any(), uint64(id)).
		Return([]schema.Milestone{
			{
				ID:            "01JXAYV1T1N8Y1Q0M3H8C4D9ZK",
				TokenID:       uint64(id),
				MilestoneType: "quality_check",
				Description:   "Cold chain verified on arrival",
				Location:      &location,
				Actor:         addr(bob),
				Timestamp:     recorded,
			},
		}, nil)

	svc := provenance.NewService(l, st)
	trace, err := svc.GetProvenance(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, trace.TokenID)
	assert.Equal(t, metadataRef, trace.MetadataRef)
	assert.Equal(t, addr(carol), trace.CurrentOwner)
	assert.Equal(t, domain.CustodyStateAtPharmacy, trace.CurrentState)
	assert.False(t, trace.MintedAt.IsZero())

	require.Len(t, trace.History, 3)
	assert.Equal(t, provenance.Hop{
		Address:      addr(alice),
		Role:         domain.RoleManufacturer,
		CustodyState: domain.CustodyStateMinted,
	}, trace.History[0])
	assert.Equal(t, provenance.Hop{
		Address:      addr(bob),
		Role:         domain.RoleDistributor,
		CustodyState: domain.CustodyStateInTransit,
	}, trace.History[1])
	assert.Equal(t, provenance.Hop{
		Address:      addr(carol),
		Role:         domain.RolePharmacy,
		CustodyState: domain.CustodyStateAtPharmacy,
	}, trace.History[2])

	require.Len(t, trace.Milestones, 1)
	assert.Equal(t, "quality_check", trace.Milestones[0].MilestoneType)
	assert.Equal(t, &location, trace.Milestones[0].Location)
	assert.Equal(t, recorded, trace.Milestones[0].Timestamp)
}

func TestGetProvenanceNoMilestones(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, id := newTracedToken(t)
	st := mocks.NewMockStore(ctrl)
	st.EXPECT().
		ListMilestonesByToken(gomock.Any(), uint64(id)).
		Return(nil, nil)

	svc := provenance.NewService(l, st)
	trace, err := svc.GetProvenance(context.Background(), id)
	require.NoError(t, err)

	assert.Empty(t, trace.Milestones)
	assert.NotNil(t, trace.Milestones)
}

func TestGetProvenanceUnmintedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := ledger.New(deployer, nil)
	st := mocks.NewMockStore(ctrl)

	svc := provenance.NewService(l, st)
	trace, err := svc.GetProvenance(context.Background(), domain.TokenID(42))

	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	assert.Nil(t, trace)
}

func TestGetProvenanceRevokedHolderRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	l, id := newTracedToken(t)

	// Revoking a past holder is reflected in the per-hop role at query time
	require.NoError(t, l.AssignRole(ctx, deployer, bob, domain.RoleNone))

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().
		ListMilestonesByToken(gomock.Any(), uint64(id)).
		Return(nil, nil)

	svc := provenance.NewService(l, st)
	trace, err := svc.GetProvenance(ctx, id)
	require.NoError(t, err)

	require.Len(t, trace.History, 3)
	assert.Equal(t, domain.RoleNone, trace.History[1].Role)
	assert.Equal(t, domain.CustodyStateMinted, trace.History[1].CustodyState)
}

func TestGetProvenanceStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, id := newTracedToken(t)
	st := mocks.NewMockStore(ctrl)
	st.EXPECT().
		ListMilestonesByToken(gomock.Any(), uint64(id)).
		Return(nil, assert.AnError)

	svc := provenance.NewService(l, st)
	trace, err := svc.GetProvenance(context.Background(), id)

	assert.Error(t, err)
	assert.Nil(t, trace)
	assert.Contains(t, err.Error(), "failed to load milestones")
}
