package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/ledger"
	"github.com/pharmadna/pharma-ledger/internal/mocks"
	"github.com/pharmadna/pharma-ledger/internal/store/schema"
	"github.com/pharmadna/pharma-ledger/internal/workflows"
)

const (
	execDeployer     = "0x00000000000000000000000000000000000000d0"
	execManufacturer = "0x00000000000000000000000000000000000000a1"
	execDistributor  = "0x00000000000000000000000000000000000000b2"
	execPharmacy     = "0x00000000000000000000000000000000000000c3"

	execMetadataRef = "sha256:9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
	execRequestID   = "3f1f9a66-8f63-4e0e-9b6e-0f6a1c3d2b4a"
)

func newExecutorLedger(t *testing.T) (*ledger.Ledger, domain.TokenID) {
	t.Helper()
	ctx := context.Background()

	l := ledger.New(execDeployer, nil)
	require.NoError(t, l.AssignRole(ctx, execDeployer, execManufacturer, domain.RoleManufacturer))
	require.NoError(t, l.AssignRole(ctx, execDeployer, execDistributor, domain.RoleDistributor))
	require.NoError(t, l.AssignRole(ctx, execDeployer, execPharmacy, domain.RolePharmacy))

	tokenID, err := l.Mint(ctx, execManufacturer, execMetadataRef)
	require.NoError(t, err)

	return l, tokenID
}

func applicationErrorType(t *testing.T, err error) string {
	t.Helper()
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	return appErr.Type()
}

func TestExecutorCustodyTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, tokenID := newExecutorLedger(t)
	executor := workflows.NewExecutor(mocks.NewMockStore(ctrl), ledger.NewClient(l, ledger.ClientConfig{}))

	err := executor.ExecuteCustodyTransfer(context.Background(), workflows.ApproveTransferInput{
		RequestID:   execRequestID,
		TokenID:     uint64(tokenID),
		FromAddress: execManufacturer,
		ToAddress:   execDistributor,
	})
	require.NoError(t, err)

	owner, err := l.OwnerOf(tokenID)
	require.NoError(t, err)
	assert.Equal(t, domain.NormalizeAddress(execDistributor), owner)
}

func TestExecutorCustodyTransferNotOwnerIsTyped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, tokenID := newExecutorLedger(t)
	executor := workflows.NewExecutor(mocks.NewMockStore(ctrl), ledger.NewClient(l, ledger.ClientConfig{}))

	err := executor.ExecuteCustodyTransfer(context.Background(), workflows.ApproveTransferInput{
		RequestID:   execRequestID,
		TokenID:     uint64(tokenID),
		FromAddress: execDistributor,
		ToAddress:   execPharmacy,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	assert.Equal(t, "NotOwner", applicationErrorType(t, err))
}

func TestExecutorCustodyTransferSkipRoleIsTyped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, tokenID := newExecutorLedger(t)
	executor := workflows.NewExecutor(mocks.NewMockStore(ctrl), ledger.NewClient(l, ledger.ClientConfig{}))

	err := executor.ExecuteCustodyTransfer(context.Background(), workflows.ApproveTransferInput{
		RequestID:   execRequestID,
		TokenID:     uint64(tokenID),
		FromAddress: execManufacturer,
		ToAddress:   execPharmacy,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRoleTransition)
	assert.Equal(t, "InvalidRoleTransition", applicationErrorType(t, err))
}

func TestExecutorMarkRequestApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	l, _ := newExecutorLedger(t)
	executor := workflows.NewExecutor(store, ledger.NewClient(l, ledger.ClientConfig{}))
	note := "approved"

	store.EXPECT().
		UpdateTransferRequestStatus(gomock.Any(), execRequestID,
			schema.TransferRequestStatusPending, schema.TransferRequestStatusApproved, &note).
		Return(nil)

	require.NoError(t, executor.MarkRequestApproved(context.Background(), execRequestID, &note))
}

func TestExecutorMarkRequestApprovedConflictIsTyped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	l, _ := newExecutorLedger(t)
	executor := workflows.NewExecutor(store, ledger.NewClient(l, ledger.ClientConfig{}))

	store.EXPECT().
		UpdateTransferRequestStatus(gomock.Any(), execRequestID,
			schema.TransferRequestStatusPending, schema.TransferRequestStatusApproved, nil).
		Return(domain.ErrRequestConflict)

	err := executor.MarkRequestApproved(context.Background(), execRequestID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestConflict)
	assert.Equal(t, "RequestConflict", applicationErrorType(t, err))
}

func TestExecutorCompleteAndRollback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	l, _ := newExecutorLedger(t)
	executor := workflows.NewExecutor(store, ledger.NewClient(l, ledger.ClientConfig{}))

	store.EXPECT().
		UpdateTransferRequestStatus(gomock.Any(), execRequestID,
			schema.TransferRequestStatusApproved, schema.TransferRequestStatusCompleted, nil).
		Return(nil)
	require.NoError(t, executor.CompleteRequest(context.Background(), execRequestID))

	store.EXPECT().
		UpdateTransferRequestStatus(gomock.Any(), execRequestID,
			schema.TransferRequestStatusApproved, schema.TransferRequestStatusPending, nil).
		Return(nil)
	require.NoError(t, executor.RollbackRequestApproval(context.Background(), execRequestID))
}
