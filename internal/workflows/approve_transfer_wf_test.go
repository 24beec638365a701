package workflows_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/logger"
	"github.com/pharmadna/pharma-ledger/internal/mocks"
	"github.com/pharmadna/pharma-ledger/internal/workflows"
)

// ApproveTransferWorkflowTestSuite is the test suite for the approval saga
type ApproveTransferWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env      *testsuite.TestWorkflowEnvironment
	ctrl     *gomock.Controller
	executor *mocks.MockHandoffExecutor
	worker   workflows.HandoffWorker
}

// SetupTest is called before each test
func (s *ApproveTransferWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockHandoffExecutor(s.ctrl)
	s.worker = workflows.NewHandoffWorker(s.executor)
}

// TearDownTest is called after each test
func (s *ApproveTransferWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestApproveTransferWorkflowTestSuite runs the test suite
func TestApproveTransferWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(ApproveTransferWorkflowTestSuite))
}

func (s *ApproveTransferWorkflowTestSuite) input() workflows.ApproveTransferInput {
	note := "dock 4, expected before noon"
	return workflows.ApproveTransferInput{
		RequestID:    "3f1f9a66-8f63-4e0e-9b6e-0f6a1c3d2b4a",
		TokenID:      7,
		FromAddress:  "0x00000000000000000000000000000000000000A1",
		ToAddress:    "0x00000000000000000000000000000000000000B2",
		ResponseNote: &note,
	}
}

func (s *ApproveTransferWorkflowTestSuite) TestApproveTransfer_Success() {
	input := s.input()

	s.env.OnActivity(s.executor.MarkRequestApproved, mock.Anything, input.RequestID, input.ResponseNote).Return(nil)
	s.env.OnActivity(s.executor.ExecuteCustodyTransfer, mock.Anything, input).Return(nil)
	s.env.OnActivity(s.executor.CompleteRequest, mock.Anything, input.RequestID).Return(nil)

	s.env.ExecuteWorkflow(s.worker.ApproveTransfer, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ApproveTransferWorkflowTestSuite) TestApproveTransfer_ClaimLosesRace() {
	input := s.input()
	claimErr := temporal.NewNonRetryableApplicationError(
		"request already decided", "RequestConflict", domain.ErrRequestConflict)

	s.env.OnActivity(s.executor.MarkRequestApproved, mock.Anything, input.RequestID, input.ResponseNote).Return(claimErr)

	// Neither the custody transfer nor the finalization may run

	s.env.ExecuteWorkflow(s.worker.ApproveTransfer, input)

	s.True(s.env.IsWorkflowCompleted())
	wfErr := s.env.GetWorkflowError()
	s.Error(wfErr)
	s.ErrorIs(workflows.DomainError(wfErr), domain.ErrRequestConflict)
}

func (s *ApproveTransferWorkflowTestSuite) TestApproveTransfer_LedgerRejectionRollsBack() {
	input := s.input()
	transferErr := temporal.NewNonRetryableApplicationError(
		"caller does not hold custody", "NotOwner", domain.ErrNotOwner)

	s.env.OnActivity(s.executor.MarkRequestApproved, mock.Anything, input.RequestID, input.ResponseNote).Return(nil)
	s.env.OnActivity(s.executor.ExecuteCustodyTransfer, mock.Anything, input).Return(transferErr)
	s.env.OnActivity(s.executor.RollbackRequestApproval, mock.Anything, input.RequestID).Return(nil)

	s.env.ExecuteWorkflow(s.worker.ApproveTransfer, input)

	s.True(s.env.IsWorkflowCompleted())
	wfErr := s.env.GetWorkflowError()
	s.Error(wfErr)
	s.ErrorIs(workflows.DomainError(wfErr), domain.ErrNotOwner)
}

func (s *ApproveTransferWorkflowTestSuite) TestApproveTransfer_ConfirmationTimeoutRollsBack() {
	input := s.input()
	timeoutErr := temporal.NewNonRetryableApplicationError(
		"transfer unconfirmed after 30s", "ChainUnavailable", domain.ErrChainUnavailable)

	s.env.OnActivity(s.executor.MarkRequestApproved, mock.Anything, input.RequestID, input.ResponseNote).Return(nil)
	s.env.OnActivity(s.executor.ExecuteCustodyTransfer, mock.Anything, input).Return(timeoutErr)
	s.env.OnActivity(s.executor.RollbackRequestApproval, mock.Anything, input.RequestID).Return(nil)

	s.env.ExecuteWorkflow(s.worker.ApproveTransfer, input)

	s.True(s.env.IsWorkflowCompleted())
	wfErr := s.env.GetWorkflowError()
	s.Error(wfErr)
	s.ErrorIs(workflows.DomainError(wfErr), domain.ErrChainUnavailable)
}

func (s *ApproveTransferWorkflowTestSuite) TestApproveTransfer_RollbackFailureKeepsTransferError() {
	input := s.input()
	transferErr := temporal.NewNonRetryableApplicationError(
		"transfer unconfirmed after 30s", "ChainUnavailable", domain.ErrChainUnavailable)
	rollbackErr := temporal.NewNonRetryableApplicationError(
		"request not found", "RequestNotFound", domain.ErrRequestNotFound)

	s.env.OnActivity(s.executor.MarkRequestApproved, mock.Anything, input.RequestID, input.ResponseNote).Return(nil)
	s.env.OnActivity(s.executor.ExecuteCustodyTransfer, mock.Anything, input).Return(transferErr)
	s.env.OnActivity(s.executor.RollbackRequestApproval, mock.Anything, input.RequestID).Return(rollbackErr)

	s.env.ExecuteWorkflow(s.worker.ApproveTransfer, input)

	s.True(s.env.IsWorkflowCompleted())
	wfErr := s.env.GetWorkflowError()
	s.Error(wfErr)

	// The original transfer failure wins over the compensation failure
	s.ErrorIs(workflows.DomainError(wfErr), domain.ErrChainUnavailable)
}

func (s *ApproveTransferWorkflowTestSuite) TestApproveTransfer_CompleteFailureSurfaces() {
	input := s.input()
	completeErr := temporal.NewNonRetryableApplicationError(
		"request not approved", "RequestConflict", domain.ErrRequestConflict)

	s.env.OnActivity(s.executor.MarkRequestApproved, mock.Anything, input.RequestID, input.ResponseNote).Return(nil)
	s.env.OnActivity(s.executor.ExecuteCustodyTransfer, mock.Anything, input).Return(nil)
	s.env.OnActivity(s.executor.CompleteRequest, mock.Anything, input.RequestID).Return(completeErr)

	s.env.ExecuteWorkflow(s.worker.ApproveTransfer, input)

	s.True(s.env.IsWorkflowCompleted())
	wfErr := s.env.GetWorkflowError()
	s.Error(wfErr)
	s.ErrorIs(workflows.DomainError(wfErr), domain.ErrRequestConflict)
}
