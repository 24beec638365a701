package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/pharmadna/pharma-ledger/internal/logger"
)

// ApproveTransfer executes the transfer approval saga
func (w *handoffWorker) ApproveTransfer(ctx workflow.Context, input ApproveTransferInput) error {
	logger.InfoWf(ctx, "Processing transfer approval",
		zap.String("requestID", input.RequestID),
		zap.Uint64("tokenID", input.TokenID),
		zap.String("from", input.FromAddress),
		zap.String("to", input.ToAddress),
	)

	// Configure activity options
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: Claim the pending request. A concurrent decision loses here.
	err := workflow.ExecuteActivity(ctx, w.executor.MarkRequestApproved, input.RequestID, input.ResponseNote).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to mark request approved"),
			zap.Error(err),
			zap.String("requestID", input.RequestID),
		)
		return err
	}

	// Step 2: Move custody on the ledger. The activity blocks until the
	// transfer is confirmed or the confirmation timeout elapses, so its
	// timeout has to outlast the chain client's.
	transferOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	transferCtx := workflow.WithActivityOptions(ctx, transferOptions)

	err = workflow.ExecuteActivity(transferCtx, w.executor.ExecuteCustodyTransfer, input).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("custody transfer failed"),
			zap.Error(err),
			zap.String("requestID", input.RequestID),
			zap.Uint64("tokenID", input.TokenID),
		)

		// Compensate: the request goes back to pending so the recipient can
		// decide again once the underlying condition is resolved.
		compensateOptions := workflow.ActivityOptions{
			StartToCloseTimeout: time.Minute,
			RetryPolicy: &temporal.RetryPolicy{
				InitialInterval: time.Second,
				MaximumAttempts: 5,
			},
		}
		compensateCtx := workflow.WithActivityOptions(ctx, compensateOptions)

		if rollbackErr := workflow.ExecuteActivity(compensateCtx, w.executor.RollbackRequestApproval, input.RequestID).Get(ctx, nil); rollbackErr != nil {
			// The request is stuck in approved; surface both errors
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to roll back request approval"),
				zap.Error(rollbackErr),
				zap.String("requestID", input.RequestID),
			)
		}

		return err
	}

	// Step 3: Finalize the request
	err = workflow.ExecuteActivity(ctx, w.executor.CompleteRequest, input.RequestID).Get(ctx, nil)
	if err != nil {
		// Custody already moved; the request row lags behind but the ledger
		// is the source of truth
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to complete request after confirmed transfer"),
			zap.Error(err),
			zap.String("requestID", input.RequestID),
		)
		return err
	}

	logger.InfoWf(ctx, "Transfer approval completed",
		zap.String("requestID", input.RequestID),
		zap.Uint64("tokenID", input.TokenID),
	)

	return nil
}
