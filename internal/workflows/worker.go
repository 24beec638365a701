package workflows

import (
	"go.temporal.io/sdk/workflow"
)

// HandoffWorker defines the workflows of the transfer-request handoff protocol
//
//go:generate mockgen -source=worker.go -destination=../mocks/handoff_worker.go -package=mocks -mock_names=HandoffWorker=MockHandoffWorker
type HandoffWorker interface {
	// ApproveTransfer executes the recipient's approval end to end: claim the
	// pending request, move custody on the ledger, finalize the request. A
	// failed custody transfer is compensated by putting the request back to
	// pending.
	ApproveTransfer(ctx workflow.Context, input ApproveTransferInput) error
}

// handoffWorker is the concrete implementation of HandoffWorker
type handoffWorker struct {
	executor Executor
}

// NewHandoffWorker creates a new handoff worker instance
func NewHandoffWorker(executor Executor) HandoffWorker {
	return &handoffWorker{
		executor: executor,
	}
}
