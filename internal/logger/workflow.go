package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// workflowFields extracts identifying fields from a workflow context so saga
// log lines can be correlated with Temporal executions.
func workflowFields(ctx workflow.Context) []zap.Field {
	info := workflow.GetInfo(ctx)
	if info == nil {
		return nil
	}

	return []zap.Field{
		zap.String("workflow_type", info.WorkflowType.Name),
		zap.String("workflow_id", info.WorkflowExecution.ID),
		zap.String("run_id", info.WorkflowExecution.RunID),
		zap.String("task_queue", info.TaskQueueName),
	}
}

// InfoWf logs an info message with workflow context
func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	log.Info(msg, append(workflowFields(ctx), fields...)...)
}

// WarnWf logs a warning message with workflow context
func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	log.Warn(msg, append(workflowFields(ctx), fields...)...)
}

// ErrorWf logs an error message with workflow context
func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	msg := "error occurred"
	if err != nil {
		msg = err.Error()
	}
	log.Error(msg, append(workflowFields(ctx), fields...)...)
}
