package workflows

import (
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"

	"github.com/pharmadna/pharma-ledger/internal/domain"
)

// terminalErrorTypes maps domain sentinels to stable application error types.
// Activity errors cross the Temporal history as serialized application errors,
// so the sentinel identity has to be carried in the type string and restored
// on the way out.
var terminalErrorTypes = []struct {
	sentinel error
	name     string
}{
	{domain.ErrNotOwner, "NotOwner"},
	{domain.ErrInvalidRoleTransition, "InvalidRoleTransition"},
	{domain.ErrTokenNotFound, "TokenNotFound"},
	{domain.ErrRequestNotFound, "RequestNotFound"},
	{domain.ErrRequestConflict, "RequestConflict"},
	{domain.ErrChainUnavailable, "ChainUnavailable"},
}

// wrapActivityError converts known domain errors into non-retryable Temporal
// application errors with a stable type. Unknown errors pass through and use
// the activity retry policy.
func wrapActivityError(err error) error {
	if err == nil {
		return nil
	}

	for _, t := range terminalErrorTypes {
		if errors.Is(err, t.sentinel) {
			return temporal.NewNonRetryableApplicationError(err.Error(), t.name, err)
		}
	}

	return err
}

// DomainError maps a workflow or activity error back to the domain taxonomy.
// Errors without a recognized application error type are returned unchanged.
func DomainError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) {
		for _, t := range terminalErrorTypes {
			if appErr.Type() == t.name {
				return fmt.Errorf("%w: %s", t.sentinel, appErr.Message())
			}
		}
	}

	return err
}
