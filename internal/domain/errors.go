package domain

import "errors"

var (
	// ErrNotAuthorized is returned when the caller lacks the role required for an operation
	ErrNotAuthorized = errors.New("caller not authorized")

	// ErrInvalidRole is returned when a role value is not a known enum member
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidAddress is returned when an account address is malformed
	ErrInvalidAddress = errors.New("invalid address")

	// ErrEmptyMetadataReference is returned when a mint is attempted without a metadata reference
	ErrEmptyMetadataReference = errors.New("empty metadata reference")

	// ErrInvalidMetadataReference is returned when a metadata reference is not content-addressed
	ErrInvalidMetadataReference = errors.New("invalid metadata reference")

	// ErrTokenNotFound is returned when a token ID has never been minted
	ErrTokenNotFound = errors.New("token not found")

	// ErrNotOwner is returned when a transfer is attempted by an address that is not the current custodian
	ErrNotOwner = errors.New("caller is not the current owner")

	// ErrInvalidRoleTransition is returned when the recipient's role is not the custody successor of the caller's role
	ErrInvalidRoleTransition = errors.New("invalid custody role transition")

	// ErrRequestNotFound is returned when a transfer request ID is unknown
	ErrRequestNotFound = errors.New("transfer request not found")

	// ErrRequestConflict is returned when a duplicate pending request exists or a concurrent
	// status change won the race; callers recover by re-reading current state
	ErrRequestConflict = errors.New("transfer request conflict")

	// ErrChainUnavailable is returned when the ledger call could not be confirmed in time.
	// It marks a transient condition: retrying the approval is reasonable, and it must never
	// be conflated with a policy rejection.
	ErrChainUnavailable = errors.New("ledger confirmation unavailable")
)

// Terminal reports whether err is a ledger policy error that retrying cannot
// change (authorization, validation, ownership, custody-chain violations).
func Terminal(err error) bool {
	return errors.Is(err, ErrNotAuthorized) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrInvalidAddress) ||
		errors.Is(err, ErrEmptyMetadataReference) ||
		errors.Is(err, ErrInvalidMetadataReference) ||
		errors.Is(err, ErrTokenNotFound) ||
		errors.Is(err, ErrNotOwner) ||
		errors.Is(err, ErrInvalidRoleTransition)
}
