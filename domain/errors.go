package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidAddress      = errors.New("Invalid address")
	ErrInvalidChainId      = errors.New("invalid chain id")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// ErrInvalidParameters means a record field required for contract
	// construction is missing or malformed. Caller-fixable.
	ErrInvalidParameters = errors.New("invalid auction parameters")

	// ErrUnknownAuctionType means the auction type is not one of the seven
	// registered mechanisms.
	ErrUnknownAuctionType = errors.New("unknown auction type")

	// ErrDeploymentNotConfigured means rpc endpoint or signing key is absent.
	// Operator misconfiguration, not a user error.
	ErrDeploymentNotConfigured = errors.New("deployment not configured: missing rpc url or signing key")

	// ErrArtifactMissing means the mechanism's bytecode artifact could not be
	// located.
	ErrArtifactMissing = errors.New("contract artifact missing")

	// ErrAbiUnavailable means the mechanism's read interface is not registered.
	ErrAbiUnavailable = errors.New("contract abi unavailable")

	// ErrLedgerUnavailable is a transient transport or timeout failure talking
	// to the chain. Retryable by the caller.
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	// ErrLedgerError means the chain accepted the request but reverted it. The
	// revert reason is wrapped alongside.
	ErrLedgerError = errors.New("ledger error")
)
