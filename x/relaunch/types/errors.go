package types

import (
	"cosmossdk.io/errors"
)

// Relaunch module sentinel errors. All of them are terminal: a failed
// relaunch leaves no state behind and must be retried from scratch.
var (
	ErrAlreadyRelaunched = errors.Register(ModuleName, 1, "relaunch already executed")
	ErrAlreadyDeployed   = errors.Register(ModuleName, 2, "successor asset already deployed")
	ErrLengthMismatch    = errors.Register(ModuleName, 3, "recipient and amount list lengths differ")
	ErrNoTokensToDeploy  = errors.Register(ModuleName, 4, "no successor tokens held for liquidity")
	ErrNoBaseToDeploy    = errors.Register(ModuleName, 5, "no base currency held for liquidity")
	ErrUnauthorized      = errors.Register(ModuleName, 6, "caller is not the relaunch authority")
	ErrClaimNotBound     = errors.Register(ModuleName, 7, "claim mechanism not bound to the legacy asset")
	ErrInvalidParams     = errors.Register(ModuleName, 8, "invalid relaunch parameters")
)
