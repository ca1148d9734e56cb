package types

import (
	"cosmossdk.io/errors"
)

// Claimdrop module sentinel errors
var (
	ErrInvalidParams  = errors.Register(ModuleName, 1, "invalid claimdrop parameters")
	ErrZeroDeposit    = errors.Register(ModuleName, 2, "deposit amount cannot be zero")
	ErrFundMismatch   = errors.Register(ModuleName, 3, "deposit denom differs from existing fund")
	ErrNotFunded      = errors.Register(ModuleName, 4, "claim fund is empty")
	ErrAlreadyClaimed = errors.Register(ModuleName, 5, "address already claimed")
	ErrNothingToClaim = errors.Register(ModuleName, 6, "no legacy balance to claim against")
	ErrInvalidAddress = errors.Register(ModuleName, 7, "invalid address")
)
