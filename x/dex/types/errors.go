package types

import (
	"cosmossdk.io/errors"
)

// DEX module sentinel errors
var (
	ErrPoolNotFound          = errors.Register(ModuleName, 1, "pool not found")
	ErrPoolAlreadyExists     = errors.Register(ModuleName, 2, "pool already exists")
	ErrInvalidTokenDenom     = errors.Register(ModuleName, 3, "invalid token denomination")
	ErrSameToken             = errors.Register(ModuleName, 4, "cannot pair a token with itself")
	ErrInvalidAmount         = errors.Register(ModuleName, 5, "invalid amount")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 6, "insufficient liquidity in pool")
	ErrInsufficientShares    = errors.Register(ModuleName, 7, "insufficient liquidity shares")
	ErrNoPosition            = errors.Register(ModuleName, 8, "no liquidity position")
	ErrMinAmountOut          = errors.Register(ModuleName, 9, "output amount less than minimum required")
	ErrInvalidAddress        = errors.Register(ModuleName, 10, "invalid address")
	ErrInvalidPoolState      = errors.Register(ModuleName, 11, "invalid pool state")
)
