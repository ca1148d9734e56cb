package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// BankKeeper defines the expected bank keeper. The successor asset lives
// entirely inside the bank module: deployment is a mint plus metadata
// registration, distribution is plain sends.
type BankKeeper interface {
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetSupply(ctx context.Context, denom string) sdk.Coin
	SetDenomMetaData(ctx context.Context, denomMetaData banktypes.Metadata)
	HasDenomMetaData(ctx context.Context, denom string) bool
}

// ClaimKeeper defines the expected claim mechanism keeper.
type ClaimKeeper interface {
	// BoundDenom is the legacy denom the claim mechanism validates against.
	BoundDenom(ctx context.Context) (string, error)

	// Deposit pulls coin from funder into the claim fund. Approval and
	// transfer are a single call.
	Deposit(ctx context.Context, funder sdk.AccAddress, coin sdk.Coin) error
}

// DexKeeper defines the expected liquidity pool keeper.
type DexKeeper interface {
	// EnsurePool returns the pool for the pair, creating it if absent.
	EnsurePool(ctx context.Context, denomA, denomB string) (poolID uint64, created bool, err error)

	// AddLiquidity deposits both coins and mints shares to provider.
	AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, coinA, coinB sdk.Coin) (math.Int, error)

	// BurnShares irrevocably retires provider's entire position.
	BurnShares(ctx context.Context, provider sdk.AccAddress, poolID uint64) (math.Int, error)
}
