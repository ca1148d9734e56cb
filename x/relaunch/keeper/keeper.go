package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

// Keeper of the relaunch store
type Keeper struct {
	storeKey    storetypes.StoreKey
	cdc         *codec.LegacyAmino
	bankKeeper  types.BankKeeper
	claimKeeper types.ClaimKeeper
	dexKeeper   types.DexKeeper

	// moduleAddressCache avoids recomputing the module account address
	moduleAddressCache sdk.AccAddress

	metrics *RelaunchMetrics
}

// NewKeeper creates a new relaunch Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	claimKeeper types.ClaimKeeper,
	dexKeeper types.DexKeeper,
) Keeper {
	return Keeper{
		storeKey:           key,
		cdc:                cdc,
		bankKeeper:         bankKeeper,
		claimKeeper:        claimKeeper,
		dexKeeper:          dexKeeper,
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
		metrics:            GetRelaunchMetrics(),
	}
}

// getStore returns the KVStore for the relaunch module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetModuleAddress returns the cached module account address. The module
// account is the migration-window owner of the pool and airdrop
// allocations, and the account pre-funded with base currency.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// GetStatus returns the relaunch status flag. Missing state means pending.
func (k Keeper) GetStatus(ctx context.Context) types.Status {
	store := k.getStore(ctx)
	bz := store.Get(StatusKey)
	if len(bz) == 0 {
		return types.StatusPending
	}
	return types.Status(bz[0])
}

// setCompleted flips the one-shot flag. There is no inverse: the only way
// this write disappears is the enclosing branch being discarded.
func (k Keeper) setCompleted(ctx context.Context) {
	store := k.getStore(ctx)
	store.Set(StatusKey, []byte{byte(types.StatusCompleted)})
}

// GetSuccessorDenom returns the deployed successor denom, if any.
func (k Keeper) GetSuccessorDenom(ctx context.Context) (string, bool) {
	store := k.getStore(ctx)
	bz := store.Get(SuccessorDenomKey)
	if len(bz) == 0 {
		return "", false
	}
	return string(bz), true
}

func (k Keeper) setSuccessorDenom(ctx context.Context, denom string) {
	store := k.getStore(ctx)
	store.Set(SuccessorDenomKey, []byte(denom))
}

// GetSuccessorAdmin returns the address administering the successor denom.
func (k Keeper) GetSuccessorAdmin(ctx context.Context) (sdk.AccAddress, bool) {
	store := k.getStore(ctx)
	bz := store.Get(SuccessorAdminKey)
	if len(bz) == 0 {
		return nil, false
	}
	return sdk.AccAddress(bz), true
}

func (k Keeper) setSuccessorAdmin(ctx context.Context, admin sdk.AccAddress) {
	store := k.getStore(ctx)
	store.Set(SuccessorAdminKey, admin.Bytes())
}

// GetClaimFunded returns the coin deposited into the claim fund.
func (k Keeper) GetClaimFunded(ctx context.Context) (sdk.Coin, bool) {
	store := k.getStore(ctx)
	bz := store.Get(ClaimFundedKey)
	if len(bz) == 0 {
		return sdk.Coin{}, false
	}
	var coin sdk.Coin
	k.cdc.MustUnmarshal(bz, &coin)
	return coin, true
}

func (k Keeper) setClaimFunded(ctx context.Context, coin sdk.Coin) {
	store := k.getStore(ctx)
	store.Set(ClaimFundedKey, k.cdc.MustMarshal(&coin))
}
