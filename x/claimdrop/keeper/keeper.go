package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/phoenix-labs/phoenix/x/claimdrop/types"
)

// Keeper of the claimdrop store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper

	moduleAddressCache sdk.AccAddress
}

// NewKeeper creates a new claimdrop Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
) Keeper {
	return Keeper{
		storeKey:           key,
		cdc:                cdc,
		bankKeeper:         bankKeeper,
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// getStore returns the KVStore for the claimdrop module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetModuleAddress returns the cached module account address
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// GetParams returns the current parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.Params{}, nil
	}

	var params types.Params
	if err := k.cdc.Unmarshal(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("GetParams: unmarshal: %w", err)
	}
	return params, nil
}

// SetParams sets the parameters in the store
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}
	store.Set(ParamsKey, bz)
	return nil
}

// BoundDenom is the legacy denom this claim mechanism validates against.
func (k Keeper) BoundDenom(ctx context.Context) (string, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return "", err
	}
	return params.LegacyDenom, nil
}

// GetFund returns the remaining claimable coin, or false if never funded.
func (k Keeper) GetFund(ctx context.Context) (sdk.Coin, bool) {
	store := k.getStore(ctx)
	bz := store.Get(FundKey)
	if len(bz) == 0 {
		return sdk.Coin{}, false
	}
	var coin sdk.Coin
	k.cdc.MustUnmarshal(bz, &coin)
	return coin, true
}

func (k Keeper) setFund(ctx context.Context, coin sdk.Coin) {
	store := k.getStore(ctx)
	store.Set(FundKey, k.cdc.MustMarshal(&coin))
}

// HasClaimed reports whether addr already executed its claim.
func (k Keeper) HasClaimed(ctx context.Context, addr sdk.AccAddress) bool {
	store := k.getStore(ctx)
	return store.Has(ClaimedKey(addr))
}

func (k Keeper) setClaimed(ctx context.Context, addr sdk.AccAddress) {
	store := k.getStore(ctx)
	store.Set(ClaimedKey(addr), []byte{1})
}
