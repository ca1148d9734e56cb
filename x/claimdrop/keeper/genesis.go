package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/claimdrop/types"
)

// InitGenesis initializes the claimdrop module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid claimdrop genesis: %w", err)
	}

	if genState.Params.LegacyDenom != "" {
		if err := k.SetParams(ctx, genState.Params); err != nil {
			return err
		}
	}

	if !genState.Fund.IsNil() && genState.Fund.IsValid() {
		k.setFund(ctx, genState.Fund)
	}

	for _, addr := range genState.Claimed {
		claimant, err := sdk.AccAddressFromBech32(addr)
		if err != nil {
			return fmt.Errorf("invalid claimed address %q: %w", addr, err)
		}
		k.setClaimed(ctx, claimant)
	}

	return nil
}

// ExportGenesis returns the claimdrop module's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genState := &types.GenesisState{Params: params}
	if fund, funded := k.GetFund(ctx); funded {
		genState.Fund = fund
	}

	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ClaimedKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(ClaimedKeyPrefix):])
		genState.Claimed = append(genState.Claimed, addr.String())
	}

	return genState, nil
}
