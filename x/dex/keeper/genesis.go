package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/dex/types"
)

// InitGenesis initializes the dex module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid dex genesis: %w", err)
	}

	k.SetNextPoolID(ctx, genState.NextPoolId)

	for _, pool := range genState.Pools {
		pool := pool
		if err := k.SetPool(ctx, &pool); err != nil {
			return err
		}
		k.SetPoolByTokens(ctx, pool.TokenA, pool.TokenB, pool.Id)
	}

	for _, pos := range genState.Positions {
		provider, err := sdk.AccAddressFromBech32(pos.Provider)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("position provider: %v", err)
		}
		if err := k.SetPosition(ctx, pos.PoolId, provider, pos.Shares); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the dex module's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}

	positions, err := k.allPositions(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Pools:      pools,
		Positions:  positions,
		NextPoolId: k.GetNextPoolID(ctx),
	}, nil
}

func (k Keeper) allPositions(ctx context.Context) ([]types.Position, error) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PositionKeyPrefix)
	defer iterator.Close()

	var positions []types.Position
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		poolID := binary.BigEndian.Uint64(key[len(PositionKeyPrefix) : len(PositionKeyPrefix)+8])
		provider := sdk.AccAddress(key[len(PositionKeyPrefix)+8:])

		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return nil, err
		}

		positions = append(positions, types.Position{
			PoolId:   poolID,
			Provider: provider.String(),
			Shares:   shares,
		})
	}

	return positions, nil
}
