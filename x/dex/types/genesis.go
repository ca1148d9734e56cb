package types

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Position records a provider's share balance in a pool for genesis
type Position struct {
	PoolId   uint64   `json:"pool_id"`
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}

// GenesisState defines the dex module's genesis state.
type GenesisState struct {
	Pools      []Pool     `json:"pools,omitempty"`
	Positions  []Position `json:"positions,omitempty"`
	NextPoolId uint64     `json:"next_pool_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		NextPoolId: 1,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if gs.NextPoolId == 0 {
		return ErrInvalidPoolState.Wrap("next pool id cannot be zero")
	}

	seenID := make(map[uint64]struct{}, len(gs.Pools))
	seenPair := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if pool.Id >= gs.NextPoolId {
			return ErrInvalidPoolState.Wrapf("pool id %d not below next id %d", pool.Id, gs.NextPoolId)
		}
		if _, ok := seenID[pool.Id]; ok {
			return ErrInvalidPoolState.Wrapf("duplicate pool id %d", pool.Id)
		}
		seenID[pool.Id] = struct{}{}

		pair := pool.TokenA + "/" + pool.TokenB
		if _, ok := seenPair[pair]; ok {
			return ErrPoolAlreadyExists.Wrapf("duplicate pair %s", pair)
		}
		seenPair[pair] = struct{}{}
	}

	seenPos := make(map[string]struct{}, len(gs.Positions))
	for _, pos := range gs.Positions {
		if _, err := sdk.AccAddressFromBech32(pos.Provider); err != nil {
			return ErrInvalidAddress.Wrapf("position provider: %v", err)
		}
		if _, ok := seenID[pos.PoolId]; !ok {
			return ErrPoolNotFound.Wrapf("position references unknown pool %d", pos.PoolId)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return ErrInvalidAmount.Wrapf("position shares for %s must be positive", pos.Provider)
		}
		key := pos.Provider + "/" + strconv.FormatUint(pos.PoolId, 10)
		if _, ok := seenPos[key]; ok {
			return ErrInvalidPoolState.Wrapf("duplicate position for %s in pool %d", pos.Provider, pos.PoolId)
		}
		seenPos[key] = struct{}{}
	}

	return nil
}
