package keeper

import (
	"context"
	"fmt"

	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

// InitGenesis initializes the relaunch module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid relaunch genesis: %w", err)
	}

	if !genState.Params.IsEmpty() {
		if err := k.SetParams(ctx, genState.Params); err != nil {
			return err
		}
	}

	if genState.Completed {
		k.setCompleted(ctx)
		k.setSuccessorDenom(ctx, genState.SuccessorDenom)
	}

	return nil
}

// ExportGenesis returns the relaunch module's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genState := &types.GenesisState{
		Params:    params,
		Completed: k.GetStatus(ctx) == types.StatusCompleted,
	}
	if denom, ok := k.GetSuccessorDenom(ctx); ok {
		genState.SuccessorDenom = denom
	}

	return genState, nil
}
