package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/phoenix-labs/phoenix/x/dex/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the dex QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Pool returns a single pool by id
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pool, err := qs.Keeper.GetPool(goCtx, req.PoolId)
	if err != nil {
		return nil, err
	}

	return &types.QueryPoolResponse{Pool: *pool}, nil
}

// Pools returns every pool in the store
func (qs queryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pools, err := qs.Keeper.GetAllPools(goCtx)
	if err != nil {
		return nil, fmt.Errorf("Pools: list pools: %w", err)
	}

	return &types.QueryPoolsResponse{Pools: pools}, nil
}

// Position returns a provider's share balance in a pool
func (qs queryServer) Position(goCtx context.Context, req *types.QueryPositionRequest) (*types.QueryPositionResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	provider, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %v", err)
	}
	if _, err := qs.Keeper.GetPool(goCtx, req.PoolId); err != nil {
		return nil, err
	}

	shares, err := qs.Keeper.GetPosition(goCtx, req.PoolId, provider)
	if err != nil {
		return nil, err
	}

	return &types.QueryPositionResponse{Shares: shares}, nil
}
