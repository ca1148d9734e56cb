package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/phoenix-labs/phoenix/x/claimdrop/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the claimdrop QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	params, err := qs.Keeper.GetParams(goCtx)
	if err != nil {
		return nil, fmt.Errorf("Params: get params: %w", err)
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

// Fund returns the remaining claimable coin
func (qs queryServer) Fund(goCtx context.Context, req *types.QueryFundRequest) (*types.QueryFundResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	fund, funded := qs.Keeper.GetFund(goCtx)
	if !funded {
		return nil, types.ErrNotFunded
	}

	return &types.QueryFundResponse{Fund: fund}, nil
}

// Claimed reports whether an address already executed its claim
func (qs queryServer) Claimed(goCtx context.Context, req *types.QueryClaimedRequest) (*types.QueryClaimedResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("%v", err)
	}

	return &types.QueryClaimedResponse{Claimed: qs.Keeper.HasClaimed(goCtx, addr)}, nil
}
