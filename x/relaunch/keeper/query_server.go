package keeper

import (
	"context"
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the relaunch QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the allocation ledger
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

// Status returns the relaunch status and, once completed, the successor
// denom and the coin deposited into the claim fund.
func (qs queryServer) Status(goCtx context.Context, req *types.QueryStatusRequest) (*types.QueryStatusResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	resp := &types.QueryStatusResponse{
		Status: qs.Keeper.GetStatus(goCtx).String(),
	}
	if denom, ok := qs.Keeper.GetSuccessorDenom(goCtx); ok {
		resp.SuccessorDenom = denom
	}
	if funded, ok := qs.Keeper.GetClaimFunded(goCtx); ok {
		resp.ClaimFunded = funded
	}

	return resp, nil
}
