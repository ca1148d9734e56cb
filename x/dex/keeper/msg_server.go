package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/dex/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool creates an empty pool for a new token pair
func (k msgServer) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	poolID, created, err := k.EnsurePool(ctx, msg.TokenA, msg.TokenB)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, types.ErrPoolAlreadyExists.Wrapf("pair %s/%s is pool %d", msg.TokenA, msg.TokenB, poolID)
	}

	return &types.MsgCreatePoolResponse{PoolId: poolID}, nil
}

// AddLiquidity deposits paired tokens and mints shares
func (k msgServer) AddLiquidity(ctx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %v", err)
	}

	shares, err := k.Keeper.AddLiquidity(ctx, provider, msg.PoolId, msg.CoinA, msg.CoinB)
	if err != nil {
		return nil, err
	}

	return &types.MsgAddLiquidityResponse{Shares: shares}, nil
}

// RemoveLiquidity redeems shares for the underlying reserves
func (k msgServer) RemoveLiquidity(ctx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %v", err)
	}

	coinA, coinB, err := k.Keeper.RemoveLiquidity(ctx, provider, msg.PoolId, msg.Shares)
	if err != nil {
		return nil, err
	}

	return &types.MsgRemoveLiquidityResponse{AmountA: coinA, AmountB: coinB}, nil
}

// Swap trades an input token for the pool's other token
func (k msgServer) Swap(ctx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("trader: %v", err)
	}

	coinOut, err := k.Keeper.Swap(ctx, trader, msg.PoolId, sdk.NewCoin(msg.TokenIn, msg.AmountIn), msg.MinAmountOut)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapResponse{AmountOut: coinOut.Amount}, nil
}
