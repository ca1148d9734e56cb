package keeper

import (
	"context"
	"fmt"

	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the relaunch MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Relaunch handles the one-time migration message.
func (ms msgServer) Relaunch(goCtx context.Context, msg *types.MsgRelaunch) (*types.MsgRelaunchResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Relaunch: validate: %w", err)
	}

	params, err := ms.Keeper.GetParams(goCtx)
	if err != nil {
		return nil, fmt.Errorf("Relaunch: get params: %w", err)
	}
	if params.IsEmpty() {
		return nil, types.ErrInvalidParams.Wrap("no allocation ledger configured")
	}
	if msg.Authority != params.Authority {
		return nil, types.ErrUnauthorized.Wrapf("expected %s, got %s", params.Authority, msg.Authority)
	}

	return ms.Keeper.Relaunch(goCtx)
}
