package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/claimdrop/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the claimdrop MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Claim handles a legacy holder redeeming their allocation.
func (ms msgServer) Claim(goCtx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Claim: validate: %w", err)
	}

	claimant, err := sdk.AccAddressFromBech32(msg.Claimant)
	if err != nil {
		return nil, fmt.Errorf("Claim: invalid claimant address: %w", err)
	}

	paid, err := ms.Keeper.Claim(goCtx, claimant)
	if err != nil {
		return nil, err
	}

	return &types.MsgClaimResponse{Paid: paid}, nil
}
