package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer defines the message server interface
type MsgServer interface {
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
}

// MsgClaimResponse defines the response for Claim
type MsgClaimResponse struct {
	Paid sdk.Coin `json:"paid"`
}
