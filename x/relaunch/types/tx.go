package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	Relaunch(context.Context, *MsgRelaunch) (*MsgRelaunchResponse, error)
}

// MsgRelaunchResponse defines the response for Relaunch
type MsgRelaunchResponse struct {
	SuccessorDenom string   `json:"successor_denom"`
	TotalSupply    math.Int `json:"total_supply"`
	PoolId         uint64   `json:"pool_id"`
}
