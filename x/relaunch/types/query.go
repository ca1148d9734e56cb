package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Query endpoints supported by the relaunch querier
const (
	QueryParams = "params"
	QueryStatus = "status"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Status(context.Context, *QueryStatusRequest) (*QueryStatusResponse, error)
}

// QueryParamsRequest is the request type for the Query/Params RPC method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryStatusRequest is the request type for the Query/Status RPC method
type QueryStatusRequest struct{}

// QueryStatusResponse is the response type for the Query/Status RPC method
type QueryStatusResponse struct {
	Status         string   `json:"status"`
	SuccessorDenom string   `json:"successor_denom,omitempty"`
	ClaimFunded    sdk.Coin `json:"claim_funded,omitempty"`
}
