package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Query endpoints supported by the claimdrop querier
const (
	QueryParams  = "params"
	QueryFund    = "fund"
	QueryClaimed = "claimed"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Fund(context.Context, *QueryFundRequest) (*QueryFundResponse, error)
	Claimed(context.Context, *QueryClaimedRequest) (*QueryClaimedResponse, error)
}

// QueryParamsRequest is the request type for the Query/Params RPC method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryFundRequest is the request type for the Query/Fund RPC method
type QueryFundRequest struct{}

// QueryFundResponse is the response type for the Query/Fund RPC method
type QueryFundResponse struct {
	Fund sdk.Coin `json:"fund"`
}

// QueryClaimedRequest is the request type for the Query/Claimed RPC method
type QueryClaimedRequest struct {
	Address string `json:"address"`
}

// QueryClaimedResponse is the response type for the Query/Claimed RPC method
type QueryClaimedResponse struct {
	Claimed bool `json:"claimed"`
}
