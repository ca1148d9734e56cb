package types

import (
	"context"

	"cosmossdk.io/math"
)

// Query endpoints supported by the dex querier
const (
	QueryPool     = "pool"
	QueryPools    = "pools"
	QueryPosition = "position"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	Position(context.Context, *QueryPositionRequest) (*QueryPositionResponse, error)
}

// QueryPoolRequest is the request type for the Query/Pool endpoint
type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryPoolResponse is the response type for the Query/Pool endpoint
type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

// QueryPoolsRequest is the request type for the Query/Pools endpoint
type QueryPoolsRequest struct{}

// QueryPoolsResponse is the response type for the Query/Pools endpoint
type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

// QueryPositionRequest is the request type for the Query/Position endpoint
type QueryPositionRequest struct {
	PoolId   uint64 `json:"pool_id"`
	Provider string `json:"provider"`
}

// QueryPositionResponse is the response type for the Query/Position endpoint
type QueryPositionResponse struct {
	Shares math.Int `json:"shares"`
}
