package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-labs/phoenix/x/dex/types"
)

func TestNewPoolOrdersTokens(t *testing.T) {
	pool := types.NewPool(1, "uphnx", "ubase")
	require.Equal(t, "ubase", pool.TokenA)
	require.Equal(t, "uphnx", pool.TokenB)
	require.NoError(t, pool.Validate())

	same := types.NewPool(1, "ubase", "uphnx")
	require.Equal(t, pool.TokenA, same.TokenA)
	require.Equal(t, pool.TokenB, same.TokenB)
}

func TestPoolValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(p *types.Pool)
		wantErr bool
	}{
		{name: "empty pool", mutate: func(p *types.Pool) {}},
		{name: "zero id", mutate: func(p *types.Pool) { p.Id = 0 }, wantErr: true},
		{name: "same tokens", mutate: func(p *types.Pool) { p.TokenB = p.TokenA }, wantErr: true},
		{name: "out of order", mutate: func(p *types.Pool) { p.TokenA, p.TokenB = p.TokenB, p.TokenA }, wantErr: true},
		{name: "negative reserve", mutate: func(p *types.Pool) { p.ReserveA = math.NewInt(-1) }, wantErr: true},
		{name: "nil shares", mutate: func(p *types.Pool) { p.TotalShares = math.Int{} }, wantErr: true},
		{name: "one-sided reserve", mutate: func(p *types.Pool) { p.ReserveA = math.NewInt(10) }, wantErr: true},
		{name: "reserves without shares", mutate: func(p *types.Pool) {
			p.ReserveA = math.NewInt(10)
			p.ReserveB = math.NewInt(10)
		}, wantErr: true},
		{name: "funded pool", mutate: func(p *types.Pool) {
			p.ReserveA = math.NewInt(10)
			p.ReserveB = math.NewInt(10)
			p.TotalShares = math.NewInt(10)
		}},
		{name: "burned within total", mutate: func(p *types.Pool) {
			p.ReserveA = math.NewInt(10)
			p.ReserveB = math.NewInt(10)
			p.TotalShares = math.NewInt(10)
			p.BurnedShares = math.NewInt(10)
		}},
		{name: "burned exceeds total", mutate: func(p *types.Pool) { p.BurnedShares = math.NewInt(1) }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pool := types.NewPool(1, "ubase", "uphnx")
			tc.mutate(pool)
			err := pool.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGenesisValidate(t *testing.T) {
	pool := types.NewPool(1, "ubase", "uphnx")

	gs := types.GenesisState{Pools: []types.Pool{*pool}, NextPoolId: 2}
	require.NoError(t, gs.Validate())

	// Pool id must be below the counter.
	gs.NextPoolId = 1
	require.Error(t, gs.Validate())

	// Duplicate pairs are rejected.
	dup := types.NewPool(2, "uphnx", "ubase")
	gs = types.GenesisState{Pools: []types.Pool{*pool, *dup}, NextPoolId: 3}
	require.Error(t, gs.Validate())

	// Zero counter is invalid even with no pools.
	require.Error(t, (types.GenesisState{}).Validate())
	require.NoError(t, types.DefaultGenesis().Validate())
}
