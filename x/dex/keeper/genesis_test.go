package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/phoenix-labs/phoenix/testutil/keeper"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := testkeeper.TestAddr("provider")

	poolID, _, err := k.EnsurePool(ctx, "uphnx", "ubase")
	require.NoError(t, err)

	bank.FundAccount(ctx, provider, sdk.NewCoins(
		sdk.NewCoin("uphnx", math.NewInt(1_000_000)),
		sdk.NewCoin("ubase", math.NewInt(1_000_000)),
	))
	shares, err := k.AddLiquidity(ctx, provider, poolID,
		sdk.NewCoin("uphnx", math.NewInt(1_000_000)),
		sdk.NewCoin("ubase", math.NewInt(1_000_000)))
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Len(t, exported.Pools, 1)
	require.Len(t, exported.Positions, 1)
	require.Equal(t, shares, exported.Positions[0].Shares)
	require.Equal(t, provider.String(), exported.Positions[0].Provider)
	require.NoError(t, exported.Validate())

	// Replaying the export on a fresh keeper reproduces the state.
	k2, _, ctx2 := testkeeper.DexKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	pool, err := k2.GetPool(ctx2, poolID)
	require.NoError(t, err)
	require.Equal(t, shares, pool.TotalShares)

	position, err := k2.GetPosition(ctx2, poolID, provider)
	require.NoError(t, err)
	require.Equal(t, shares, position)

	// The pair index survives the round trip.
	byTokens, err := k2.GetPoolByTokens(ctx2, "ubase", "uphnx")
	require.NoError(t, err)
	require.Equal(t, poolID, byTokens.Id)
}
