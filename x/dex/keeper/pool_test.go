package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/phoenix-labs/phoenix/testutil/keeper"
	"github.com/phoenix-labs/phoenix/x/dex/types"
)

func countEvents(ctx sdk.Context, eventType string) int {
	n := 0
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			n++
		}
	}
	return n
}

func TestEnsurePoolCreatesOnce(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)

	poolID, created, err := k.EnsurePool(ctx, "uphnx", "ubase")
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, uint64(1), poolID)
	require.Equal(t, 1, countEvents(ctx, types.EventTypePoolCreated))

	// Same pair again, in either order, is a pure read.
	for _, pair := range [][2]string{{"uphnx", "ubase"}, {"ubase", "uphnx"}} {
		againID, againCreated, err := k.EnsurePool(ctx, pair[0], pair[1])
		require.NoError(t, err)
		require.False(t, againCreated)
		require.Equal(t, poolID, againID)
	}
	require.Equal(t, 1, countEvents(ctx, types.EventTypePoolCreated))

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.True(t, pool.ReserveA.IsZero())
	require.True(t, pool.ReserveB.IsZero())
	require.True(t, pool.TotalShares.IsZero())
}

func TestEnsurePoolRejectsBadPairs(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)

	_, _, err := k.EnsurePool(ctx, "uphnx", "uphnx")
	require.ErrorIs(t, err, types.ErrSameToken)

	_, _, err = k.EnsurePool(ctx, "", "ubase")
	require.ErrorIs(t, err, types.ErrInvalidTokenDenom)
}

func TestPoolIDsAreSequential(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)

	first, _, err := k.EnsurePool(ctx, "uaaa", "ubbb")
	require.NoError(t, err)
	second, _, err := k.EnsurePool(ctx, "uccc", "uddd")
	require.NoError(t, err)
	require.Equal(t, first+1, second)

	pools, err := k.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
}

func TestGetPoolNotFound(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)

	_, err := k.GetPool(ctx, 42)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}
