package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/phoenix-labs/phoenix/testutil/keeper"
	dexkeeper "github.com/phoenix-labs/phoenix/x/dex/keeper"
	"github.com/phoenix-labs/phoenix/x/dex/types"
)

func setupSwapPool(t *testing.T) (dexkeeper.Keeper, *testkeeper.MockBankKeeper, sdk.Context, uint64) {
	t.Helper()

	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := testkeeper.TestAddr("provider")

	poolID, _, err := k.EnsurePool(ctx, "uphnx", "ubase")
	require.NoError(t, err)

	bank.FundAccount(ctx, provider, sdk.NewCoins(
		sdk.NewCoin("uphnx", math.NewInt(100_000_000)),
		sdk.NewCoin("ubase", math.NewInt(100_000_000)),
	))
	_, err = k.AddLiquidity(ctx, provider, poolID,
		sdk.NewCoin("uphnx", math.NewInt(100_000_000)),
		sdk.NewCoin("ubase", math.NewInt(100_000_000)))
	require.NoError(t, err)

	return k, bank, ctx, poolID
}

func TestSwapConstantProduct(t *testing.T) {
	k, bank, ctx, poolID := setupSwapPool(t)
	trader := testkeeper.TestAddr("trader")

	amountIn := math.NewInt(1_000_000)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("ubase", amountIn)))

	out, err := k.Swap(ctx, trader, poolID, sdk.NewCoin("ubase", amountIn), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, "uphnx", out.Denom)

	// out = in*9970*R / (R*10000 + in*9970) with R = 100e6:
	// 1e6*9970*100e6 / (100e6*10000 + 1e6*9970) = 987_158
	require.Equal(t, math.NewInt(987_158), out.Amount)
	require.Equal(t, out.Amount, bank.GetBalance(ctx, trader, "uphnx").Amount)
	require.True(t, bank.GetBalance(ctx, trader, "ubase").IsZero())

	// Reserves moved accordingly and the product did not shrink.
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	reserves := map[string]math.Int{pool.TokenA: pool.ReserveA, pool.TokenB: pool.ReserveB}
	require.Equal(t, math.NewInt(101_000_000), reserves["ubase"])
	require.Equal(t, math.NewInt(100_000_000).Sub(out.Amount), reserves["uphnx"])
	product := pool.ReserveA.Mul(pool.ReserveB)
	require.True(t, product.GTE(math.NewInt(100_000_000).Mul(math.NewInt(100_000_000))))
}

func TestSwapMinAmountOut(t *testing.T) {
	k, bank, ctx, poolID := setupSwapPool(t)
	trader := testkeeper.TestAddr("trader")

	amountIn := math.NewInt(1_000_000)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("ubase", amountIn)))

	_, err := k.Swap(ctx, trader, poolID, sdk.NewCoin("ubase", amountIn), math.NewInt(2_000_000))
	require.ErrorIs(t, err, types.ErrMinAmountOut)

	// The failed swap moved nothing.
	require.Equal(t, amountIn, bank.GetBalance(ctx, trader, "ubase").Amount)
	require.True(t, bank.GetBalance(ctx, trader, "uphnx").IsZero())
}

func TestSwapRejectsForeignToken(t *testing.T) {
	k, bank, ctx, poolID := setupSwapPool(t)
	trader := testkeeper.TestAddr("trader")

	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uother", math.NewInt(100))))
	_, err := k.Swap(ctx, trader, poolID, sdk.NewCoin("uother", math.NewInt(100)), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidTokenDenom)
}

func TestSwapEmptyPool(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	trader := testkeeper.TestAddr("trader")

	poolID, _, err := k.EnsurePool(ctx, "uphnx", "ubase")
	require.NoError(t, err)

	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("ubase", math.NewInt(100))))
	_, err = k.Swap(ctx, trader, poolID, sdk.NewCoin("ubase", math.NewInt(100)), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}
