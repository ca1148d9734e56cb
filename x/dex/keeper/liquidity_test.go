package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/phoenix-labs/phoenix/testutil/keeper"
	"github.com/phoenix-labs/phoenix/x/dex/types"
)

func TestAddLiquidityFirstDeposit(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := testkeeper.TestAddr("provider")

	poolID, _, err := k.EnsurePool(ctx, "uphnx", "ubase")
	require.NoError(t, err)

	coinA := sdk.NewCoin("uphnx", math.NewInt(450_000_000))
	coinB := sdk.NewCoin("ubase", math.NewInt(10_000_000))
	bank.FundAccount(ctx, provider, sdk.NewCoins(coinA, coinB))

	shares, err := k.AddLiquidity(ctx, provider, poolID, coinA, coinB)
	require.NoError(t, err)

	// First deposit mints sqrt(a*b) shares.
	// sqrt(450e6 * 10e6) = sqrt(4.5e15) = 67082039...
	require.Equal(t, math.NewInt(67_082_039), shares)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, shares, pool.TotalShares)

	position, err := k.GetPosition(ctx, poolID, provider)
	require.NoError(t, err)
	require.Equal(t, shares, position)

	// Deposited coins moved to the module account.
	require.True(t, bank.GetBalance(ctx, provider, "uphnx").IsZero())
	require.True(t, bank.GetBalance(ctx, provider, "ubase").IsZero())
	moduleAddr := k.GetModuleAddress()
	require.Equal(t, coinA.Amount, bank.GetBalance(ctx, moduleAddr, "uphnx").Amount)
	require.Equal(t, coinB.Amount, bank.GetBalance(ctx, moduleAddr, "ubase").Amount)
}

func TestAddLiquidityProRata(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	first := testkeeper.TestAddr("first")
	second := testkeeper.TestAddr("second")

	poolID, _, err := k.EnsurePool(ctx, "uphnx", "ubase")
	require.NoError(t, err)

	bank.FundAccount(ctx, first, sdk.NewCoins(
		sdk.NewCoin("uphnx", math.NewInt(1_000_000)),
		sdk.NewCoin("ubase", math.NewInt(4_000_000)),
	))
	firstShares, err := k.AddLiquidity(ctx, first, poolID,
		sdk.NewCoin("uphnx", math.NewInt(1_000_000)),
		sdk.NewCoin("ubase", math.NewInt(4_000_000)))
	require.NoError(t, err)

	// Doubling both reserves doubles the shares.
	bank.FundAccount(ctx, second, sdk.NewCoins(
		sdk.NewCoin("uphnx", math.NewInt(1_000_000)),
		sdk.NewCoin("ubase", math.NewInt(4_000_000)),
	))
	secondShares, err := k.AddLiquidity(ctx, second, poolID,
		sdk.NewCoin("uphnx", math.NewInt(1_000_000)),
		sdk.NewCoin("ubase", math.NewInt(4_000_000)))
	require.NoError(t, err)
	require.Equal(t, firstShares, secondShares)

	// Order of the coin arguments does not matter.
	bank.FundAccount(ctx, second, sdk.NewCoins(
		sdk.NewCoin("uphnx", math.NewInt(1_000_000)),
		sdk.NewCoin("ubase", math.NewInt(4_000_000)),
	))
	swapped, err := k.AddLiquidity(ctx, second, poolID,
		sdk.NewCoin("ubase", math.NewInt(4_000_000)),
		sdk.NewCoin("uphnx", math.NewInt(1_000_000)))
	require.NoError(t, err)
	require.Equal(t, firstShares, swapped)
}

func TestAddLiquidityWrongDenom(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := testkeeper.TestAddr("provider")

	poolID, _, err := k.EnsurePool(ctx, "uphnx", "ubase")
	require.NoError(t, err)

	bank.FundAccount(ctx, provider, sdk.NewCoins(sdk.NewCoin("uother", math.NewInt(100))))
	_, err = k.AddLiquidity(ctx, provider, poolID,
		sdk.NewCoin("uother", math.NewInt(100)),
		sdk.NewCoin("ubase", math.NewInt(100)))
	require.ErrorIs(t, err, types.ErrInvalidTokenDenom)
}

func TestRemoveLiquidity(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := testkeeper.TestAddr("provider")

	poolID, _, err := k.EnsurePool(ctx, "uphnx", "ubase")
	require.NoError(t, err)

	bank.FundAccount(ctx, provider, sdk.NewCoins(
		sdk.NewCoin("uphnx", math.NewInt(9_000_000)),
		sdk.NewCoin("ubase", math.NewInt(4_000_000)),
	))
	shares, err := k.AddLiquidity(ctx, provider, poolID,
		sdk.NewCoin("uphnx", math.NewInt(9_000_000)),
		sdk.NewCoin("ubase", math.NewInt(4_000_000)))
	require.NoError(t, err)

	// Withdraw half the shares, get half of each reserve back.
	half := shares.QuoRaw(2)
	coinA, coinB, err := k.RemoveLiquidity(ctx, provider, poolID, half)
	require.NoError(t, err)
	got := map[string]math.Int{coinA.Denom: coinA.Amount, coinB.Denom: coinB.Amount}
	require.Equal(t, math.NewInt(4_500_000), got["uphnx"])
	require.Equal(t, math.NewInt(2_000_000), got["ubase"])

	position, err := k.GetPosition(ctx, poolID, provider)
	require.NoError(t, err)
	require.Equal(t, shares.Sub(half), position)

	// Withdrawing more than the remaining position fails.
	_, _, err = k.RemoveLiquidity(ctx, provider, poolID, shares)
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestBurnSharesIsIrreversible(t *testing.T) {
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

	burned, err := k.BurnShares(ctx, provider, poolID)
	require.NoError(t, err)
	require.Equal(t, shares, burned)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, shares, pool.BurnedShares)
	require.Equal(t, pool.TotalShares, pool.BurnedShares)

	// The reserves stay in the pool and stay tradable.
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveB)

	// No position is left to withdraw or burn again.
	_, _, err = k.RemoveLiquidity(ctx, provider, poolID, shares)
	require.ErrorIs(t, err, types.ErrNoPosition)
	_, err = k.BurnShares(ctx, provider, poolID)
	require.ErrorIs(t, err, types.ErrNoPosition)
}

func TestAddLiquidityInsufficientFunds(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)
	provider := testkeeper.TestAddr("broke")

	poolID, _, err := k.EnsurePool(ctx, "uphnx", "ubase")
	require.NoError(t, err)

	_, err = k.AddLiquidity(ctx, provider, poolID,
		sdk.NewCoin("uphnx", math.NewInt(100)),
		sdk.NewCoin("ubase", math.NewInt(100)))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}
