package keeper_test

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/phoenix-labs/phoenix/testutil/keeper"
	claimdroptypes "github.com/phoenix-labs/phoenix/x/claimdrop/types"
	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

func TestRelaunchHappyPath(t *testing.T) {
	params := testkeeper.DefaultRelaunchParams()
	baseFunding := math.NewInt(10_000_000)
	f := testkeeper.RelaunchKeeper(t, params, baseFunding)

	resp, err := f.Keeper.Relaunch(f.Ctx)
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Equal(t, "uphnx", resp.SuccessorDenom)
	require.Equal(t, math.NewInt(1_000_000_000), resp.TotalSupply)

	require.Equal(t, types.StatusCompleted, f.Keeper.GetStatus(f.Ctx))

	denom, ok := f.Keeper.GetSuccessorDenom(f.Ctx)
	require.True(t, ok)
	require.Equal(t, "uphnx", denom)

	// Total supply matches the four allocations.
	require.Equal(t, params.TotalSupply(), f.Bank.GetSupply(f.Ctx, denom).Amount)

	// Fixed allocations landed with their recipients.
	dao := sdk.MustAccAddressFromBech32(params.DaoAddress)
	agent := sdk.MustAccAddressFromBech32(params.AgentAddress)
	require.Equal(t, params.DaoAmount, f.Bank.GetBalance(f.Ctx, dao, denom).Amount)
	require.Equal(t, params.AgentAmount, f.Bank.GetBalance(f.Ctx, agent, denom).Amount)

	// The airdrop sits in the claim fund.
	fund, funded := f.ClaimdropKeeper.GetFund(f.Ctx)
	require.True(t, funded)
	require.Equal(t, params.AirdropAmount, fund.Amount)
	require.Equal(t, denom, fund.Denom)

	// The pool holds the remaining successor tokens and all the base
	// currency, with every share burned.
	pool, err := f.DexKeeper.GetPool(f.Ctx, resp.PoolId)
	require.NoError(t, err)
	reserves := map[string]math.Int{
		pool.TokenA: pool.ReserveA,
		pool.TokenB: pool.ReserveB,
	}
	require.Equal(t, params.PoolAmount, reserves[denom])
	require.Equal(t, baseFunding, reserves[params.BaseDenom])
	require.Equal(t, pool.TotalShares, pool.BurnedShares)
	require.True(t, pool.BurnedShares.IsPositive())

	// The orchestrator keeps nothing for itself.
	moduleAddr := f.Keeper.GetModuleAddress()
	require.True(t, f.Bank.GetBalance(f.Ctx, moduleAddr, denom).IsZero())
	require.True(t, f.Bank.GetBalance(f.Ctx, moduleAddr, params.BaseDenom).IsZero())

	// Denom metadata is registered.
	require.True(t, f.Bank.HasDenomMetaData(f.Ctx, denom))
}

func TestRelaunchRunsOnlyOnce(t *testing.T) {
	f := testkeeper.RelaunchKeeper(t, testkeeper.DefaultRelaunchParams(), math.NewInt(10_000_000))

	_, err := f.Keeper.Relaunch(f.Ctx)
	require.NoError(t, err)

	_, err = f.Keeper.Relaunch(f.Ctx)
	require.ErrorIs(t, err, types.ErrAlreadyRelaunched)
}

func TestRelaunchNoBaseCurrency(t *testing.T) {
	params := testkeeper.DefaultRelaunchParams()
	f := testkeeper.RelaunchKeeper(t, params, math.ZeroInt())

	_, err := f.Keeper.Relaunch(f.Ctx)
	require.ErrorIs(t, err, types.ErrNoBaseToDeploy)

	// Nothing stuck: the flag, the supply and the claim fund are all
	// untouched, so the relaunch can be retried after funding.
	require.Equal(t, types.StatusPending, f.Keeper.GetStatus(f.Ctx))
	require.True(t, f.Bank.GetSupply(f.Ctx, params.SuccessorDenom()).IsZero())
	_, funded := f.ClaimdropKeeper.GetFund(f.Ctx)
	require.False(t, funded)
	require.False(t, f.Bank.HasDenomMetaData(f.Ctx, params.SuccessorDenom()))

	// And the retry succeeds once the base currency arrives.
	f.Bank.FundAccount(f.Ctx, f.Keeper.GetModuleAddress(), sdk.NewCoins(sdk.NewCoin(params.BaseDenom, math.NewInt(10_000_000))))
	_, err = f.Keeper.Relaunch(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, types.StatusCompleted, f.Keeper.GetStatus(f.Ctx))
}

func TestRelaunchAtomicRollback(t *testing.T) {
	params := testkeeper.DefaultRelaunchParams()
	f := testkeeper.RelaunchKeeper(t, params, math.NewInt(10_000_000))

	// Force the claim funding step to fail after the successor asset has
	// already been minted and distributed inside the branch.
	injected := errors.New("injected transfer failure")
	f.Bank.SendToModuleErr = injected

	_, err := f.Keeper.Relaunch(f.Ctx)
	require.ErrorIs(t, err, injected)

	// Every intermediate write was discarded.
	require.Equal(t, types.StatusPending, f.Keeper.GetStatus(f.Ctx))
	require.True(t, f.Bank.GetSupply(f.Ctx, params.SuccessorDenom()).IsZero())
	require.False(t, f.Bank.HasDenomMetaData(f.Ctx, params.SuccessorDenom()))

	dao := sdk.MustAccAddressFromBech32(params.DaoAddress)
	require.True(t, f.Bank.GetBalance(f.Ctx, dao, params.SuccessorDenom()).IsZero())

	_, funded := f.ClaimdropKeeper.GetFund(f.Ctx)
	require.False(t, funded)

	pools, err := f.DexKeeper.GetAllPools(f.Ctx)
	require.NoError(t, err)
	require.Empty(t, pools)

	// Recover the injected fault and confirm the relaunch still works.
	f.Bank.SendToModuleErr = nil
	_, err = f.Keeper.Relaunch(f.Ctx)
	require.NoError(t, err)
}

func TestRelaunchClaimNotBound(t *testing.T) {
	params := testkeeper.DefaultRelaunchParams()
	f := testkeeper.RelaunchKeeper(t, params, math.NewInt(10_000_000))

	// Rebind the claim mechanism to a different denom.
	require.NoError(t, f.ClaimdropKeeper.SetParams(f.Ctx, claimdroptypes.Params{LegacyDenom: "uother"}))

	_, err := f.Keeper.Relaunch(f.Ctx)
	require.ErrorIs(t, err, types.ErrClaimNotBound)
	require.Equal(t, types.StatusPending, f.Keeper.GetStatus(f.Ctx))
}

func TestRelaunchNoParamsConfigured(t *testing.T) {
	// A chain that never configured an allocation ledger stays dormant.
	f := testkeeper.RelaunchKeeper(t, types.Params{}, math.ZeroInt())

	_, err := f.Keeper.Relaunch(f.Ctx)
	require.ErrorIs(t, err, types.ErrInvalidParams)
	require.Equal(t, types.StatusPending, f.Keeper.GetStatus(f.Ctx))
}

func TestRelaunchSweepsEntireBalance(t *testing.T) {
	// Everything the module holds after distribution goes into the pool,
	// nothing is stranded.
	params := testkeeper.DefaultRelaunchParams()
	f := testkeeper.RelaunchKeeper(t, params, math.NewInt(10_000_000))

	resp, err := f.Keeper.Relaunch(f.Ctx)
	require.NoError(t, err)

	pool, err := f.DexKeeper.GetPool(f.Ctx, resp.PoolId)
	require.NoError(t, err)
	total := pool.ReserveA.Add(pool.ReserveB)
	require.Equal(t, params.PoolAmount.Add(math.NewInt(10_000_000)), total)
}
