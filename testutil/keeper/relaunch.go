package keeper

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	claimdropkeeper "github.com/phoenix-labs/phoenix/x/claimdrop/keeper"
	claimdroptypes "github.com/phoenix-labs/phoenix/x/claimdrop/types"
	dexkeeper "github.com/phoenix-labs/phoenix/x/dex/keeper"
	dextypes "github.com/phoenix-labs/phoenix/x/dex/types"
	"github.com/phoenix-labs/phoenix/x/relaunch/keeper"
	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

// TestAddr derives a deterministic test address from a name
func TestAddr(name string) sdk.AccAddress {
	addr := make([]byte, 20)
	copy(addr, name)
	return sdk.AccAddress(addr)
}

// DefaultRelaunchParams returns a complete allocation ledger for tests:
// 400 dao / 100 agent / 50 airdrop / 450 pool, in micro units.
func DefaultRelaunchParams() types.Params {
	return types.Params{
		LegacyDenom:     "ulegacy",
		BaseDenom:       "ubase",
		SuccessorName:   "Phoenix",
		SuccessorSymbol: "PHNX",
		DaoAddress:      TestAddr("dao").String(),
		DaoAmount:       math.NewInt(400_000_000),
		AgentAddress:    TestAddr("agent").String(),
		AgentAmount:     math.NewInt(100_000_000),
		AirdropAmount:   math.NewInt(50_000_000),
		PoolAmount:      math.NewInt(450_000_000),
		Authority:       TestAddr("authority").String(),
	}
}

// RelaunchFixture bundles the relaunch keeper with the real claimdrop and
// dex keepers it orchestrates, all sharing one context and mock bank.
type RelaunchFixture struct {
	Keeper          keeper.Keeper
	ClaimdropKeeper claimdropkeeper.Keeper
	DexKeeper       dexkeeper.Keeper
	Bank            *MockBankKeeper
	Ctx             sdk.Context
	Params          types.Params
}

// RelaunchKeeper wires the full three-module fixture with params and funds
// the relaunch module account with baseFunding of the base denom.
func RelaunchKeeper(t testing.TB, params types.Params, baseFunding math.Int) RelaunchFixture {
	t.Helper()

	stores := NewTestStores(t)
	bank := NewMockBankKeeper(stores.BankKey, stores.Cdc)

	claimdropK := claimdropkeeper.NewKeeper(stores.Cdc, stores.ClaimdropKey, bank)
	dexK := dexkeeper.NewKeeper(stores.Cdc, stores.DexKey, bank)
	relaunchK := keeper.NewKeeper(stores.Cdc, stores.RelaunchKey, bank, claimdropK, dexK)

	claimGen := claimdroptypes.GenesisState{
		Params: claimdroptypes.Params{LegacyDenom: params.LegacyDenom},
	}
	if err := claimdropK.InitGenesis(stores.Ctx, claimGen); err != nil {
		t.Fatalf("claimdrop genesis: %v", err)
	}
	if err := dexK.InitGenesis(stores.Ctx, *dextypes.DefaultGenesis()); err != nil {
		t.Fatalf("dex genesis: %v", err)
	}
	relaunchGen := types.GenesisState{Params: params}
	if err := relaunchK.InitGenesis(stores.Ctx, relaunchGen); err != nil {
		t.Fatalf("relaunch genesis: %v", err)
	}

	if !baseFunding.IsNil() && baseFunding.IsPositive() {
		bank.FundAccount(stores.Ctx, relaunchK.GetModuleAddress(), sdk.NewCoins(sdk.NewCoin(params.BaseDenom, baseFunding)))
	}

	return RelaunchFixture{
		Keeper:          relaunchK,
		ClaimdropKeeper: claimdropK,
		DexKeeper:       dexK,
		Bank:            bank,
		Ctx:             stores.Ctx,
		Params:          params,
	}
}
