package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/claimdrop/keeper"
	"github.com/phoenix-labs/phoenix/x/claimdrop/types"
)

// ClaimdropKeeper creates a test keeper for the claimdrop module bound to
// legacyDenom, backed by the mock bank keeper.
func ClaimdropKeeper(t testing.TB, legacyDenom string) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	t.Helper()

	stores := NewTestStores(t)
	bank := NewMockBankKeeper(stores.BankKey, stores.Cdc)
	k := keeper.NewKeeper(stores.Cdc, stores.ClaimdropKey, bank)

	genState := types.GenesisState{
		Params: types.Params{LegacyDenom: legacyDenom},
	}
	if err := k.InitGenesis(stores.Ctx, genState); err != nil {
		t.Fatalf("claimdrop genesis: %v", err)
	}

	return k, bank, stores.Ctx
}
