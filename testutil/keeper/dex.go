package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/dex/keeper"
	"github.com/phoenix-labs/phoenix/x/dex/types"
)

// DexKeeper creates a test keeper for the dex module backed by the mock
// bank keeper.
func DexKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	t.Helper()

	stores := NewTestStores(t)
	bank := NewMockBankKeeper(stores.BankKey, stores.Cdc)
	k := keeper.NewKeeper(stores.Cdc, stores.DexKey, bank)

	if err := k.InitGenesis(stores.Ctx, *types.DefaultGenesis()); err != nil {
		t.Fatalf("dex genesis: %v", err)
	}

	return k, bank, stores.Ctx
}
