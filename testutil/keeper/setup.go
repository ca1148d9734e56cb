package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	claimdroptypes "github.com/phoenix-labs/phoenix/x/claimdrop/types"
	dextypes "github.com/phoenix-labs/phoenix/x/dex/types"
	relaunchtypes "github.com/phoenix-labs/phoenix/x/relaunch/types"
)

// BankStoreKey is the store key name for the mock bank keeper
const BankStoreKey = "mockbank"

// TestStores holds the shared multistore context and per-module store keys
// mounted into it.
type TestStores struct {
	Ctx          sdk.Context
	Cdc          *codec.LegacyAmino
	RelaunchKey  storetypes.StoreKey
	ClaimdropKey storetypes.StoreKey
	DexKey       storetypes.StoreKey
	BankKey      storetypes.StoreKey
}

// NewTestStores mounts one IAVL store per module into a fresh in-memory
// multistore. All keepers share the returned context so cross-module calls
// and CacheContext branches behave as they do in the app.
func NewTestStores(t testing.TB) TestStores {
	t.Helper()

	relaunchKey := storetypes.NewKVStoreKey(relaunchtypes.StoreKey)
	claimdropKey := storetypes.NewKVStoreKey(claimdroptypes.StoreKey)
	dexKey := storetypes.NewKVStoreKey(dextypes.StoreKey)
	bankKey := storetypes.NewKVStoreKey(BankStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, key := range []storetypes.StoreKey{relaunchKey, claimdropKey, dexKey, bankKey} {
		stateStore.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	relaunchtypes.RegisterCodec(cdc)
	claimdroptypes.RegisterCodec(cdc)
	dextypes.RegisterCodec(cdc)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	return TestStores{
		Ctx:          ctx,
		Cdc:          cdc,
		RelaunchKey:  relaunchKey,
		ClaimdropKey: claimdropKey,
		DexKey:       dexKey,
		BankKey:      bankKey,
	}
}
