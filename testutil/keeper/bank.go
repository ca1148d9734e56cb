package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// MockBankKeeper is a minimal bank keeper backed by its own KVStore. Keeping
// balances in the multistore rather than a Go map means CacheContext
// branches discard bank writes the same way they discard module writes,
// which the atomicity tests depend on.
type MockBankKeeper struct {
	storeKey storetypes.StoreKey
	cdc      *codec.LegacyAmino

	// Error injection for forcing failures mid-sequence.
	MintErr          error
	SendToAccountErr error
	SendToModuleErr  error
}

// NewMockBankKeeper creates a mock bank keeper over the given store key
func NewMockBankKeeper(key storetypes.StoreKey, cdc *codec.LegacyAmino) *MockBankKeeper {
	return &MockBankKeeper{storeKey: key, cdc: cdc}
}

func (m *MockBankKeeper) store(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(m.storeKey)
}

func balanceKey(addr sdk.AccAddress, denom string) []byte {
	return []byte(fmt.Sprintf("bal/%s/%s", addr, denom))
}

func supplyKey(denom string) []byte {
	return []byte("sup/" + denom)
}

func metadataKey(denom string) []byte {
	return []byte("meta/" + denom)
}

func (m *MockBankKeeper) getAmount(ctx context.Context, key []byte) math.Int {
	bz := m.store(ctx).Get(key)
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amount
}

func (m *MockBankKeeper) setAmount(ctx context.Context, key []byte, amount math.Int) {
	bz, err := amount.Marshal()
	if err != nil {
		panic(err)
	}
	m.store(ctx).Set(key, bz)
}

// FundAccount credits an account directly, bypassing supply tracking for
// pre-existing denoms like the legacy asset or the base asset.
func (m *MockBankKeeper) FundAccount(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) {
	for _, coin := range coins {
		key := balanceKey(addr, coin.Denom)
		m.setAmount(ctx, key, m.getAmount(ctx, key).Add(coin.Amount))
		sup := supplyKey(coin.Denom)
		m.setAmount(ctx, sup, m.getAmount(ctx, sup).Add(coin.Amount))
	}
}

// MintCoins mints coins into a module account
func (m *MockBankKeeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	if m.MintErr != nil {
		return m.MintErr
	}
	m.FundAccount(ctx, authtypes.NewModuleAddress(moduleName), amt)
	return nil
}

// SendCoinsFromModuleToAccount moves coins from a module account to addr
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	if m.SendToAccountErr != nil {
		return m.SendToAccountErr
	}
	return m.send(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

// SendCoinsFromAccountToModule moves coins from addr into a module account
func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	if m.SendToModuleErr != nil {
		return m.SendToModuleErr
	}
	return m.send(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (m *MockBankKeeper) send(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		fromKey := balanceKey(from, coin.Denom)
		have := m.getAmount(ctx, fromKey)
		if have.LT(coin.Amount) {
			return fmt.Errorf("insufficient funds: %s has %s%s, needs %s%s", from, have, coin.Denom, coin.Amount, coin.Denom)
		}
		m.setAmount(ctx, fromKey, have.Sub(coin.Amount))
		toKey := balanceKey(to, coin.Denom)
		m.setAmount(ctx, toKey, m.getAmount(ctx, toKey).Add(coin.Amount))
	}
	return nil
}

// GetBalance returns addr's balance of denom
func (m *MockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.getAmount(ctx, balanceKey(addr, denom)))
}

// GetSupply returns the total supply of denom
func (m *MockBankKeeper) GetSupply(ctx context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.getAmount(ctx, supplyKey(denom)))
}

// SetDenomMetaData stores denom metadata
func (m *MockBankKeeper) SetDenomMetaData(ctx context.Context, denomMetaData banktypes.Metadata) {
	bz, err := m.cdc.Marshal(&denomMetaData)
	if err != nil {
		panic(err)
	}
	m.store(ctx).Set(metadataKey(denomMetaData.Base), bz)
}

// HasDenomMetaData reports whether metadata exists for denom
func (m *MockBankKeeper) HasDenomMetaData(ctx context.Context, denom string) bool {
	return m.store(ctx).Has(metadataKey(denom))
}

// GetDenomMetaData returns stored denom metadata
func (m *MockBankKeeper) GetDenomMetaData(ctx context.Context, denom string) (banktypes.Metadata, bool) {
	bz := m.store(ctx).Get(metadataKey(denom))
	if bz == nil {
		return banktypes.Metadata{}, false
	}
	var metadata banktypes.Metadata
	if err := m.cdc.Unmarshal(bz, &metadata); err != nil {
		panic(err)
	}
	return metadata, true
}
