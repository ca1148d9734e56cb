package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// FundKey is the key for the remaining claimable coin
	FundKey = []byte{0x02}

	// ClaimedKeyPrefix is the prefix for per-address claim markers
	ClaimedKeyPrefix = []byte{0x03}
)

// ClaimedKey returns the store key marking an executed claim
func ClaimedKey(addr sdk.AccAddress) []byte {
	return append(ClaimedKeyPrefix, addr.Bytes()...)
}
