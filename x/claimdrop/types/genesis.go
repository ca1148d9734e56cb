package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the claimdrop module's genesis state.
type GenesisState struct {
	Params Params `json:"params"`

	// Fund is the remaining claimable coin, carried across exports.
	Fund sdk.Coin `json:"fund,omitempty"`

	// Claimed lists addresses that already executed their claim.
	Claimed []string `json:"claimed,omitempty"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: Params{},
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if gs.Params.LegacyDenom == "" && gs.Fund.IsNil() && len(gs.Claimed) == 0 {
		return nil
	}

	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if !gs.Fund.IsNil() {
		if err := gs.Fund.Validate(); err != nil {
			return ErrInvalidParams.Wrapf("fund: %v", err)
		}
	}

	seen := make(map[string]struct{}, len(gs.Claimed))
	for _, addr := range gs.Claimed {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return ErrInvalidAddress.Wrapf("claimed entry %q: %v", addr, err)
		}
		if _, ok := seen[addr]; ok {
			return ErrInvalidParams.Wrapf("duplicate claimed entry %q", addr)
		}
		seen[addr] = struct{}{}
	}

	return nil
}
