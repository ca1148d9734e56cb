package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params binds the claim mechanism to one legacy asset at construction.
// Claims are validated against holdings of this denom; the binding never
// changes after genesis.
type Params struct {
	LegacyDenom string `json:"legacy_denom"`
}

// Validate checks the parameter set
func (p Params) Validate() error {
	if p.LegacyDenom == "" {
		return ErrInvalidParams.Wrap("legacy denom cannot be empty")
	}
	if err := sdk.ValidateDenom(p.LegacyDenom); err != nil {
		return ErrInvalidParams.Wrapf("legacy denom: %v", err)
	}
	return nil
}
