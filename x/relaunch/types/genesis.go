package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the relaunch module's genesis state.
type GenesisState struct {
	Params Params `json:"params"`

	// Completed and SuccessorDenom carry an already-executed relaunch
	// across chain exports. On a fresh chain both are zero.
	Completed      bool   `json:"completed"`
	SuccessorDenom string `json:"successor_denom,omitempty"`
}

// DefaultGenesis returns the default genesis state: no allocation ledger
// configured, relaunch pending. The module is dormant until a chain
// configures params.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: Params{},
	}
}

// IsEmpty reports whether no allocation ledger has been configured.
func (p Params) IsEmpty() bool {
	return p == Params{}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if gs.Params.IsEmpty() {
		if gs.Completed {
			return ErrInvalidParams.Wrap("relaunch marked completed without params")
		}
		return nil
	}

	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.Completed {
		if err := sdk.ValidateDenom(gs.SuccessorDenom); err != nil {
			return ErrInvalidParams.Wrapf("successor denom: %v", err)
		}
	} else if gs.SuccessorDenom != "" {
		return ErrInvalidParams.Wrap("successor denom recorded before completion")
	}

	return nil
}
