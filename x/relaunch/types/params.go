package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params is the fixed allocation ledger of the relaunch. It is set at
// genesis and never changes afterwards: every amount and recipient of the
// one-time migration is decided before the chain starts.
type Params struct {
	// LegacyDenom is the asset being migrated away from.
	LegacyDenom string `json:"legacy_denom"`

	// BaseDenom is the chain's base currency, paired against the successor
	// asset in the liquidity pool.
	BaseDenom string `json:"base_denom"`

	// SuccessorName and SuccessorSymbol describe the successor asset. The
	// denom is derived from the symbol, see SuccessorDenom.
	SuccessorName   string `json:"successor_name"`
	SuccessorSymbol string `json:"successor_symbol"`

	// DaoAddress receives DaoAmount and administrative control of the
	// successor denom.
	DaoAddress string   `json:"dao_address"`
	DaoAmount  math.Int `json:"dao_amount"`

	// AgentAddress is the operational wallet receiving AgentAmount.
	AgentAddress string   `json:"agent_address"`
	AgentAmount  math.Int `json:"agent_amount"`

	// AirdropAmount funds the claim mechanism for legacy holders.
	AirdropAmount math.Int `json:"airdrop_amount"`

	// PoolAmount seeds the successor/base liquidity pool.
	PoolAmount math.Int `json:"pool_amount"`

	// Authority is the only address allowed to execute the relaunch.
	Authority string `json:"authority"`
}

// SuccessorDenom derives the on-chain denom of the successor asset.
func (p Params) SuccessorDenom() string {
	return "u" + strings.ToLower(p.SuccessorSymbol)
}

// TotalSupply is the successor asset's full minted supply:
// dao + agent + airdrop + pool. Nothing is ever minted outside the
// relaunch, so this is the conserved quantity.
func (p Params) TotalSupply() math.Int {
	return p.DaoAmount.Add(p.AgentAmount).Add(p.AirdropAmount).Add(p.PoolAmount)
}

// Validate checks the internal consistency of the allocation ledger.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.LegacyDenom); err != nil {
		return ErrInvalidParams.Wrapf("legacy denom: %v", err)
	}
	if err := sdk.ValidateDenom(p.BaseDenom); err != nil {
		return ErrInvalidParams.Wrapf("base denom: %v", err)
	}
	if p.SuccessorName == "" {
		return ErrInvalidParams.Wrap("successor name cannot be empty")
	}
	if p.SuccessorSymbol == "" {
		return ErrInvalidParams.Wrap("successor symbol cannot be empty")
	}
	if err := sdk.ValidateDenom(p.SuccessorDenom()); err != nil {
		return ErrInvalidParams.Wrapf("successor denom: %v", err)
	}
	if p.SuccessorDenom() == p.LegacyDenom {
		return ErrInvalidParams.Wrap("successor denom equals legacy denom")
	}
	if p.SuccessorDenom() == p.BaseDenom {
		return ErrInvalidParams.Wrap("successor denom equals base denom")
	}

	if _, err := sdk.AccAddressFromBech32(p.DaoAddress); err != nil {
		return ErrInvalidParams.Wrapf("dao address: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(p.AgentAddress); err != nil {
		return ErrInvalidParams.Wrapf("agent address: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(p.Authority); err != nil {
		return ErrInvalidParams.Wrapf("authority: %v", err)
	}

	for name, amt := range map[string]math.Int{
		"dao_amount":     p.DaoAmount,
		"agent_amount":   p.AgentAmount,
		"airdrop_amount": p.AirdropAmount,
		"pool_amount":    p.PoolAmount,
	} {
		if amt.IsNil() {
			return ErrInvalidParams.Wrapf("%s is nil", name)
		}
		if amt.IsNegative() {
			return ErrInvalidParams.Wrapf("%s is negative: %s", name, amt)
		}
	}

	if p.TotalSupply().IsZero() {
		return ErrInvalidParams.Wrap("total allocation cannot be zero")
	}

	return nil
}

// String implements fmt.Stringer
func (p Params) String() string {
	return fmt.Sprintf(
		"Params{legacy=%s successor=%s dao=%s agent=%s airdrop=%s pool=%s}",
		p.LegacyDenom, p.SuccessorDenom(),
		p.DaoAmount, p.AgentAmount, p.AirdropAmount, p.PoolAmount,
	)
}
