package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgRelaunch{}

// MsgRelaunch executes the one-time migration. It carries no parameters:
// every amount and recipient was fixed at genesis.
type MsgRelaunch struct {
	// Authority must match the configured relaunch authority.
	Authority string `json:"authority"`
}

// NewMsgRelaunch creates a new MsgRelaunch instance
func NewMsgRelaunch(authority string) *MsgRelaunch {
	return &MsgRelaunch{Authority: authority}
}

// Route implements the sdk.Msg interface
func (msg MsgRelaunch) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRelaunch) Type() string {
	return "relaunch"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRelaunch) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRelaunch) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRelaunch) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid authority address: %s", err)
	}
	return nil
}
