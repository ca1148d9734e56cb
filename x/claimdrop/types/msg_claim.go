package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgClaim{}

// MsgClaim redeems the claimant's allocation of the successor asset,
// validated against their legacy asset holdings. One claim per address.
type MsgClaim struct {
	Claimant string `json:"claimant"`
}

// NewMsgClaim creates a new MsgClaim instance
func NewMsgClaim(claimant string) *MsgClaim {
	return &MsgClaim{Claimant: claimant}
}

// Route implements the sdk.Msg interface
func (msg MsgClaim) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgClaim) Type() string {
	return "claim"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgClaim) GetSigners() []sdk.AccAddress {
	claimant, err := sdk.AccAddressFromBech32(msg.Claimant)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{claimant}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgClaim) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgClaim) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Claimant); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid claimant address: %s", err)
	}
	return nil
}

func (msg *MsgClaim) Reset()         { *msg = MsgClaim{} }
func (msg *MsgClaim) String() string { return fmt.Sprintf("MsgClaim{%s}", msg.Claimant) }
func (*MsgClaim) ProtoMessage()      {}
