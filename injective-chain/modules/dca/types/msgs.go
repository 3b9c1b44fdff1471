package types

import (
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// dca message types
const (
	TypeMsgCreateDcaOrder     = "createDcaOrder"
	TypeMsgModifyDcaOrder     = "modifyDcaOrder"
	TypeMsgCancelDcaOrder     = "cancelDcaOrder"
	TypeMsgPerformDcaPurchase = "performDcaPurchase"
	TypeMsgAddBotTip          = "addBotTip"
	TypeMsgWithdrawTips       = "withdrawTips"
	TypeMsgUpdateConfig       = "updateConfig"
	TypeMsgUpdateUserConfig   = "updateUserConfig"
)

var (
	_ sdk.Msg = &MsgCreateDcaOrder{}
	_ sdk.Msg = &MsgModifyDcaOrder{}
	_ sdk.Msg = &MsgCancelDcaOrder{}
	_ sdk.Msg = &MsgPerformDcaPurchase{}
	_ sdk.Msg = &MsgAddBotTip{}
	_ sdk.Msg = &MsgWithdrawTips{}
	_ sdk.Msg = &MsgUpdateConfig{}
	_ sdk.Msg = &MsgUpdateUserConfig{}
)

// Route implements the sdk.Msg interface. It should return the name of the module
func (msg MsgCreateDcaOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface. It should return the action.
func (msg MsgCreateDcaOrder) Type() string { return TypeMsgCreateDcaOrder }

// ValidateBasic implements the sdk.Msg interface. It runs stateless checks on the message
func (msg MsgCreateDcaOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, msg.Sender)
	}
	if err := msg.InitialAsset.Validate(); err != nil {
		return err
	}
	if !msg.InitialAsset.Amount.IsPositive() {
		return ErrInvalidZeroAmount
	}
	if err := msg.TargetAsset.Validate(); err != nil {
		return err
	}
	if msg.InitialAsset.Info.Equal(&msg.TargetAsset) {
		return ErrDuplicateAsset
	}
	if msg.Interval == 0 {
		return errors.Wrap(sdkerrors.ErrInvalidRequest, "purchase interval cannot be zero")
	}
	if msg.DcaAmount.IsNil() || !msg.DcaAmount.IsPositive() {
		return ErrInvalidZeroAmount
	}
	if msg.DcaAmount.GT(msg.InitialAsset.Amount) {
		return ErrDepositTooSmall
	}
	if !msg.InitialAsset.Amount.Mod(msg.DcaAmount).IsZero() {
		return ErrIndivisibleDeposit
	}
	if msg.MaxHops > MaxAllowedHops {
		return ErrMaxHopsAssertion
	}
	if msg.MaxSpread != nil {
		if err := validateSpread(*msg.MaxSpread); err != nil {
			return err
		}
	}
	return nil
}

// GetSignBytes implements the sdk.Msg interface. It encodes the message for signing
func (msg *MsgCreateDcaOrder) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners implements the sdk.Msg interface. It defines whose signature is required
func (msg MsgCreateDcaOrder) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// Route implements the sdk.Msg interface. It should return the name of the module
func (msg MsgModifyDcaOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface. It should return the action.
func (msg MsgModifyDcaOrder) Type() string { return TypeMsgModifyDcaOrder }

// ValidateBasic implements the sdk.Msg interface. It runs stateless checks on the message
func (msg MsgModifyDcaOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, msg.Sender)
	}
	if msg.Id == 0 {
		return errors.Wrap(sdkerrors.ErrInvalidRequest, "order id cannot be zero")
	}
	if msg.NewInitialAsset != nil {
		if err := msg.NewInitialAsset.Validate(); err != nil {
			return err
		}
		if !msg.NewInitialAsset.Amount.IsPositive() {
			return ErrInvalidZeroAmount
		}
	}
	if msg.NewTargetAsset != nil {
		if err := msg.NewTargetAsset.Validate(); err != nil {
			return err
		}
	}
	if msg.NewDcaAmount != nil && !msg.NewDcaAmount.IsPositive() {
		return ErrInvalidZeroAmount
	}
	if msg.MaxHops > MaxAllowedHops {
		return ErrMaxHopsAssertion
	}
	if msg.MaxSpread != nil {
		if err := validateSpread(*msg.MaxSpread); err != nil {
			return err
		}
	}
	return nil
}

// GetSignBytes implements the sdk.Msg interface. It encodes the message for signing
func (msg *MsgModifyDcaOrder) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners implements the sdk.Msg interface. It defines whose signature is required
func (msg MsgModifyDcaOrder) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// Route implements the sdk.Msg interface. It should return the name of the module
func (msg MsgCancelDcaOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface. It should return the action.
func (msg MsgCancelDcaOrder) Type() string { return TypeMsgCancelDcaOrder }

// ValidateBasic implements the sdk.Msg interface. It runs stateless checks on the message
func (msg MsgCancelDcaOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, msg.Sender)
	}
	if msg.Id == 0 {
		return errors.Wrap(sdkerrors.ErrInvalidRequest, "order id cannot be zero")
	}
	return nil
}

// GetSignBytes implements the sdk.Msg interface. It encodes the message for signing
func (msg *MsgCancelDcaOrder) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners implements the sdk.Msg interface. It defines whose signature is required
func (msg MsgCancelDcaOrder) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// Route implements the sdk.Msg interface. It should return the name of the module
func (msg MsgPerformDcaPurchase) Route() string { return RouterKey }

// Type implements the sdk.Msg interface. It should return the action.
func (msg MsgPerformDcaPurchase) Type() string { return TypeMsgPerformDcaPurchase }

// ValidateBasic implements the sdk.Msg interface. It runs stateless checks on the message
func (msg MsgPerformDcaPurchase) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, msg.Sender)
	}
	if msg.Id == 0 {
		return errors.Wrap(sdkerrors.ErrInvalidRequest, "order id cannot be zero")
	}
	if len(msg.Hops) == 0 {
		return ErrEmptyHopRoute
	}
	for i := range msg.Hops {
		if err := msg.Hops[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GetSignBytes implements the sdk.Msg interface. It encodes the message for signing
func (msg *MsgPerformDcaPurchase) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners implements the sdk.Msg interface. It defines whose signature is required
func (msg MsgPerformDcaPurchase) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// Route implements the sdk.Msg interface. It should return the name of the module
func (msg MsgAddBotTip) Route() string { return RouterKey }

// Type implements the sdk.Msg interface. It should return the action.
func (msg MsgAddBotTip) Type() string { return TypeMsgAddBotTip }

// ValidateBasic implements the sdk.Msg interface. It runs stateless checks on the message
func (msg MsgAddBotTip) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, msg.Sender)
	}
	if err := msg.Asset.Validate(); err != nil {
		return err
	}
	if !msg.Asset.Amount.IsPositive() {
		return ErrInvalidZeroAmount
	}
	return nil
}

// GetSignBytes implements the sdk.Msg interface. It encodes the message for signing
func (msg *MsgAddBotTip) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners implements the sdk.Msg interface. It defines whose signature is required
func (msg MsgAddBotTip) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// Route implements the sdk.Msg interface. It should return the name of the module
func (msg MsgWithdrawTips) Route() string { return RouterKey }

// Type implements the sdk.Msg interface. It should return the action.
func (msg MsgWithdrawTips) Type() string { return TypeMsgWithdrawTips }

// ValidateBasic implements the sdk.Msg interface. It runs stateless checks on the message
func (msg MsgWithdrawTips) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, msg.Sender)
	}
	for i := range msg.Tips {
		if err := msg.Tips[i].Validate(); err != nil {
			return err
		}
		if !msg.Tips[i].Amount.IsPositive() {
			return ErrInvalidZeroAmount
		}
	}
	return nil
}

// GetSignBytes implements the sdk.Msg interface. It encodes the message for signing
func (msg *MsgWithdrawTips) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners implements the sdk.Msg interface. It defines whose signature is required
func (msg MsgWithdrawTips) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// Route implements the sdk.Msg interface. It should return the name of the module
func (msg MsgUpdateConfig) Route() string { return RouterKey }

// Type implements the sdk.Msg interface. It should return the action.
func (msg MsgUpdateConfig) Type() string { return TypeMsgUpdateConfig }

// ValidateBasic implements the sdk.Msg interface. It runs stateless checks on the message
func (msg MsgUpdateConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, msg.Sender)
	}
	if msg.MaxHops > MaxAllowedHops {
		return ErrMaxHopsAssertion
	}
	if msg.MaxSpread != nil {
		if err := validateSpread(*msg.MaxSpread); err != nil {
			return err
		}
	}
	for i := range msg.WhitelistedTokens {
		if err := msg.WhitelistedTokens[i].Validate(); err != nil {
			return err
		}
	}
	for i := range msg.WhitelistedTipFees {
		if err := msg.WhitelistedTipFees[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GetSignBytes implements the sdk.Msg interface. It encodes the message for signing
func (msg *MsgUpdateConfig) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners implements the sdk.Msg interface. It defines whose signature is required
func (msg MsgUpdateConfig) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// Route implements the sdk.Msg interface. It should return the name of the module
func (msg MsgUpdateUserConfig) Route() string { return RouterKey }

// Type implements the sdk.Msg interface. It should return the action.
func (msg MsgUpdateUserConfig) Type() string { return TypeMsgUpdateUserConfig }

// ValidateBasic implements the sdk.Msg interface. It runs stateless checks on the message
func (msg MsgUpdateUserConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrap(sdkerrors.ErrInvalidAddress, msg.Sender)
	}
	if msg.MaxHops > MaxAllowedHops {
		return ErrMaxHopsAssertion
	}
	if msg.MaxSpread != nil {
		if err := validateSpread(*msg.MaxSpread); err != nil {
			return err
		}
	}
	return nil
}

// GetSignBytes implements the sdk.Msg interface. It encodes the message for signing
func (msg *MsgUpdateUserConfig) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners implements the sdk.Msg interface. It defines whose signature is required
func (msg MsgUpdateUserConfig) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}
