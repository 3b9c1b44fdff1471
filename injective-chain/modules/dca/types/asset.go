package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// IsNative reports whether the asset is a native bank denom rather than a
// CW20 token.
func (a *AssetInfo) IsNative() bool {
	return a.Denom != ""
}

// IsEmpty reports whether neither identity field is set.
func (a *AssetInfo) IsEmpty() bool {
	return a.Denom == "" && a.ContractAddress == ""
}

// ID returns the identity string of the asset: the bank denom for native
// assets, the contract address for CW20 tokens. Index keys are built from it.
func (a *AssetInfo) ID() string {
	if a.IsNative() {
		return a.Denom
	}
	return a.ContractAddress
}

// Validate checks that exactly one identity field is set and well formed.
func (a *AssetInfo) Validate() error {
	switch {
	case a.Denom != "" && a.ContractAddress != "":
		return errors.Wrap(ErrInvalidAsset, "asset cannot be both native and contract-issued")
	case a.Denom != "":
		if err := sdk.ValidateDenom(a.Denom); err != nil {
			return errors.Wrap(ErrInvalidAsset, err.Error())
		}
	case a.ContractAddress != "":
		if _, err := sdk.AccAddressFromBech32(a.ContractAddress); err != nil {
			return errors.Wrapf(ErrInvalidAsset, "invalid contract address %s", a.ContractAddress)
		}
	default:
		return errors.Wrap(ErrInvalidAsset, "asset identity is empty")
	}
	return nil
}

// NewNativeAsset returns an Asset for a bank denom.
func NewNativeAsset(denom string, amount math.Int) Asset {
	return Asset{
		Info:   AssetInfo{Denom: denom},
		Amount: amount,
	}
}

// NewTokenAsset returns an Asset for a CW20 token contract.
func NewTokenAsset(contractAddress string, amount math.Int) Asset {
	return Asset{
		Info:   AssetInfo{ContractAddress: contractAddress},
		Amount: amount,
	}
}

// Validate checks the asset identity and that the amount is initialized and
// non-negative.
func (a *Asset) Validate() error {
	if err := a.Info.Validate(); err != nil {
		return err
	}
	if a.Amount.IsNil() || a.Amount.IsNegative() {
		return errors.Wrap(ErrInvalidAsset, "asset amount must be non-negative")
	}
	return nil
}

// Coin converts a native asset to an sdk.Coin. It must not be called on
// contract-issued assets.
func (a *Asset) Coin() sdk.Coin {
	return sdk.NewCoin(a.Info.Denom, a.Amount)
}

// Validate checks both hop endpoints and rejects native-pair swaps, which the
// router does not execute for DCA purchases.
func (op *SwapOperation) Validate() error {
	if err := op.OfferAssetInfo.Validate(); err != nil {
		return err
	}
	if err := op.AskAssetInfo.Validate(); err != nil {
		return err
	}
	if op.OfferAssetInfo.Equal(&op.AskAssetInfo) {
		return errors.Wrap(ErrInvalidAsset, "hop offer and ask assets are the same")
	}
	return nil
}

// Validate checks the fee asset identity and that the per-hop fee is positive.
func (f *TipFee) Validate() error {
	if err := f.AssetInfo.Validate(); err != nil {
		return err
	}
	if f.PerHopFee.IsNil() || !f.PerHopFee.IsPositive() {
		return ErrInvalidTipAmount
	}
	return nil
}
