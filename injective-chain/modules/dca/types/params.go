package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DefaultMaxHops caps purchase routes when neither the order nor the user
	// overrides it.
	DefaultMaxHops uint32 = 3

	// MaxAllowedHops bounds any configured or per-order hop cap.
	MaxAllowedHops uint32 = 32
)

// DefaultMaxSpread is the spread forwarded to the router when no override is
// configured.
var DefaultMaxSpread = math.LegacyNewDecWithPrec(5, 2) // 5%

// DefaultParams returns the default dca module parameters.
func DefaultParams() Params {
	return Params{
		MaxHops:            DefaultMaxHops,
		MaxSpread:          DefaultMaxSpread,
		WhitelistedTokens:  []AssetInfo{},
		WhitelistedTipFees: []TipFee{},
	}
}

// Validate performs basic validation of the module parameters.
func (p Params) Validate() error {
	if p.MaxHops == 0 || p.MaxHops > MaxAllowedHops {
		return errors.Wrapf(ErrInvalidAsset, "max hops must be within [1, %d]", MaxAllowedHops)
	}
	if err := validateSpread(p.MaxSpread); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(p.WhitelistedTokens))
	for i := range p.WhitelistedTokens {
		token := &p.WhitelistedTokens[i]
		if err := token.Validate(); err != nil {
			return err
		}
		if _, ok := seen[token.ID()]; ok {
			return errors.Wrapf(ErrInvalidAsset, "duplicate whitelisted token %s", token.ID())
		}
		seen[token.ID()] = struct{}{}
	}

	seenFees := make(map[string]struct{}, len(p.WhitelistedTipFees))
	for i := range p.WhitelistedTipFees {
		fee := &p.WhitelistedTipFees[i]
		if err := fee.Validate(); err != nil {
			return err
		}
		if _, ok := seenFees[fee.AssetInfo.ID()]; ok {
			return errors.Wrapf(ErrInvalidAsset, "duplicate tip fee asset %s", fee.AssetInfo.ID())
		}
		seenFees[fee.AssetInfo.ID()] = struct{}{}
	}

	if p.FactoryAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.FactoryAddress); err != nil {
			return errors.Wrapf(ErrInvalidAsset, "invalid factory address %s", p.FactoryAddress)
		}
	}
	if p.RouterAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.RouterAddress); err != nil {
			return errors.Wrapf(ErrInvalidAsset, "invalid router address %s", p.RouterAddress)
		}
	}
	return nil
}

// IsWhitelistedHopAsset reports whether the asset may appear as an
// intermediate hop of a purchase route.
func (p Params) IsWhitelistedHopAsset(asset *AssetInfo) bool {
	for i := range p.WhitelistedTokens {
		if p.WhitelistedTokens[i].Equal(asset) {
			return true
		}
	}
	return false
}

// TipFeeFor returns the per-hop fee entry of a tip asset, or nil when the
// asset is not whitelisted for tips.
func (p Params) TipFeeFor(asset *AssetInfo) *TipFee {
	for i := range p.WhitelistedTipFees {
		if p.WhitelistedTipFees[i].AssetInfo.Equal(asset) {
			return &p.WhitelistedTipFees[i]
		}
	}
	return nil
}

func validateSpread(spread math.LegacyDec) error {
	if spread.IsNil() || spread.IsNegative() || spread.GT(math.LegacyOneDec()) {
		return errors.Wrap(ErrInvalidAsset, "max spread must be within [0, 1]")
	}
	return nil
}
