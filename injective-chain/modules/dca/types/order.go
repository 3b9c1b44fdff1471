package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Validate checks the order-level invariants that must hold for every stored
// order: valid owner and assets, distinct initial and target assets, a
// positive interval, and a deposit that the per-purchase amount divides.
func (o *DcaOrder) Validate() error {
	if o.Id == 0 {
		return errors.Wrap(ErrNonExistentDca, "order id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(o.Owner); err != nil {
		return errors.Wrapf(ErrInvalidAsset, "invalid owner address %s", o.Owner)
	}
	if err := o.InitialAsset.Validate(); err != nil {
		return err
	}
	if err := o.TargetAsset.Validate(); err != nil {
		return err
	}
	if o.InitialAsset.Info.Equal(&o.TargetAsset) {
		return ErrDuplicateAsset
	}
	if o.Interval == 0 {
		return errors.Wrap(ErrInvalidAsset, "purchase interval cannot be zero")
	}
	if o.DcaAmount.IsNil() || !o.DcaAmount.IsPositive() {
		return ErrInvalidZeroAmount
	}
	if o.DcaAmount.GT(o.InitialAsset.Amount) {
		return ErrDepositTooSmall
	}
	if !o.InitialAsset.Amount.Mod(o.DcaAmount).IsZero() {
		return ErrIndivisibleDeposit
	}
	if o.MaxSpread != nil {
		if err := validateSpread(*o.MaxSpread); err != nil {
			return err
		}
	}
	return nil
}

// EffectiveMaxHops resolves the hop cap for this order: the per-order
// override wins, then the per-user override, then the module default.
func (o *DcaOrder) EffectiveMaxHops(userSettings *UserSettings, params Params) uint32 {
	if o.MaxHops != 0 {
		return o.MaxHops
	}
	if userSettings != nil && userSettings.MaxHops != 0 {
		return userSettings.MaxHops
	}
	return params.MaxHops
}

// EffectiveMaxSpread resolves the max spread forwarded to the router, with
// the same order → user → module precedence as EffectiveMaxHops.
func (o *DcaOrder) EffectiveMaxSpread(userSettings *UserSettings, params Params) math.LegacyDec {
	if o.MaxSpread != nil {
		return *o.MaxSpread
	}
	if userSettings != nil && userSettings.MaxSpread != nil {
		return *userSettings.MaxSpread
	}
	return params.MaxSpread
}

// PurchaseDueAt returns the earliest time at which the next purchase is
// accepted. A zero last_purchase means the order has never executed.
func (o *DcaOrder) PurchaseDueAt() uint64 {
	if o.StartPurchase != 0 && o.LastPurchase == 0 {
		return o.StartPurchase
	}
	return o.LastPurchase + o.Interval
}

// IsPurchaseDue reports whether a purchase at the given block time passes the
// timing gate. A purchase exactly on the interval boundary is accepted.
func (o *DcaOrder) IsPurchaseDue(now uint64) bool {
	if o.StartPurchase > now {
		return false
	}
	if o.LastPurchase == 0 {
		return true
	}
	return o.LastPurchase+o.Interval <= now
}

// Validate checks the per-user override values.
func (s *UserSettings) Validate() error {
	if s.MaxSpread != nil {
		return validateSpread(*s.MaxSpread)
	}
	return nil
}

// IsEmpty reports whether no override is set, in which case the settings
// entry is pruned rather than stored.
func (s *UserSettings) IsEmpty() bool {
	return s.MaxHops == 0 && s.MaxSpread == nil
}
