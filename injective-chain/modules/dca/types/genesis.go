package types

import (
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultGenesisState returns the default genesis state: default params, no
// orders, first issued order id 1.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		NextOrderId: 1,
	}
}

// Validate performs basic genesis state validation: well-formed params, order
// invariants, unique ids consistent with the counter, and well-formed tip
// jars and user settings without duplicates.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextOrderId == 0 {
		return errors.Wrap(ErrInvalidGenesis, "next order id cannot be zero")
	}

	orderIDs := make(map[uint64]struct{}, len(gs.Orders))
	for i := range gs.Orders {
		order := &gs.Orders[i]
		if err := order.Validate(); err != nil {
			return errors.Wrapf(ErrInvalidGenesis, "order %d: %s", order.Id, err.Error())
		}
		if order.Id >= gs.NextOrderId {
			return errors.Wrapf(ErrInvalidGenesis, "order id %d is not below the next order id %d", order.Id, gs.NextOrderId)
		}
		if _, ok := orderIDs[order.Id]; ok {
			return errors.Wrapf(ErrInvalidGenesis, "duplicate order id %d", order.Id)
		}
		orderIDs[order.Id] = struct{}{}
	}

	jarOwners := make(map[string]struct{}, len(gs.TipJars))
	for i := range gs.TipJars {
		jars := &gs.TipJars[i]
		if _, err := sdk.AccAddressFromBech32(jars.Owner); err != nil {
			return errors.Wrapf(ErrInvalidGenesis, "invalid tip jar owner %s", jars.Owner)
		}
		if _, ok := jarOwners[jars.Owner]; ok {
			return errors.Wrapf(ErrInvalidGenesis, "duplicate tip jar owner %s", jars.Owner)
		}
		jarOwners[jars.Owner] = struct{}{}

		seen := make(map[string]struct{}, len(jars.Jars))
		for j := range jars.Jars {
			jar := &jars.Jars[j]
			if err := jar.Validate(); err != nil {
				return errors.Wrapf(ErrInvalidGenesis, "tip jar of %s: %s", jars.Owner, err.Error())
			}
			if !jar.Amount.IsPositive() {
				return errors.Wrapf(ErrInvalidGenesis, "tip jar of %s for %s is not positive", jars.Owner, jar.Info.ID())
			}
			if _, ok := seen[jar.Info.ID()]; ok {
				return errors.Wrapf(ErrInvalidGenesis, "duplicate tip jar asset %s of %s", jar.Info.ID(), jars.Owner)
			}
			seen[jar.Info.ID()] = struct{}{}
		}
	}

	settingsOwners := make(map[string]struct{}, len(gs.UserSettings))
	for i := range gs.UserSettings {
		entry := &gs.UserSettings[i]
		if _, err := sdk.AccAddressFromBech32(entry.Owner); err != nil {
			return errors.Wrapf(ErrInvalidGenesis, "invalid user settings owner %s", entry.Owner)
		}
		if _, ok := settingsOwners[entry.Owner]; ok {
			return errors.Wrapf(ErrInvalidGenesis, "duplicate user settings owner %s", entry.Owner)
		}
		settingsOwners[entry.Owner] = struct{}{}
		if err := entry.Settings.Validate(); err != nil {
			return errors.Wrapf(ErrInvalidGenesis, "user settings of %s: %s", entry.Owner, err.Error())
		}
	}

	return nil
}
