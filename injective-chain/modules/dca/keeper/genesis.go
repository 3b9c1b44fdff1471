package keeper

import (
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

func (k *Keeper) InitGenesis(ctx sdk.Context, data types.GenesisState) {
	if err := data.Validate(); err != nil {
		panic(err)
	}

	k.SetParams(ctx, data.Params)
	k.setNextOrderID(ctx, data.NextOrderId)

	for i := range data.Orders {
		order := data.Orders[i]
		k.SetDcaOrder(ctx, &order)
	}

	for _, jars := range data.TipJars {
		owner, err := sdk.AccAddressFromBech32(jars.Owner)
		if err != nil {
			panic(err)
		}
		for _, jar := range jars.Jars {
			k.SetTipJar(ctx, owner, jar)
		}
	}

	for _, entry := range data.UserSettings {
		owner, err := sdk.AccAddressFromBech32(entry.Owner)
		if err != nil {
			panic(err)
		}
		k.SetUserSettings(ctx, owner, entry.Settings)
	}
}

func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:       k.GetParams(ctx),
		NextOrderId:  k.PeekNextOrderID(ctx),
		Orders:       k.GetAllDcaOrders(ctx),
		TipJars:      k.GetAllTipJars(ctx),
		UserSettings: k.GetAllUserSettings(ctx),
	}
}

// GetAllTipJars returns every owner's jars, grouped per owner in stored
// order.
func (k *Keeper) GetAllTipJars(ctx sdk.Context) []types.TipJars {
	jarsStore := prefix.NewStore(k.getStore(ctx), types.TipJarsPrefix)

	all := make([]types.TipJars, 0)
	iterateSafe(jarsStore.Iterator(nil, nil), func(key, v []byte) bool {
		// key layout: length-prefixed owner ++ asset id
		owner := sdk.AccAddress(key[1 : 1+key[0]])

		var jar types.Asset
		k.cdc.MustUnmarshal(v, &jar)

		if n := len(all); n > 0 && all[n-1].Owner == owner.String() {
			all[n-1].Jars = append(all[n-1].Jars, jar)
			return false
		}
		all = append(all, types.TipJars{Owner: owner.String(), Jars: []types.Asset{jar}})
		return false
	})

	return all
}

// GetAllUserSettings returns every stored per-user override entry.
func (k *Keeper) GetAllUserSettings(ctx sdk.Context) []types.UserSettingsEntry {
	settingsStore := prefix.NewStore(k.getStore(ctx), types.UserSettingsPrefix)

	all := make([]types.UserSettingsEntry, 0)
	iterateSafe(settingsStore.Iterator(nil, nil), func(key, v []byte) bool {
		var settings types.UserSettings
		k.cdc.MustUnmarshal(v, &settings)

		all = append(all, types.UserSettingsEntry{
			Owner:    sdk.AccAddress(key).String(),
			Settings: settings,
		})
		return false
	})

	return all
}
