package keeper

import (
	"cosmossdk.io/store/prefix"
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

// GetTipJar returns the owner's jar for the tip asset, or nil when no balance
// is held. Zero balances are never stored.
func (k *Keeper) GetTipJar(ctx sdk.Context, owner sdk.AccAddress, assetID string) *types.Asset {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	jarsStore := prefix.NewStore(k.getStore(ctx), types.TipJarsPrefix)
	bz := jarsStore.Get(types.GetTipJarKey(owner, assetID))
	if bz == nil {
		return nil
	}

	var jar types.Asset
	k.cdc.MustUnmarshal(bz, &jar)
	return &jar
}

// SetTipJar stores the jar, pruning it when the balance reached zero.
func (k *Keeper) SetTipJar(ctx sdk.Context, owner sdk.AccAddress, jar types.Asset) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	jarsStore := prefix.NewStore(k.getStore(ctx), types.TipJarsPrefix)
	key := types.GetTipJarKey(owner, jar.Info.ID())

	if jar.Amount.IsZero() {
		jarsStore.Delete(key)
		return
	}

	jarsStore.Set(key, k.cdc.MustMarshal(&jar))
}

// CreditTipJar adds the amount to the owner's jar for the asset, creating the
// jar when absent.
func (k *Keeper) CreditTipJar(ctx sdk.Context, owner sdk.AccAddress, asset types.Asset) types.Asset {
	jar := k.GetTipJar(ctx, owner, asset.Info.ID())
	if jar == nil {
		jar = &types.Asset{Info: asset.Info, Amount: asset.Amount}
	} else {
		jar.Amount = jar.Amount.Add(asset.Amount)
	}

	k.SetTipJar(ctx, owner, *jar)
	return *jar
}

// IterateTipJars iterates over the owner's jars in stored (asset id) order.
func (k *Keeper) IterateTipJars(ctx sdk.Context, owner sdk.AccAddress, process func(jar types.Asset) (stop bool)) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	jarsStore := prefix.NewStore(k.getStore(ctx), append(types.TipJarsPrefix, types.GetTipJarsPrefix(owner)...))

	iterateSafe(jarsStore.Iterator(nil, nil), func(_, v []byte) bool {
		var jar types.Asset
		k.cdc.MustUnmarshal(v, &jar)
		return process(jar)
	})
}

// GetUserTips returns all jars held for the owner.
func (k *Keeper) GetUserTips(ctx sdk.Context, owner sdk.AccAddress) []types.Asset {
	jars := make([]types.Asset, 0)
	k.IterateTipJars(ctx, owner, func(jar types.Asset) bool {
		jars = append(jars, jar)
		return false
	})
	return jars
}

// GetUserSettings returns the owner's per-user overrides, or nil when none
// are set.
func (k *Keeper) GetUserSettings(ctx sdk.Context, owner sdk.AccAddress) *types.UserSettings {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	settingsStore := prefix.NewStore(k.getStore(ctx), types.UserSettingsPrefix)
	bz := settingsStore.Get(types.GetUserSettingsKey(owner))
	if bz == nil {
		return nil
	}

	var settings types.UserSettings
	k.cdc.MustUnmarshal(bz, &settings)
	return &settings
}

// SetUserSettings stores the overrides, pruning the entry when every override
// is cleared.
func (k *Keeper) SetUserSettings(ctx sdk.Context, owner sdk.AccAddress, settings types.UserSettings) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	settingsStore := prefix.NewStore(k.getStore(ctx), types.UserSettingsPrefix)
	key := types.GetUserSettingsKey(owner)

	if settings.IsEmpty() {
		settingsStore.Delete(key)
		return
	}

	settingsStore.Set(key, k.cdc.MustMarshal(&settings))
}
