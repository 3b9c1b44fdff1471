package keeper

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

// ExecuteDcaPurchase runs one purchase of the order over the supplied hop
// route: it validates the route against the order and the module config,
// debits the order deposit and the owner's tip jar, submits the swap to the
// router with the owner as recipient, and pays the tip to the bot. The order
// is removed once its deposit is exhausted.
func (k *Keeper) ExecuteDcaPurchase(
	ctx sdk.Context,
	bot sdk.AccAddress,
	id uint64,
	hops []types.SwapOperation,
) (finished bool, tipPaid types.Asset, err error) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	order := k.GetDcaOrder(ctx, id)
	if order == nil {
		metrics.ReportFuncError(k.svcTags)
		return false, types.Asset{}, errors.Wrapf(types.ErrNonExistentDca, "order %d", id)
	}

	owner := sdk.MustAccAddressFromBech32(order.Owner)
	params := k.GetParams(ctx)
	userSettings := k.GetUserSettings(ctx, owner)

	if err := k.validateHopRoute(order, userSettings, params, hops); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return false, types.Asset{}, err
	}

	now := uint64(ctx.BlockTime().Unix())
	if !order.IsPurchaseDue(now) {
		metrics.ReportFuncError(k.svcTags)
		return false, types.Asset{}, errors.Wrapf(types.ErrPurchaseTooEarly, "due at %d, block time %d", order.PurchaseDueAt(), now)
	}

	if order.DcaAmount.GT(order.InitialAsset.Amount) {
		metrics.ReportFuncError(k.svcTags)
		return false, types.Asset{}, errors.Wrapf(types.ErrInsufficientBalance, "deposit %s cannot cover purchase %s",
			order.InitialAsset.Amount.String(), order.DcaAmount.String())
	}

	tip, err := k.selectTipJar(ctx, owner, params, uint64(len(hops)))
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return false, types.Asset{}, err
	}

	// state first, outbound transfers after, all in one tx
	order.InitialAsset.Amount = order.InitialAsset.Amount.Sub(order.DcaAmount)
	order.LastPurchase = now

	jar := k.GetTipJar(ctx, owner, tip.Info.ID())
	jar.Amount = jar.Amount.Sub(tip.Amount)
	k.SetTipJar(ctx, owner, *jar)

	purchased := types.Asset{Info: hops[0].OfferAssetInfo, Amount: order.DcaAmount}
	spread := order.EffectiveMaxSpread(userSettings, params)

	if err := k.submitSwap(ctx, order, owner, purchased, hops, spread); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return false, types.Asset{}, err
	}

	if err := k.payTip(ctx, bot, tip); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return false, types.Asset{}, err
	}

	if order.InitialAsset.Amount.IsZero() {
		k.DeleteDcaOrder(ctx, order)
		k.EmitEvent(ctx, &types.EventDcaPurchaseFinished{
			Id:    order.Id,
			Owner: order.Owner,
		})
		return true, tip, nil
	}

	k.SetDcaOrder(ctx, order)
	k.EmitEvent(ctx, &types.EventDcaPurchaseExecuted{
		Id:        order.Id,
		Owner:     order.Owner,
		Bot:       bot.String(),
		Purchased: purchased,
		Tip:       tip,
		Remaining: order.InitialAsset.Amount,
	})
	return false, tip, nil
}

// validateHopRoute checks the bot-supplied route against the order: hop count
// within the effective cap, no native pair swaps, a contiguous path starting
// from the deposit asset and ending in the target asset, and every
// intermediate asset whitelisted.
func (k *Keeper) validateHopRoute(
	order *types.DcaOrder,
	userSettings *types.UserSettings,
	params types.Params,
	hops []types.SwapOperation,
) error {
	if len(hops) == 0 {
		return types.ErrEmptyHopRoute
	}

	maxHops := order.EffectiveMaxHops(userSettings, params)
	if uint32(len(hops)) > maxHops {
		return errors.Wrapf(types.ErrMaxHopsAssertion, "route has %d hops, max is %d", len(hops), maxHops)
	}

	for i := range hops {
		hop := &hops[i]
		if hop.NativePair || (hop.OfferAssetInfo.IsNative() && hop.AskAssetInfo.IsNative()) {
			return errors.Wrapf(types.ErrNativeSwapNotSupported, "hop %d", i)
		}
		if i > 0 && !hops[i-1].AskAssetInfo.Equal(&hop.OfferAssetInfo) {
			return errors.Wrapf(types.ErrInvalidHopRoute, "hop %d does not continue from hop %d", i, i-1)
		}
	}

	if !hops[0].OfferAssetInfo.Equal(&order.InitialAsset.Info) {
		return errors.Wrapf(types.ErrInitialAssetAssertion, "route starts from %s", hops[0].OfferAssetInfo.ID())
	}
	if !hops[len(hops)-1].AskAssetInfo.Equal(&order.TargetAsset) {
		return errors.Wrapf(types.ErrTargetAssetAssertion, "route ends in %s", hops[len(hops)-1].AskAssetInfo.ID())
	}

	for i := 0; i < len(hops)-1; i++ {
		if !params.IsWhitelistedHopAsset(&hops[i].AskAssetInfo) {
			return errors.Wrapf(types.ErrInvalidHopRoute, "intermediate asset %s is not whitelisted", hops[i].AskAssetInfo.ID())
		}
	}

	return nil
}

// selectTipJar picks the first jar of the owner, in stored order, whose
// balance covers the per-hop fee times the hop count.
func (k *Keeper) selectTipJar(ctx sdk.Context, owner sdk.AccAddress, params types.Params, hopCount uint64) (types.Asset, error) {
	var (
		selected types.Asset
		found    bool
	)

	k.IterateTipJars(ctx, owner, func(jar types.Asset) bool {
		fee := params.TipFeeFor(&jar.Info)
		if fee == nil {
			return false
		}

		required := fee.PerHopFee.Mul(math.NewIntFromUint64(hopCount))
		if jar.Amount.LT(required) {
			return false
		}

		selected = types.Asset{Info: jar.Info, Amount: required}
		found = true
		return true
	})

	if !found {
		return types.Asset{}, errors.Wrapf(types.ErrInsufficientTipBalance, "no jar of %s covers %d hops", owner.String(), hopCount)
	}
	return selected, nil
}

// submitSwap hands the purchase amount to the router. Native deposits travel
// as funds attached from the module escrow, cw20 deposits are pulled from the
// owner's allowance directly to the router.
func (k *Keeper) submitSwap(
	ctx sdk.Context,
	order *types.DcaOrder,
	owner sdk.AccAddress,
	purchased types.Asset,
	hops []types.SwapOperation,
	spread math.LegacyDec,
) error {
	params := k.GetParams(ctx)
	if params.RouterAddress == "" {
		return errors.Wrap(types.ErrInvalidHopRoute, "no router contract configured")
	}

	if purchased.Info.IsNative() {
		return k.ExecuteRouterSwap(ctx, hops, spread, owner, sdk.NewCoins(purchased.Coin()))
	}

	routerAddr := sdk.MustAccAddressFromBech32(params.RouterAddress)
	if err := k.ExecuteTokenTransferFrom(ctx, purchased.Info.ContractAddress, owner, routerAddr, purchased.Amount); err != nil {
		return errors.Wrap(types.ErrInvalidTokenDeposit, err.Error())
	}
	return k.ExecuteRouterSwap(ctx, hops, spread, owner, sdk.Coins{})
}

// payTip moves the selected tip from the module-held jar balance to the bot.
func (k *Keeper) payTip(ctx sdk.Context, bot sdk.AccAddress, tip types.Asset) error {
	if tip.Info.IsNative() {
		coins := sdk.NewCoins(tip.Coin())
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, bot, coins); err != nil {
			k.Logger(ctx).Error("tip payout failed", "bot", bot.String(), "coin", coins.String())
			return errors.Wrap(err, "tip payout failed")
		}
		return nil
	}
	return k.ExecuteTokenTransfer(ctx, tip.Info.ContractAddress, bot, tip.Amount)
}
