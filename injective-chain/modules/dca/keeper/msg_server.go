package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
	svcTags metrics.Tags
}

// NewMsgServerImpl returns an implementation of the dca MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{
		Keeper: keeper,
		svcTags: metrics.Tags{
			"svc": "dca_h",
		},
	}
}

func (k msgServer) CreateDcaOrder(goCtx context.Context, msg *types.MsgCreateDcaOrder) (*types.MsgCreateDcaOrderResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, k.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)

	// We are sure the Sender is a valid address because it is validated in the ValidateBasic method
	senderAddr := sdk.MustAccAddressFromBech32(msg.Sender)

	now := uint64(ctx.BlockTime().Unix())
	if msg.StartPurchase != 0 && msg.StartPurchase < now {
		metrics.ReportFuncError(k.svcTags)
		return nil, errors.Wrapf(types.ErrStartTimeInPast, "start %d is before block time %d", msg.StartPurchase, now)
	}

	id, err := k.nextOrderID(ctx)
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return nil, err
	}

	order := &types.DcaOrder{
		Id:            id,
		Owner:         msg.Sender,
		InitialAsset:  msg.InitialAsset,
		TargetAsset:   msg.TargetAsset,
		Interval:      msg.Interval,
		DcaAmount:     msg.DcaAmount,
		LastPurchase:  0,
		StartPurchase: msg.StartPurchase,
		MaxHops:       msg.MaxHops,
		MaxSpread:     msg.MaxSpread,
	}

	if err := order.Validate(); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return nil, err
	}

	if err := k.fundOrder(ctx, senderAddr, order.InitialAsset); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return nil, err
	}

	k.SetDcaOrder(ctx, order)

	k.EmitEvent(ctx, &types.EventCreateDcaOrder{
		Order: *order,
	})

	return &types.MsgCreateDcaOrderResponse{Id: id}, nil
}

func (k msgServer) ModifyDcaOrder(goCtx context.Context, msg *types.MsgModifyDcaOrder) (*types.MsgModifyDcaOrderResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, k.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)
	senderAddr := sdk.MustAccAddressFromBech32(msg.Sender)

	order := k.GetDcaOrder(ctx, msg.Id)
	if order == nil {
		metrics.ReportFuncError(k.svcTags)
		return nil, errors.Wrapf(types.ErrNonExistentDca, "order %d", msg.Id)
	}
	if order.Owner != msg.Sender {
		metrics.ReportFuncError(k.svcTags)
		return nil, errors.Wrapf(types.ErrUnauthorized, "order %d belongs to %s", order.Id, order.Owner)
	}

	now := uint64(ctx.BlockTime().Unix())
	if msg.StartPurchase != 0 {
		if msg.StartPurchase < now {
			metrics.ReportFuncError(k.svcTags)
			return nil, errors.Wrapf(types.ErrStartTimeInPast, "start %d is before block time %d", msg.StartPurchase, now)
		}
		order.StartPurchase = msg.StartPurchase
	}

	if msg.NewInitialAsset != nil {
		if err := k.refundDeposit(ctx, senderAddr, order, msg.NewInitialAsset); err != nil {
			metrics.ReportFuncError(k.svcTags)
			return nil, err
		}
		order.InitialAsset = *msg.NewInitialAsset
	}
	if msg.NewTargetAsset != nil {
		order.TargetAsset = *msg.NewTargetAsset
	}
	if msg.NewInterval != 0 {
		order.Interval = msg.NewInterval
	}
	if msg.NewDcaAmount != nil {
		order.DcaAmount = *msg.NewDcaAmount
	}
	if msg.ShouldResetPurchaseTime {
		order.LastPurchase = 0
	}
	if msg.MaxHops != 0 {
		order.MaxHops = msg.MaxHops
	}
	if msg.MaxSpread != nil {
		order.MaxSpread = msg.MaxSpread
	}

	// the modified order must satisfy the same invariants as a fresh one
	if err := order.Validate(); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return nil, err
	}

	k.SetDcaOrder(ctx, order)

	k.EmitEvent(ctx, &types.EventModifyDcaOrder{
		Order: *order,
	})

	return &types.MsgModifyDcaOrderResponse{}, nil
}

func (k msgServer) CancelDcaOrder(goCtx context.Context, msg *types.MsgCancelDcaOrder) (*types.MsgCancelDcaOrderResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, k.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)
	senderAddr := sdk.MustAccAddressFromBech32(msg.Sender)

	order := k.GetDcaOrder(ctx, msg.Id)
	if order == nil {
		metrics.ReportFuncError(k.svcTags)
		return nil, errors.Wrapf(types.ErrNonExistentDca, "order %d", msg.Id)
	}
	if order.Owner != msg.Sender {
		metrics.ReportFuncError(k.svcTags)
		return nil, errors.Wrapf(types.ErrUnauthorized, "order %d belongs to %s", order.Id, order.Owner)
	}

	var refund *types.Asset
	if order.InitialAsset.Info.IsNative() && order.InitialAsset.Amount.IsPositive() {
		refundCoins := sdk.NewCoins(order.InitialAsset.Coin())
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, senderAddr, refundCoins); err != nil {
			metrics.ReportFuncError(k.svcTags)
			k.Logger(ctx).Error("order escrow refund failed", "owner", msg.Sender, "coin", refundCoins.String())
			return nil, errors.Wrap(err, "refund failed")
		}
		refund = &order.InitialAsset
	}

	k.DeleteDcaOrder(ctx, order)

	k.EmitEvent(ctx, &types.EventCancelDcaOrder{
		Id:     order.Id,
		Owner:  order.Owner,
		Refund: refund,
	})

	return &types.MsgCancelDcaOrderResponse{}, nil
}

func (k msgServer) PerformDcaPurchase(goCtx context.Context, msg *types.MsgPerformDcaPurchase) (*types.MsgPerformDcaPurchaseResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, k.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)
	botAddr := sdk.MustAccAddressFromBech32(msg.Sender)

	finished, tipPaid, err := k.ExecuteDcaPurchase(ctx, botAddr, msg.Id, msg.Hops)
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return nil, err
	}

	return &types.MsgPerformDcaPurchaseResponse{
		Finished: finished,
		TipPaid:  tipPaid,
	}, nil
}

func (k msgServer) AddBotTip(goCtx context.Context, msg *types.MsgAddBotTip) (*types.MsgAddBotTipResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, k.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)
	senderAddr := sdk.MustAccAddressFromBech32(msg.Sender)

	params := k.GetParams(ctx)
	if params.TipFeeFor(&msg.Asset.Info) == nil {
		metrics.ReportFuncError(k.svcTags)
		return nil, errors.Wrapf(types.ErrInvalidBotTipToken, "asset %s", msg.Asset.Info.ID())
	}

	if msg.Asset.Info.IsNative() {
		depositCoins := sdk.NewCoins(msg.Asset.Coin())
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, senderAddr, types.ModuleName, depositCoins); err != nil {
			metrics.ReportFuncError(k.svcTags)
			k.Logger(ctx).Error("tip deposit failed", "owner", msg.Sender, "coin", depositCoins.String())
			return nil, errors.Wrap(err, "tip deposit failed")
		}
	} else {
		if err := k.ExecuteTokenTransferFrom(ctx, msg.Asset.Info.ContractAddress, senderAddr, k.moduleAddress, msg.Asset.Amount); err != nil {
			metrics.ReportFuncError(k.svcTags)
			return nil, err
		}
	}

	k.CreditTipJar(ctx, senderAddr, msg.Asset)

	k.EmitEvent(ctx, &types.EventAddBotTip{
		Owner: msg.Sender,
		Asset: msg.Asset,
	})

	return &types.MsgAddBotTipResponse{}, nil
}

func (k msgServer) WithdrawTips(goCtx context.Context, msg *types.MsgWithdrawTips) (*types.MsgWithdrawTipsResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, k.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)
	senderAddr := sdk.MustAccAddressFromBech32(msg.Sender)

	// an empty request drains every jar the owner holds
	requested := msg.Tips
	if len(requested) == 0 {
		requested = k.GetUserTips(ctx, senderAddr)
	}

	withdrawn := make([]types.Asset, 0, len(requested))
	for i := range requested {
		tip := requested[i]

		jar := k.GetTipJar(ctx, senderAddr, tip.Info.ID())
		if jar == nil {
			metrics.ReportFuncError(k.svcTags)
			return nil, errors.Wrapf(types.ErrNonExistentTipJar, "asset %s", tip.Info.ID())
		}
		if tip.Amount.GT(jar.Amount) {
			metrics.ReportFuncError(k.svcTags)
			return nil, errors.Wrapf(types.ErrInsufficientTipWithdrawBalance, "jar %s holds %s, requested %s",
				tip.Info.ID(), jar.Amount.String(), tip.Amount.String())
		}

		jar.Amount = jar.Amount.Sub(tip.Amount)
		k.SetTipJar(ctx, senderAddr, *jar)

		if err := k.payOut(ctx, senderAddr, tip); err != nil {
			metrics.ReportFuncError(k.svcTags)
			return nil, err
		}

		withdrawn = append(withdrawn, tip)
	}

	k.EmitEvent(ctx, &types.EventWithdrawTips{
		Owner: msg.Sender,
		Tips:  withdrawn,
	})

	return &types.MsgWithdrawTipsResponse{Withdrawn: withdrawn}, nil
}

func (k msgServer) UpdateConfig(goCtx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, k.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)

	factoryOwner, err := k.QueryFactoryOwner(ctx)
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return nil, err
	}
	if factoryOwner != msg.Sender {
		metrics.ReportFuncError(k.svcTags)
		return nil, errors.Wrapf(types.ErrUnauthorized, "sender %s is not the factory owner", msg.Sender)
	}

	params := k.GetParams(ctx)
	if msg.MaxHops != 0 {
		params.MaxHops = msg.MaxHops
	}
	if msg.MaxSpread != nil {
		params.MaxSpread = *msg.MaxSpread
	}
	if len(msg.WhitelistedTokens) > 0 {
		params.WhitelistedTokens = msg.WhitelistedTokens
	}
	if len(msg.WhitelistedTipFees) > 0 {
		params.WhitelistedTipFees = msg.WhitelistedTipFees
	}

	if err := params.Validate(); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return nil, err
	}

	k.SetParams(ctx, params)

	k.EmitEvent(ctx, &types.EventUpdateConfig{
		Sender: msg.Sender,
	})

	return &types.MsgUpdateConfigResponse{}, nil
}

func (k msgServer) UpdateUserConfig(goCtx context.Context, msg *types.MsgUpdateUserConfig) (*types.MsgUpdateUserConfigResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, k.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)
	senderAddr := sdk.MustAccAddressFromBech32(msg.Sender)

	settings := types.UserSettings{
		MaxHops:   msg.MaxHops,
		MaxSpread: msg.MaxSpread,
	}
	if err := settings.Validate(); err != nil {
		metrics.ReportFuncError(k.svcTags)
		return nil, err
	}

	k.SetUserSettings(ctx, senderAddr, settings)

	k.EmitEvent(ctx, &types.EventUpdateUserConfig{
		Owner: msg.Sender,
	})

	return &types.MsgUpdateUserConfigResponse{}, nil
}

// fundOrder secures the deposit backing an order. Native deposits are moved
// into the module escrow in full; contract-issued deposits stay with the
// owner behind an allowance that must already cover the amount.
func (k msgServer) fundOrder(ctx sdk.Context, owner sdk.AccAddress, deposit types.Asset) error {
	if deposit.Info.IsNative() {
		depositCoins := sdk.NewCoins(deposit.Coin())
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, depositCoins); err != nil {
			k.Logger(ctx).Error("order deposit failed", "owner", owner.String(), "coin", depositCoins.String())
			return errors.Wrap(types.ErrInvalidNativeTokenDeposit, err.Error())
		}
		return nil
	}

	allowance, err := k.QueryTokenAllowance(ctx, deposit.Info.ContractAddress, owner.String())
	if err != nil {
		return err
	}
	if allowance.LT(deposit.Amount) {
		return errors.Wrapf(types.ErrInvalidTokenDeposit, "allowance %s does not cover deposit %s",
			allowance.String(), deposit.Amount.String())
	}
	return nil
}

// refundDeposit settles the funding delta when an order's deposit changes.
// A same-asset increase funds the difference, a decrease refunds it, and an
// asset swap refunds the whole old deposit before funding the new one.
func (k msgServer) refundDeposit(ctx sdk.Context, owner sdk.AccAddress, order *types.DcaOrder, newDeposit *types.Asset) error {
	old := order.InitialAsset

	if old.Info.Equal(&newDeposit.Info) {
		switch {
		case newDeposit.Amount.GT(old.Amount):
			delta := types.Asset{Info: newDeposit.Info, Amount: newDeposit.Amount.Sub(old.Amount)}
			if delta.Info.IsNative() {
				return k.fundOrder(ctx, owner, delta)
			}
			// cw20 deposits are allowance-backed, so re-check the full amount
			return k.fundOrder(ctx, owner, *newDeposit)
		case newDeposit.Amount.LT(old.Amount):
			// cw20 deposits never left the owner, only native escrow is returned
			if !old.Info.IsNative() {
				return nil
			}
			delta := types.Asset{Info: old.Info, Amount: old.Amount.Sub(newDeposit.Amount)}
			return k.payOut(ctx, owner, delta)
		default:
			return nil
		}
	}

	if old.Info.IsNative() && old.Amount.IsPositive() {
		if err := k.payOut(ctx, owner, old); err != nil {
			return err
		}
	}
	return k.fundOrder(ctx, owner, *newDeposit)
}

// payOut transfers module-held value to the recipient: a bank send for native
// assets, a cw20 transfer for contract-issued ones.
func (k msgServer) payOut(ctx sdk.Context, recipient sdk.AccAddress, asset types.Asset) error {
	if asset.Amount.IsZero() {
		return nil
	}
	if asset.Info.IsNative() {
		coins := sdk.NewCoins(asset.Coin())
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
			k.Logger(ctx).Error("module payout failed", "recipient", recipient.String(), "coin", coins.String())
			return errors.Wrap(err, "payout failed")
		}
		return nil
	}
	return k.ExecuteTokenTransfer(ctx, asset.Info.ContractAddress, recipient, asset.Amount)
}
