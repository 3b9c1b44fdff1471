package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

func TestPerformDcaPurchase(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)
	f.fundNativeTip(t, 500)

	resp, err := f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     id,
		Hops:   directHop(),
	})
	require.NoError(t, err)
	require.False(t, resp.Finished)
	require.Equal(t, math.NewInt(100), resp.TipPaid.Amount)

	// deposit debited, last purchase stamped
	order := f.keeper.GetDcaOrder(f.ctx, id)
	require.Equal(t, math.NewInt(200), order.InitialAsset.Amount)
	require.Equal(t, f.blockUnix(), order.LastPurchase)

	// jar debited by one hop's fee, bot paid
	require.Equal(t, math.NewInt(400), f.keeper.GetTipJar(f.ctx, ownerAddr, "inj").Amount)
	require.Equal(t, math.NewInt(100), f.bank.balanceOf(botAddr, "inj"))

	// the swap went to the router with the purchase amount attached
	require.Len(t, f.wasm.swaps, 1)
	require.Equal(t, routerAddr.String(), f.wasm.swaps[0].contract)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("inj", math.NewInt(100))), f.wasm.swaps[0].funds)

	require.True(t, f.keeper.IsOrderIndexInvariantValid(f.ctx))
}

func TestPerformDcaPurchaseTimingGate(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)
	f.fundNativeTip(t, 1000)

	purchase := func() error {
		_, err := f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
			Sender: botAddr.String(),
			Id:     id,
			Hops:   directHop(),
		})
		return err
	}

	require.NoError(t, purchase())

	// a repeat in the same block is too early
	require.ErrorIs(t, purchase(), types.ErrPurchaseTooEarly)

	// one second short of the interval still is
	f.advanceTime(3599 * time.Second)
	require.ErrorIs(t, purchase(), types.ErrPurchaseTooEarly)

	// exactly on the boundary is accepted
	f.advanceTime(1 * time.Second)
	require.NoError(t, purchase())
}

func TestPerformDcaPurchaseStartTime(t *testing.T) {
	f := newFixture(t)
	f.fundNativeTip(t, 500)

	f.bank.mint(ownerAddr, sdk.NewCoin("inj", math.NewInt(300)))
	start := f.blockUnix() + 7200
	resp, err := f.msgServer.CreateDcaOrder(f.goCtx(), &types.MsgCreateDcaOrder{
		Sender:        ownerAddr.String(),
		InitialAsset:  types.NewNativeAsset("inj", math.NewInt(300)),
		TargetAsset:   types.AssetInfo{ContractAddress: cw20Addr.String()},
		Interval:      3600,
		DcaAmount:     math.NewInt(100),
		StartPurchase: start,
	})
	require.NoError(t, err)

	purchase := func() error {
		_, err := f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
			Sender: botAddr.String(),
			Id:     resp.Id,
			Hops:   directHop(),
		})
		return err
	}

	require.ErrorIs(t, purchase(), types.ErrPurchaseTooEarly)

	// due exactly at the start time
	f.advanceTime(7200 * time.Second)
	require.NoError(t, purchase())
}

func TestPerformDcaPurchaseRouteValidation(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)
	f.fundNativeTip(t, 10_000)

	purchase := func(hops []types.SwapOperation) error {
		_, err := f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
			Sender: botAddr.String(),
			Id:     id,
			Hops:   hops,
		})
		return err
	}

	inj := types.AssetInfo{Denom: "inj"}
	usdt := types.AssetInfo{Denom: "usdt"}
	cw20 := types.AssetInfo{ContractAddress: cw20Addr.String()}
	mid := types.AssetInfo{ContractAddress: cw20MidAddr.String()}

	require.ErrorIs(t, purchase(nil), types.ErrEmptyHopRoute)

	require.ErrorIs(t, purchase([]types.SwapOperation{
		{OfferAssetInfo: inj, AskAssetInfo: mid},
		{OfferAssetInfo: mid, AskAssetInfo: cw20},
		{OfferAssetInfo: cw20, AskAssetInfo: mid},
		{OfferAssetInfo: mid, AskAssetInfo: cw20},
	}), types.ErrMaxHopsAssertion)

	require.ErrorIs(t, purchase([]types.SwapOperation{
		{OfferAssetInfo: inj, AskAssetInfo: usdt},
		{OfferAssetInfo: usdt, AskAssetInfo: cw20},
	}), types.ErrNativeSwapNotSupported)

	require.ErrorIs(t, purchase([]types.SwapOperation{
		{OfferAssetInfo: inj, AskAssetInfo: mid},
		{OfferAssetInfo: cw20, AskAssetInfo: cw20},
	}), types.ErrInvalidHopRoute)

	require.ErrorIs(t, purchase([]types.SwapOperation{
		{OfferAssetInfo: mid, AskAssetInfo: cw20},
	}), types.ErrInitialAssetAssertion)

	require.ErrorIs(t, purchase([]types.SwapOperation{
		{OfferAssetInfo: inj, AskAssetInfo: mid},
	}), types.ErrTargetAssetAssertion)

	// intermediate asset outside the whitelist
	unknown := types.AssetInfo{ContractAddress: otherAddr.String()}
	require.ErrorIs(t, purchase([]types.SwapOperation{
		{OfferAssetInfo: inj, AskAssetInfo: unknown},
		{OfferAssetInfo: unknown, AskAssetInfo: cw20},
	}), types.ErrInvalidHopRoute)

	// flagged native pair is rejected even with a cw20 endpoint
	require.ErrorIs(t, purchase([]types.SwapOperation{
		{OfferAssetInfo: inj, AskAssetInfo: cw20, NativePair: true},
	}), types.ErrNativeSwapNotSupported)

	// a valid two-hop route through a whitelisted intermediate passes
	require.NoError(t, purchase([]types.SwapOperation{
		{OfferAssetInfo: inj, AskAssetInfo: mid},
		{OfferAssetInfo: mid, AskAssetInfo: cw20},
	}))
}

func TestPerformDcaPurchaseMaxHopsOverrides(t *testing.T) {
	f := newFixture(t)
	f.fundNativeTip(t, 10_000)

	inj := types.AssetInfo{Denom: "inj"}
	cw20 := types.AssetInfo{ContractAddress: cw20Addr.String()}
	mid := types.AssetInfo{ContractAddress: cw20MidAddr.String()}

	fourHops := []types.SwapOperation{
		{OfferAssetInfo: inj, AskAssetInfo: mid},
		{OfferAssetInfo: mid, AskAssetInfo: cw20},
		{OfferAssetInfo: cw20, AskAssetInfo: mid},
		{OfferAssetInfo: mid, AskAssetInfo: cw20},
	}

	// the per-order cap overrides the module default of 3
	f.bank.mint(ownerAddr, sdk.NewCoin("inj", math.NewInt(300)))
	resp, err := f.msgServer.CreateDcaOrder(f.goCtx(), &types.MsgCreateDcaOrder{
		Sender:       ownerAddr.String(),
		InitialAsset: types.NewNativeAsset("inj", math.NewInt(300)),
		TargetAsset:  cw20,
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
		MaxHops:      4,
	})
	require.NoError(t, err)

	_, err = f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     resp.Id,
		Hops:   fourHops,
	})
	require.NoError(t, err)

	// a user override tighter than the default applies to orders without one
	id := f.createNativeOrder(t, 300, 100)
	_, err = f.msgServer.UpdateUserConfig(f.goCtx(), &types.MsgUpdateUserConfig{
		Sender:  ownerAddr.String(),
		MaxHops: 1,
	})
	require.NoError(t, err)

	_, err = f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     id,
		Hops: []types.SwapOperation{
			{OfferAssetInfo: inj, AskAssetInfo: mid},
			{OfferAssetInfo: mid, AskAssetInfo: cw20},
		},
	})
	require.ErrorIs(t, err, types.ErrMaxHopsAssertion)
}

func TestPerformDcaPurchaseTipSelection(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)

	// no jar at all
	_, err := f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     id,
		Hops:   directHop(),
	})
	require.ErrorIs(t, err, types.ErrInsufficientTipBalance)

	// the cw20 jar sorts before the inj jar and covers one hop, so it wins
	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(15))
	_, err = f.msgServer.AddBotTip(f.goCtx(), &types.MsgAddBotTip{
		Sender: ownerAddr.String(),
		Asset:  types.NewTokenAsset(cw20Addr.String(), math.NewInt(15)),
	})
	require.NoError(t, err)
	f.fundNativeTip(t, 500)

	resp, err := f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     id,
		Hops:   directHop(),
	})
	require.NoError(t, err)
	require.Equal(t, cw20Addr.String(), resp.TipPaid.Info.ContractAddress)
	require.Equal(t, math.NewInt(10), resp.TipPaid.Amount)
	require.Equal(t, math.NewInt(10), f.wasm.cw20BalanceOf(cw20Addr, botAddr))

	// with 5 left the cw20 jar no longer covers a hop, falls through to inj
	f.advanceTime(3600 * time.Second)
	resp, err = f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     id,
		Hops:   directHop(),
	})
	require.NoError(t, err)
	require.Equal(t, "inj", resp.TipPaid.Info.Denom)
	require.Equal(t, math.NewInt(100), resp.TipPaid.Amount)
}

func TestPerformDcaPurchaseMultiHopFee(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)
	f.fundNativeTip(t, 500)

	inj := types.AssetInfo{Denom: "inj"}
	cw20 := types.AssetInfo{ContractAddress: cw20Addr.String()}
	mid := types.AssetInfo{ContractAddress: cw20MidAddr.String()}

	resp, err := f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     id,
		Hops: []types.SwapOperation{
			{OfferAssetInfo: inj, AskAssetInfo: mid},
			{OfferAssetInfo: mid, AskAssetInfo: cw20},
		},
	})
	require.NoError(t, err)

	// two hops cost twice the per-hop fee
	require.Equal(t, math.NewInt(200), resp.TipPaid.Amount)
	require.Equal(t, math.NewInt(300), f.keeper.GetTipJar(f.ctx, ownerAddr, "inj").Amount)
}

func TestPerformDcaPurchaseExhaustsOrder(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 100, 100)
	f.fundNativeTip(t, 100)

	resp, err := f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     id,
		Hops:   directHop(),
	})
	require.NoError(t, err)
	require.True(t, resp.Finished)

	// order removed, jar fully consumed and pruned
	require.Nil(t, f.keeper.GetDcaOrder(f.ctx, id))
	require.Nil(t, f.keeper.GetTipJar(f.ctx, ownerAddr, "inj"))
	require.True(t, f.keeper.IsOrderIndexInvariantValid(f.ctx))
}

func TestPerformDcaPurchaseTokenDeposit(t *testing.T) {
	f := newFixture(t)
	f.fundNativeTip(t, 500)

	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(300))
	resp, err := f.msgServer.CreateDcaOrder(f.goCtx(), &types.MsgCreateDcaOrder{
		Sender:       ownerAddr.String(),
		InitialAsset: types.NewTokenAsset(cw20Addr.String(), math.NewInt(300)),
		TargetAsset:  types.AssetInfo{Denom: "inj"},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
	})
	require.NoError(t, err)

	_, err = f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     resp.Id,
		Hops: []types.SwapOperation{{
			OfferAssetInfo: types.AssetInfo{ContractAddress: cw20Addr.String()},
			AskAssetInfo:   types.AssetInfo{Denom: "inj"},
		}},
	})
	require.NoError(t, err)

	// the purchase amount moved from the owner's allowance to the router
	require.Equal(t, math.NewInt(100), f.wasm.cw20BalanceOf(cw20Addr, routerAddr))
	require.Equal(t, math.NewInt(200), f.wasm.allowanceOf(cw20Addr, ownerAddr))

	// swap submitted without native funds
	require.Len(t, f.wasm.swaps, 1)
	require.True(t, f.wasm.swaps[0].funds.IsZero())
}

func TestPerformDcaPurchaseUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     42,
		Hops:   directHop(),
	})
	require.ErrorIs(t, err, types.ErrNonExistentDca)
}
