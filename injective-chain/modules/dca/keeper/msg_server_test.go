package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

func TestCreateDcaOrderNativeDeposit(t *testing.T) {
	f := newFixture(t)

	f.bank.mint(ownerAddr, sdk.NewCoin("inj", math.NewInt(1000)))

	resp, err := f.msgServer.CreateDcaOrder(f.goCtx(), &types.MsgCreateDcaOrder{
		Sender:       ownerAddr.String(),
		InitialAsset: types.NewNativeAsset("inj", math.NewInt(300)),
		TargetAsset:  types.AssetInfo{ContractAddress: cw20Addr.String()},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, resp.Id)

	// deposit escrowed in the module account
	require.Equal(t, math.NewInt(700), f.bank.balanceOf(ownerAddr, "inj"))
	require.Equal(t, math.NewInt(300), f.bank.balanceOf(moduleAddr, "inj"))

	order := f.keeper.GetDcaOrder(f.ctx, resp.Id)
	require.NotNil(t, order)
	require.Equal(t, ownerAddr.String(), order.Owner)
	require.EqualValues(t, 0, order.LastPurchase)
	require.Equal(t, math.NewInt(300), order.InitialAsset.Amount)

	// ids are monotonic
	f.bank.mint(ownerAddr, sdk.NewCoin("inj", math.NewInt(100)))
	resp2, err := f.msgServer.CreateDcaOrder(f.goCtx(), &types.MsgCreateDcaOrder{
		Sender:       ownerAddr.String(),
		InitialAsset: types.NewNativeAsset("inj", math.NewInt(100)),
		TargetAsset:  types.AssetInfo{ContractAddress: cw20Addr.String()},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, resp2.Id)
}

func TestCreateDcaOrderTokenDeposit(t *testing.T) {
	f := newFixture(t)

	msg := &types.MsgCreateDcaOrder{
		Sender:       ownerAddr.String(),
		InitialAsset: types.NewTokenAsset(cw20Addr.String(), math.NewInt(300)),
		TargetAsset:  types.AssetInfo{Denom: "inj"},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
	}

	// no allowance granted yet
	_, err := f.msgServer.CreateDcaOrder(f.goCtx(), msg)
	require.ErrorIs(t, err, types.ErrInvalidTokenDeposit)

	// partial allowance is not enough
	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(200))
	_, err = f.msgServer.CreateDcaOrder(f.goCtx(), msg)
	require.ErrorIs(t, err, types.ErrInvalidTokenDeposit)

	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(300))
	resp, err := f.msgServer.CreateDcaOrder(f.goCtx(), msg)
	require.NoError(t, err)

	// tokens stay with the owner until a purchase executes
	require.Equal(t, math.NewInt(300), f.wasm.allowanceOf(cw20Addr, ownerAddr))
	require.NotNil(t, f.keeper.GetDcaOrder(f.ctx, resp.Id))
}

func TestCreateDcaOrderValidation(t *testing.T) {
	f := newFixture(t)
	f.bank.mint(ownerAddr, sdk.NewCoin("inj", math.NewInt(10_000)))

	base := func() *types.MsgCreateDcaOrder {
		return &types.MsgCreateDcaOrder{
			Sender:       ownerAddr.String(),
			InitialAsset: types.NewNativeAsset("inj", math.NewInt(300)),
			TargetAsset:  types.AssetInfo{ContractAddress: cw20Addr.String()},
			Interval:     3600,
			DcaAmount:    math.NewInt(100),
		}
	}

	msg := base()
	msg.StartPurchase = f.blockUnix() - 1
	_, err := f.msgServer.CreateDcaOrder(f.goCtx(), msg)
	require.ErrorIs(t, err, types.ErrStartTimeInPast)

	msg = base()
	msg.DcaAmount = math.NewInt(400)
	_, err = f.msgServer.CreateDcaOrder(f.goCtx(), msg)
	require.ErrorIs(t, err, types.ErrDepositTooSmall)

	msg = base()
	msg.DcaAmount = math.NewInt(140)
	_, err = f.msgServer.CreateDcaOrder(f.goCtx(), msg)
	require.ErrorIs(t, err, types.ErrIndivisibleDeposit)

	msg = base()
	msg.TargetAsset = types.AssetInfo{Denom: "inj"}
	_, err = f.msgServer.CreateDcaOrder(f.goCtx(), msg)
	require.ErrorIs(t, err, types.ErrDuplicateAsset)

	// a start time exactly at block time is accepted
	msg = base()
	msg.StartPurchase = f.blockUnix()
	_, err = f.msgServer.CreateDcaOrder(f.goCtx(), msg)
	require.NoError(t, err)
}

func TestModifyDcaOrderAuthorization(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)

	_, err := f.msgServer.ModifyDcaOrder(f.goCtx(), &types.MsgModifyDcaOrder{
		Sender: ownerAddr.String(),
		Id:     999,
	})
	require.ErrorIs(t, err, types.ErrNonExistentDca)

	_, err = f.msgServer.ModifyDcaOrder(f.goCtx(), &types.MsgModifyDcaOrder{
		Sender: otherAddr.String(),
		Id:     id,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestModifyDcaOrderDepositIncrease(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)

	f.bank.mint(ownerAddr, sdk.NewCoin("inj", math.NewInt(200)))
	newDeposit := types.NewNativeAsset("inj", math.NewInt(500))

	_, err := f.msgServer.ModifyDcaOrder(f.goCtx(), &types.MsgModifyDcaOrder{
		Sender:          ownerAddr.String(),
		Id:              id,
		NewInitialAsset: &newDeposit,
	})
	require.NoError(t, err)

	// only the 200 delta moved into escrow
	require.Equal(t, math.NewInt(500), f.bank.balanceOf(moduleAddr, "inj"))
	require.Equal(t, math.ZeroInt(), f.bank.balanceOf(ownerAddr, "inj"))

	order := f.keeper.GetDcaOrder(f.ctx, id)
	require.Equal(t, math.NewInt(500), order.InitialAsset.Amount)
}

func TestModifyDcaOrderDepositDecrease(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)

	newDeposit := types.NewNativeAsset("inj", math.NewInt(100))
	_, err := f.msgServer.ModifyDcaOrder(f.goCtx(), &types.MsgModifyDcaOrder{
		Sender:          ownerAddr.String(),
		Id:              id,
		NewInitialAsset: &newDeposit,
	})
	require.NoError(t, err)

	// the difference went back to the owner
	require.Equal(t, math.NewInt(100), f.bank.balanceOf(moduleAddr, "inj"))
	require.Equal(t, math.NewInt(200), f.bank.balanceOf(ownerAddr, "inj"))
}

func TestModifyDcaOrderInvariantsStillHold(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)

	// 300 is not divisible by the new per-purchase amount
	newAmount := math.NewInt(170)
	_, err := f.msgServer.ModifyDcaOrder(f.goCtx(), &types.MsgModifyDcaOrder{
		Sender:       ownerAddr.String(),
		Id:           id,
		NewDcaAmount: &newAmount,
	})
	require.ErrorIs(t, err, types.ErrIndivisibleDeposit)
}

func TestModifyDcaOrderResetPurchaseTime(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)
	f.fundNativeTip(t, 1000)

	_, err := f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     id,
		Hops:   directHop(),
	})
	require.NoError(t, err)
	require.NotZero(t, f.keeper.GetDcaOrder(f.ctx, id).LastPurchase)

	_, err = f.msgServer.ModifyDcaOrder(f.goCtx(), &types.MsgModifyDcaOrder{
		Sender:                  ownerAddr.String(),
		Id:                      id,
		ShouldResetPurchaseTime: true,
	})
	require.NoError(t, err)
	require.Zero(t, f.keeper.GetDcaOrder(f.ctx, id).LastPurchase)

	// reset makes the next purchase due immediately
	_, err = f.msgServer.PerformDcaPurchase(f.goCtx(), &types.MsgPerformDcaPurchase{
		Sender: botAddr.String(),
		Id:     id,
		Hops:   directHop(),
	})
	require.NoError(t, err)
}

func TestCancelDcaOrderRefundsNativeEscrow(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)

	_, err := f.msgServer.CancelDcaOrder(f.goCtx(), &types.MsgCancelDcaOrder{
		Sender: otherAddr.String(),
		Id:     id,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = f.msgServer.CancelDcaOrder(f.goCtx(), &types.MsgCancelDcaOrder{
		Sender: ownerAddr.String(),
		Id:     id,
	})
	require.NoError(t, err)

	require.Nil(t, f.keeper.GetDcaOrder(f.ctx, id))
	require.Equal(t, math.NewInt(300), f.bank.balanceOf(ownerAddr, "inj"))
	require.Equal(t, math.ZeroInt(), f.bank.balanceOf(moduleAddr, "inj"))

	_, err = f.msgServer.CancelDcaOrder(f.goCtx(), &types.MsgCancelDcaOrder{
		Sender: ownerAddr.String(),
		Id:     id,
	})
	require.ErrorIs(t, err, types.ErrNonExistentDca)
}

func TestCancelDcaOrderTokenDepositNoRefund(t *testing.T) {
	f := newFixture(t)

	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(300))
	resp, err := f.msgServer.CreateDcaOrder(f.goCtx(), &types.MsgCreateDcaOrder{
		Sender:       ownerAddr.String(),
		InitialAsset: types.NewTokenAsset(cw20Addr.String(), math.NewInt(300)),
		TargetAsset:  types.AssetInfo{Denom: "inj"},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
	})
	require.NoError(t, err)

	balanceBefore := f.wasm.cw20BalanceOf(cw20Addr, ownerAddr)

	_, err = f.msgServer.CancelDcaOrder(f.goCtx(), &types.MsgCancelDcaOrder{
		Sender: ownerAddr.String(),
		Id:     resp.Id,
	})
	require.NoError(t, err)

	// cw20 deposits never left the owner, so nothing moves on cancel
	require.Nil(t, f.keeper.GetDcaOrder(f.ctx, resp.Id))
	require.Equal(t, balanceBefore, f.wasm.cw20BalanceOf(cw20Addr, ownerAddr))
}

func TestAddBotTip(t *testing.T) {
	f := newFixture(t)

	_, err := f.msgServer.AddBotTip(f.goCtx(), &types.MsgAddBotTip{
		Sender: ownerAddr.String(),
		Asset:  types.NewNativeAsset("usdt", math.NewInt(100)),
	})
	require.ErrorIs(t, err, types.ErrInvalidBotTipToken)

	f.bank.mint(ownerAddr, sdk.NewCoin("inj", math.NewInt(500)))
	_, err = f.msgServer.AddBotTip(f.goCtx(), &types.MsgAddBotTip{
		Sender: ownerAddr.String(),
		Asset:  types.NewNativeAsset("inj", math.NewInt(500)),
	})
	require.NoError(t, err)

	require.Equal(t, math.NewInt(500), f.bank.balanceOf(moduleAddr, "inj"))

	jar := f.keeper.GetTipJar(f.ctx, ownerAddr, "inj")
	require.NotNil(t, jar)
	require.Equal(t, math.NewInt(500), jar.Amount)

	// cw20 tips move into the module through the allowance
	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(50))
	_, err = f.msgServer.AddBotTip(f.goCtx(), &types.MsgAddBotTip{
		Sender: ownerAddr.String(),
		Asset:  types.NewTokenAsset(cw20Addr.String(), math.NewInt(50)),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50), f.wasm.cw20BalanceOf(cw20Addr, moduleAddr))

	// jars accumulate
	f.bank.mint(ownerAddr, sdk.NewCoin("inj", math.NewInt(100)))
	_, err = f.msgServer.AddBotTip(f.goCtx(), &types.MsgAddBotTip{
		Sender: ownerAddr.String(),
		Asset:  types.NewNativeAsset("inj", math.NewInt(100)),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), f.keeper.GetTipJar(f.ctx, ownerAddr, "inj").Amount)
}

func TestWithdrawTips(t *testing.T) {
	f := newFixture(t)
	f.fundNativeTip(t, 500)

	_, err := f.msgServer.WithdrawTips(f.goCtx(), &types.MsgWithdrawTips{
		Sender: ownerAddr.String(),
		Tips:   []types.Asset{types.NewNativeAsset("usdt", math.NewInt(10))},
	})
	require.ErrorIs(t, err, types.ErrNonExistentTipJar)

	_, err = f.msgServer.WithdrawTips(f.goCtx(), &types.MsgWithdrawTips{
		Sender: ownerAddr.String(),
		Tips:   []types.Asset{types.NewNativeAsset("inj", math.NewInt(600))},
	})
	require.ErrorIs(t, err, types.ErrInsufficientTipWithdrawBalance)

	resp, err := f.msgServer.WithdrawTips(f.goCtx(), &types.MsgWithdrawTips{
		Sender: ownerAddr.String(),
		Tips:   []types.Asset{types.NewNativeAsset("inj", math.NewInt(200))},
	})
	require.NoError(t, err)
	require.Len(t, resp.Withdrawn, 1)
	require.Equal(t, math.NewInt(200), f.bank.balanceOf(ownerAddr, "inj"))
	require.Equal(t, math.NewInt(300), f.keeper.GetTipJar(f.ctx, ownerAddr, "inj").Amount)
}

func TestWithdrawTipsEmptyRequestDrainsAll(t *testing.T) {
	f := newFixture(t)
	f.fundNativeTip(t, 500)

	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(50))
	_, err := f.msgServer.AddBotTip(f.goCtx(), &types.MsgAddBotTip{
		Sender: ownerAddr.String(),
		Asset:  types.NewTokenAsset(cw20Addr.String(), math.NewInt(50)),
	})
	require.NoError(t, err)

	resp, err := f.msgServer.WithdrawTips(f.goCtx(), &types.MsgWithdrawTips{
		Sender: ownerAddr.String(),
	})
	require.NoError(t, err)
	require.Len(t, resp.Withdrawn, 2)

	// both jars drained and pruned
	require.Nil(t, f.keeper.GetTipJar(f.ctx, ownerAddr, "inj"))
	require.Nil(t, f.keeper.GetTipJar(f.ctx, ownerAddr, cw20Addr.String()))
	require.Equal(t, math.NewInt(500), f.bank.balanceOf(ownerAddr, "inj"))
	require.Equal(t, math.NewInt(50), f.wasm.cw20BalanceOf(cw20Addr, ownerAddr))
}

func TestUpdateConfigFactoryOwnerGate(t *testing.T) {
	f := newFixture(t)

	_, err := f.msgServer.UpdateConfig(f.goCtx(), &types.MsgUpdateConfig{
		Sender:  ownerAddr.String(),
		MaxHops: 5,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = f.msgServer.UpdateConfig(f.goCtx(), &types.MsgUpdateConfig{
		Sender:  adminAddr.String(),
		MaxHops: 5,
	})
	require.NoError(t, err)

	params := f.keeper.GetParams(f.ctx)
	require.EqualValues(t, 5, params.MaxHops)

	// untouched fields keep their values
	require.Equal(t, routerAddr.String(), params.RouterAddress)
	require.Len(t, params.WhitelistedTipFees, 2)
}

func TestUpdateConfigRejectsInvalidParams(t *testing.T) {
	f := newFixture(t)

	badSpread := math.LegacyNewDec(2)
	_, err := f.msgServer.UpdateConfig(f.goCtx(), &types.MsgUpdateConfig{
		Sender:    adminAddr.String(),
		MaxSpread: &badSpread,
	})
	require.Error(t, err)
}

func TestUpdateUserConfig(t *testing.T) {
	f := newFixture(t)

	spread := math.LegacyNewDecWithPrec(1, 2)
	_, err := f.msgServer.UpdateUserConfig(f.goCtx(), &types.MsgUpdateUserConfig{
		Sender:    ownerAddr.String(),
		MaxHops:   2,
		MaxSpread: &spread,
	})
	require.NoError(t, err)

	settings := f.keeper.GetUserSettings(f.ctx, ownerAddr)
	require.NotNil(t, settings)
	require.EqualValues(t, 2, settings.MaxHops)
	require.Equal(t, spread, *settings.MaxSpread)

	// clearing every override prunes the entry
	_, err = f.msgServer.UpdateUserConfig(f.goCtx(), &types.MsgUpdateUserConfig{
		Sender: ownerAddr.String(),
	})
	require.NoError(t, err)
	require.Nil(t, f.keeper.GetUserSettings(f.ctx, ownerAddr))
}

func TestOrderIdsNeverReused(t *testing.T) {
	f := newFixture(t)

	id1 := f.createNativeOrder(t, 300, 100)
	id2 := f.createNativeOrder(t, 300, 100)
	require.Equal(t, uint64(1), id1)
	require.Equal(t, uint64(2), id2)

	_, err := f.msgServer.CancelDcaOrder(f.goCtx(), &types.MsgCancelDcaOrder{
		Sender: ownerAddr.String(),
		Id:     id2,
	})
	require.NoError(t, err)

	// cancelled ids stay burned
	id3 := f.createNativeOrder(t, 300, 100)
	require.Equal(t, uint64(3), id3)
	require.True(t, f.keeper.IsOrderIndexInvariantValid(f.ctx))
}
