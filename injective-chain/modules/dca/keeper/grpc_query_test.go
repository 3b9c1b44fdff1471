package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

func TestQueryConfig(t *testing.T) {
	f := newFixture(t)

	resp, err := f.queryServer.Config(f.goCtx(), &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, testParams(), resp.Params)
}

func TestQueryDcaOrder(t *testing.T) {
	f := newFixture(t)
	id := f.createNativeOrder(t, 300, 100)

	resp, err := f.queryServer.DcaOrder(f.goCtx(), &types.QueryDcaOrderRequest{Id: id})
	require.NoError(t, err)
	require.Equal(t, id, resp.Order.Id)
	require.Equal(t, ownerAddr.String(), resp.Order.Owner)

	_, err = f.queryServer.DcaOrder(f.goCtx(), &types.QueryDcaOrderRequest{Id: 42})
	require.ErrorIs(t, err, types.ErrNonExistentDca)
}

func TestQueryDcaOrdersPagination(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 15; i++ {
		f.createNativeOrder(t, 300, 100)
	}

	orderIDs := func(orders []types.DcaOrder) []uint64 {
		ids := make([]uint64, 0, len(orders))
		for _, order := range orders {
			ids = append(ids, order.Id)
		}
		return ids
	}

	// zero limit falls back to the default page size
	resp, err := f.queryServer.DcaOrders(f.goCtx(), &types.QueryDcaOrdersRequest{IsAscending: true})
	require.NoError(t, err)
	require.Len(t, resp.Orders, int(types.DefaultOrdersLimit))
	require.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, orderIDs(resp.Orders))

	// an oversized limit is clamped, returning everything here
	resp, err = f.queryServer.DcaOrders(f.goCtx(), &types.QueryDcaOrdersRequest{
		Limit:       types.MaxOrdersLimit + 1,
		IsAscending: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 15)

	// start_after is an exclusive cursor
	resp, err = f.queryServer.DcaOrders(f.goCtx(), &types.QueryDcaOrdersRequest{
		StartAfter:  5,
		Limit:       5,
		IsAscending: true,
	})
	require.NoError(t, err)
	require.Equal(t, []uint64{6, 7, 8, 9, 10}, orderIDs(resp.Orders))

	// descending walks from the newest order
	resp, err = f.queryServer.DcaOrders(f.goCtx(), &types.QueryDcaOrdersRequest{Limit: 5})
	require.NoError(t, err)
	require.Equal(t, []uint64{15, 14, 13, 12, 11}, orderIDs(resp.Orders))

	// and respects the cursor in its own direction
	resp, err = f.queryServer.DcaOrders(f.goCtx(), &types.QueryDcaOrdersRequest{
		StartAfter: 11,
		Limit:      5,
	})
	require.NoError(t, err)
	require.Equal(t, []uint64{10, 9, 8, 7, 6}, orderIDs(resp.Orders))
}

func TestQueryUserDcaOrders(t *testing.T) {
	f := newFixture(t)
	f.createNativeOrder(t, 300, 100)
	f.createNativeOrder(t, 400, 100)

	// another user's order must not leak into the result
	f.bank.mint(otherAddr, sdk.NewCoin("inj", math.NewInt(300)))
	_, err := f.msgServer.CreateDcaOrder(f.goCtx(), &types.MsgCreateDcaOrder{
		Sender:       otherAddr.String(),
		InitialAsset: types.NewNativeAsset("inj", math.NewInt(300)),
		TargetAsset:  types.AssetInfo{ContractAddress: cw20Addr.String()},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
	})
	require.NoError(t, err)

	resp, err := f.queryServer.UserDcaOrders(f.goCtx(), &types.QueryUserDcaOrdersRequest{
		User: ownerAddr.String(),
	})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)

	// newest first, native deposits report the remaining escrow
	require.Equal(t, uint64(2), resp.Orders[0].Order.Id)
	require.Equal(t, math.NewInt(400), resp.Orders[0].TokenAllowance)
	require.Equal(t, uint64(1), resp.Orders[1].Order.Id)
	require.Equal(t, math.NewInt(300), resp.Orders[1].TokenAllowance)

	_, err = f.queryServer.UserDcaOrders(f.goCtx(), &types.QueryUserDcaOrdersRequest{
		User: "not-an-address",
	})
	require.Error(t, err)
}

func TestQueryUserDcaOrdersTokenAllowance(t *testing.T) {
	f := newFixture(t)

	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(300))
	_, err := f.msgServer.CreateDcaOrder(f.goCtx(), &types.MsgCreateDcaOrder{
		Sender:       ownerAddr.String(),
		InitialAsset: types.NewTokenAsset(cw20Addr.String(), math.NewInt(300)),
		TargetAsset:  types.AssetInfo{Denom: "inj"},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
	})
	require.NoError(t, err)

	// cw20 deposits report the live allowance, not the order's remainder
	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(120))

	resp, err := f.queryServer.UserDcaOrders(f.goCtx(), &types.QueryUserDcaOrdersRequest{
		User: ownerAddr.String(),
	})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	require.Equal(t, math.NewInt(120), resp.Orders[0].TokenAllowance)
}

func TestQueryUserAssetDcaOrders(t *testing.T) {
	f := newFixture(t)
	f.createNativeOrder(t, 300, 100)
	f.createNativeOrder(t, 300, 100)

	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(300))
	_, err := f.msgServer.CreateDcaOrder(f.goCtx(), &types.MsgCreateDcaOrder{
		Sender:       ownerAddr.String(),
		InitialAsset: types.NewTokenAsset(cw20Addr.String(), math.NewInt(300)),
		TargetAsset:  types.AssetInfo{Denom: "inj"},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
	})
	require.NoError(t, err)

	resp, err := f.queryServer.UserAssetDcaOrders(f.goCtx(), &types.QueryUserAssetDcaOrdersRequest{
		User:      ownerAddr.String(),
		AssetInfo: types.AssetInfo{Denom: "inj"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)
	for _, order := range resp.Orders {
		require.Equal(t, "inj", order.Order.InitialAsset.Info.Denom)
	}

	resp, err = f.queryServer.UserAssetDcaOrders(f.goCtx(), &types.QueryUserAssetDcaOrdersRequest{
		User:      ownerAddr.String(),
		AssetInfo: types.AssetInfo{ContractAddress: cw20Addr.String()},
	})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	require.Equal(t, uint64(3), resp.Orders[0].Order.Id)

	// both denom and contract set is not a valid asset info
	_, err = f.queryServer.UserAssetDcaOrders(f.goCtx(), &types.QueryUserAssetDcaOrdersRequest{
		User:      ownerAddr.String(),
		AssetInfo: types.AssetInfo{Denom: "inj", ContractAddress: cw20Addr.String()},
	})
	require.Error(t, err)
}

func TestQueryUserTips(t *testing.T) {
	f := newFixture(t)

	resp, err := f.queryServer.UserTips(f.goCtx(), &types.QueryUserTipsRequest{User: ownerAddr.String()})
	require.NoError(t, err)
	require.Empty(t, resp.Tips)

	f.fundNativeTip(t, 500)
	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(50))
	_, err = f.msgServer.AddBotTip(f.goCtx(), &types.MsgAddBotTip{
		Sender: ownerAddr.String(),
		Asset:  types.NewTokenAsset(cw20Addr.String(), math.NewInt(50)),
	})
	require.NoError(t, err)

	resp, err = f.queryServer.UserTips(f.goCtx(), &types.QueryUserTipsRequest{User: ownerAddr.String()})
	require.NoError(t, err)
	require.Len(t, resp.Tips, 2)

	// jars come back in asset id order, the cw20 contract first
	require.Equal(t, cw20Addr.String(), resp.Tips[0].Info.ContractAddress)
	require.Equal(t, math.NewInt(50), resp.Tips[0].Amount)
	require.Equal(t, "inj", resp.Tips[1].Info.Denom)
	require.Equal(t, math.NewInt(500), resp.Tips[1].Amount)
}

func TestQueryTipFees(t *testing.T) {
	f := newFixture(t)

	resp, err := f.queryServer.TipFees(f.goCtx(), &types.QueryTipFeesRequest{})
	require.NoError(t, err)
	require.Equal(t, testParams().WhitelistedTipFees, resp.TipFees)
}

func TestQueryUserConfig(t *testing.T) {
	f := newFixture(t)

	// no overrides stored yet, an empty settings object comes back
	resp, err := f.queryServer.UserConfig(f.goCtx(), &types.QueryUserConfigRequest{User: ownerAddr.String()})
	require.NoError(t, err)
	require.Equal(t, types.UserSettings{}, resp.Settings)

	maxSpread := math.LegacyNewDecWithPrec(2, 2)
	_, err = f.msgServer.UpdateUserConfig(f.goCtx(), &types.MsgUpdateUserConfig{
		Sender:    ownerAddr.String(),
		MaxHops:   2,
		MaxSpread: &maxSpread,
	})
	require.NoError(t, err)

	resp, err = f.queryServer.UserConfig(f.goCtx(), &types.QueryUserConfigRequest{User: ownerAddr.String()})
	require.NoError(t, err)
	require.Equal(t, uint32(2), resp.Settings.MaxHops)
	require.Equal(t, maxSpread, *resp.Settings.MaxSpread)
}
