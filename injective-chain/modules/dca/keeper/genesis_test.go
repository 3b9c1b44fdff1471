package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

func TestGenesisExportImportRoundTrip(t *testing.T) {
	f := newFixture(t)

	// two orders, tip jars in two assets, and a user override for the owner
	f.createNativeOrder(t, 300, 100)
	f.createNativeOrder(t, 600, 200)
	f.fundNativeTip(t, 500)

	f.wasm.setAllowance(cw20Addr, ownerAddr, math.NewInt(50))
	_, err := f.msgServer.AddBotTip(f.goCtx(), &types.MsgAddBotTip{
		Sender: ownerAddr.String(),
		Asset:  types.NewTokenAsset(cw20Addr.String(), math.NewInt(50)),
	})
	require.NoError(t, err)

	// a second owner with their own order and jar
	f.bank.mint(otherAddr, sdk.NewCoin("inj", math.NewInt(400)))
	_, err = f.msgServer.CreateDcaOrder(f.goCtx(), &types.MsgCreateDcaOrder{
		Sender:       otherAddr.String(),
		InitialAsset: types.NewNativeAsset("inj", math.NewInt(300)),
		TargetAsset:  types.AssetInfo{ContractAddress: cw20Addr.String()},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
	})
	require.NoError(t, err)
	_, err = f.msgServer.AddBotTip(f.goCtx(), &types.MsgAddBotTip{
		Sender: otherAddr.String(),
		Asset:  types.NewNativeAsset("inj", math.NewInt(100)),
	})
	require.NoError(t, err)

	maxSpread := math.LegacyNewDecWithPrec(1, 2)
	_, err = f.msgServer.UpdateUserConfig(f.goCtx(), &types.MsgUpdateUserConfig{
		Sender:    ownerAddr.String(),
		MaxHops:   2,
		MaxSpread: &maxSpread,
	})
	require.NoError(t, err)

	exported := f.keeper.ExportGenesis(f.ctx)
	require.Equal(t, uint64(4), exported.NextOrderId)
	require.Len(t, exported.Orders, 3)
	require.Len(t, exported.TipJars, 2)
	require.Len(t, exported.UserSettings, 1)

	// importing the export into a fresh store reproduces it exactly
	f2 := newFixture(t)
	f2.keeper.InitGenesis(f2.ctx, *exported)

	reExported := f2.keeper.ExportGenesis(f2.ctx)
	require.Empty(t, deep.Equal(exported, reExported))

	// the secondary indexes are rebuilt from the orders
	require.True(t, f2.keeper.IsOrderIndexInvariantValid(f2.ctx))

	resp, err := f2.queryServer.UserDcaOrders(f2.goCtx(), &types.QueryUserDcaOrdersRequest{
		User: ownerAddr.String(),
	})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)
}

func TestExportGenesisEmpty(t *testing.T) {
	f := newFixture(t)

	exported := f.keeper.ExportGenesis(f.ctx)
	require.Equal(t, testParams(), exported.Params)
	require.Equal(t, uint64(1), exported.NextOrderId)
	require.Empty(t, exported.Orders)
	require.Empty(t, exported.TipJars)
	require.Empty(t, exported.UserSettings)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	f := newFixture(t)

	require.Panics(t, func() {
		f.keeper.InitGenesis(f.ctx, types.GenesisState{
			Params:      testParams(),
			NextOrderId: 0,
		})
	})

	require.Panics(t, func() {
		f.keeper.InitGenesis(f.ctx, types.GenesisState{
			Params:      testParams(),
			NextOrderId: 1,
			Orders: []types.DcaOrder{{
				Id:           7,
				Owner:        ownerAddr.String(),
				InitialAsset: types.NewNativeAsset("inj", math.NewInt(300)),
				TargetAsset:  types.AssetInfo{ContractAddress: cw20Addr.String()},
				Interval:     3600,
				DcaAmount:    math.NewInt(100),
			}},
		})
	})

	require.Panics(t, func() {
		f.keeper.InitGenesis(f.ctx, types.GenesisState{
			Params:      testParams(),
			NextOrderId: 2,
			TipJars: []types.TipJars{{
				Owner: ownerAddr.String(),
				Jars: []types.Asset{
					types.NewNativeAsset("inj", math.NewInt(100)),
					types.NewNativeAsset("inj", math.NewInt(200)),
				},
			}},
		})
	})
}
