package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

func validCreateMsg() types.MsgCreateDcaOrder {
	return types.MsgCreateDcaOrder{
		Sender:       testOwner,
		InitialAsset: types.NewNativeAsset("inj", math.NewInt(300)),
		TargetAsset:  types.AssetInfo{ContractAddress: testContract},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
	}
}

func TestMsgCreateDcaOrderValidateBasic(t *testing.T) {
	require.NoError(t, validCreateMsg().ValidateBasic())

	tests := []struct {
		name   string
		mutate func(m *types.MsgCreateDcaOrder)
	}{
		{
			name:   "bad sender",
			mutate: func(m *types.MsgCreateDcaOrder) { m.Sender = "nope" },
		},
		{
			name:   "zero deposit",
			mutate: func(m *types.MsgCreateDcaOrder) { m.InitialAsset.Amount = math.ZeroInt() },
		},
		{
			name:   "same initial and target",
			mutate: func(m *types.MsgCreateDcaOrder) { m.TargetAsset = types.AssetInfo{Denom: "inj"} },
		},
		{
			name:   "zero interval",
			mutate: func(m *types.MsgCreateDcaOrder) { m.Interval = 0 },
		},
		{
			name:   "dca amount above deposit",
			mutate: func(m *types.MsgCreateDcaOrder) { m.DcaAmount = math.NewInt(301) },
		},
		{
			name:   "indivisible deposit",
			mutate: func(m *types.MsgCreateDcaOrder) { m.DcaAmount = math.NewInt(170) },
		},
		{
			name:   "max hops above cap",
			mutate: func(m *types.MsgCreateDcaOrder) { m.MaxHops = types.MaxAllowedHops + 1 },
		},
		{
			name: "spread above one",
			mutate: func(m *types.MsgCreateDcaOrder) {
				spread := math.LegacyNewDec(2)
				m.MaxSpread = &spread
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validCreateMsg()
			tt.mutate(&msg)
			require.Error(t, msg.ValidateBasic())
		})
	}
}

func TestMsgModifyDcaOrderValidateBasic(t *testing.T) {
	msg := types.MsgModifyDcaOrder{Sender: testOwner, Id: 1}
	require.NoError(t, msg.ValidateBasic())

	msg.Id = 0
	require.Error(t, msg.ValidateBasic())

	msg.Id = 1
	zero := types.NewNativeAsset("inj", math.ZeroInt())
	msg.NewInitialAsset = &zero
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidZeroAmount)

	// the deposit invariants against the new amounts are checked statefully,
	// only the individual fields are validated here
	deposit := types.NewNativeAsset("inj", math.NewInt(500))
	msg.NewInitialAsset = &deposit
	newAmount := math.NewInt(250)
	msg.NewDcaAmount = &newAmount
	require.NoError(t, msg.ValidateBasic())
}

func TestMsgPerformDcaPurchaseValidateBasic(t *testing.T) {
	msg := types.MsgPerformDcaPurchase{
		Sender: testOwner,
		Id:     1,
		Hops: []types.SwapOperation{{
			OfferAssetInfo: types.AssetInfo{Denom: "inj"},
			AskAssetInfo:   types.AssetInfo{ContractAddress: testContract},
		}},
	}
	require.NoError(t, msg.ValidateBasic())

	msg.Hops = nil
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrEmptyHopRoute)

	msg.Hops = []types.SwapOperation{{
		OfferAssetInfo: types.AssetInfo{Denom: "inj"},
		AskAssetInfo:   types.AssetInfo{Denom: "inj"},
	}}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAsset)
}

func TestMsgAddBotTipValidateBasic(t *testing.T) {
	msg := types.MsgAddBotTip{
		Sender: testOwner,
		Asset:  types.NewNativeAsset("inj", math.NewInt(100)),
	}
	require.NoError(t, msg.ValidateBasic())

	msg.Asset.Amount = math.ZeroInt()
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidZeroAmount)
}

func TestMsgWithdrawTipsValidateBasic(t *testing.T) {
	// an empty request drains all jars, so no tips is valid
	msg := types.MsgWithdrawTips{Sender: testOwner}
	require.NoError(t, msg.ValidateBasic())

	msg.Tips = []types.Asset{types.NewNativeAsset("inj", math.NewInt(100))}
	require.NoError(t, msg.ValidateBasic())

	msg.Tips = append(msg.Tips, types.NewNativeAsset("usdt", math.ZeroInt()))
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidZeroAmount)
}

func TestMsgUpdateConfigValidateBasic(t *testing.T) {
	msg := types.MsgUpdateConfig{Sender: testOwner}
	require.NoError(t, msg.ValidateBasic())

	msg.MaxHops = types.MaxAllowedHops + 1
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrMaxHopsAssertion)

	msg.MaxHops = 0
	msg.WhitelistedTipFees = []types.TipFee{
		{AssetInfo: types.AssetInfo{Denom: "inj"}, PerHopFee: math.ZeroInt()},
	}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidTipAmount)
}

func TestMsgUpdateUserConfigValidateBasic(t *testing.T) {
	msg := types.MsgUpdateUserConfig{Sender: testOwner, MaxHops: 2}
	require.NoError(t, msg.ValidateBasic())

	spread := math.LegacyNewDec(-1)
	msg.MaxSpread = &spread
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAsset)
}
