package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

func TestDefaultParams(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())
	require.Equal(t, types.DefaultMaxHops, params.MaxHops)
	require.Equal(t, types.DefaultMaxSpread, params.MaxSpread)
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *types.Params)
	}{
		{
			name:   "zero max hops",
			mutate: func(p *types.Params) { p.MaxHops = 0 },
		},
		{
			name:   "max hops above cap",
			mutate: func(p *types.Params) { p.MaxHops = types.MaxAllowedHops + 1 },
		},
		{
			name:   "spread above one",
			mutate: func(p *types.Params) { p.MaxSpread = math.LegacyNewDec(2) },
		},
		{
			name: "duplicate whitelisted token",
			mutate: func(p *types.Params) {
				p.WhitelistedTokens = []types.AssetInfo{{Denom: "usdt"}, {Denom: "usdt"}}
			},
		},
		{
			name: "duplicate tip fee asset",
			mutate: func(p *types.Params) {
				p.WhitelistedTipFees = []types.TipFee{
					{AssetInfo: types.AssetInfo{Denom: "inj"}, PerHopFee: math.NewInt(1)},
					{AssetInfo: types.AssetInfo{Denom: "inj"}, PerHopFee: math.NewInt(2)},
				}
			},
		},
		{
			name: "zero tip fee",
			mutate: func(p *types.Params) {
				p.WhitelistedTipFees = []types.TipFee{
					{AssetInfo: types.AssetInfo{Denom: "inj"}, PerHopFee: math.ZeroInt()},
				}
			},
		},
		{
			name:   "bad factory address",
			mutate: func(p *types.Params) { p.FactoryAddress = "nope" },
		},
		{
			name:   "bad router address",
			mutate: func(p *types.Params) { p.RouterAddress = "nope" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := types.DefaultParams()
			tt.mutate(&params)
			require.Error(t, params.Validate())
		})
	}
}

func TestIsWhitelistedHopAsset(t *testing.T) {
	params := types.DefaultParams()
	params.WhitelistedTokens = []types.AssetInfo{
		{ContractAddress: testContract},
		{Denom: "usdt"},
	}

	require.True(t, params.IsWhitelistedHopAsset(&types.AssetInfo{ContractAddress: testContract}))
	require.True(t, params.IsWhitelistedHopAsset(&types.AssetInfo{Denom: "usdt"}))
	require.False(t, params.IsWhitelistedHopAsset(&types.AssetInfo{Denom: "inj"}))
}

func TestTipFeeFor(t *testing.T) {
	params := types.DefaultParams()
	params.WhitelistedTipFees = []types.TipFee{
		{AssetInfo: types.AssetInfo{Denom: "inj"}, PerHopFee: math.NewInt(100)},
	}

	fee := params.TipFeeFor(&types.AssetInfo{Denom: "inj"})
	require.NotNil(t, fee)
	require.Equal(t, math.NewInt(100), fee.PerHopFee)

	require.Nil(t, params.TipFeeFor(&types.AssetInfo{Denom: "usdt"}))
}
