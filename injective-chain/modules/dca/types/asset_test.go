package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

func TestAssetInfoValidate(t *testing.T) {
	require.NoError(t, (&types.AssetInfo{Denom: "inj"}).Validate())
	require.NoError(t, (&types.AssetInfo{ContractAddress: testContract}).Validate())

	tests := []struct {
		name string
		info types.AssetInfo
	}{
		{"empty", types.AssetInfo{}},
		{"both identities set", types.AssetInfo{Denom: "inj", ContractAddress: testContract}},
		{"bad denom", types.AssetInfo{Denom: "!"}},
		{"bad contract address", types.AssetInfo{ContractAddress: "not-bech32"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.info.Validate(), types.ErrInvalidAsset)
		})
	}
}

func TestAssetInfoID(t *testing.T) {
	native := types.AssetInfo{Denom: "inj"}
	require.True(t, native.IsNative())
	require.Equal(t, "inj", native.ID())

	token := types.AssetInfo{ContractAddress: testContract}
	require.False(t, token.IsNative())
	require.Equal(t, testContract, token.ID())
}

func TestAssetValidate(t *testing.T) {
	asset := types.NewNativeAsset("inj", math.NewInt(100))
	require.NoError(t, asset.Validate())

	// zero is a valid stored amount, negative and uninitialized are not
	asset.Amount = math.ZeroInt()
	require.NoError(t, asset.Validate())

	asset.Amount = math.NewInt(-1)
	require.ErrorIs(t, asset.Validate(), types.ErrInvalidAsset)

	asset.Amount = math.Int{}
	require.ErrorIs(t, asset.Validate(), types.ErrInvalidAsset)
}

func TestSwapOperationValidate(t *testing.T) {
	op := types.SwapOperation{
		OfferAssetInfo: types.AssetInfo{Denom: "inj"},
		AskAssetInfo:   types.AssetInfo{ContractAddress: testContract},
	}
	require.NoError(t, op.Validate())

	op.AskAssetInfo = op.OfferAssetInfo
	require.ErrorIs(t, op.Validate(), types.ErrInvalidAsset)

	op.AskAssetInfo = types.AssetInfo{}
	require.ErrorIs(t, op.Validate(), types.ErrInvalidAsset)
}

func TestTipFeeValidate(t *testing.T) {
	fee := types.TipFee{
		AssetInfo: types.AssetInfo{Denom: "inj"},
		PerHopFee: math.NewInt(100),
	}
	require.NoError(t, fee.Validate())

	fee.PerHopFee = math.ZeroInt()
	require.ErrorIs(t, fee.Validate(), types.ErrInvalidTipAmount)

	fee = types.TipFee{AssetInfo: types.AssetInfo{}, PerHopFee: math.NewInt(1)}
	require.ErrorIs(t, fee.Validate(), types.ErrInvalidAsset)
}
