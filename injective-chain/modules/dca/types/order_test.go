package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

var (
	testOwner    = sdk.AccAddress("owner_______________").String()
	testContract = sdk.AccAddress("cw20_token__________").String()
)

func validOrder() types.DcaOrder {
	return types.DcaOrder{
		Id:           1,
		Owner:        testOwner,
		InitialAsset: types.NewNativeAsset("inj", math.NewInt(300)),
		TargetAsset:  types.AssetInfo{ContractAddress: testContract},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
	}
}

func TestDcaOrderValidate(t *testing.T) {
	order := validOrder()
	require.NoError(t, order.Validate())

	tests := []struct {
		name   string
		mutate func(o *types.DcaOrder)
		err    error
	}{
		{
			name:   "zero id",
			mutate: func(o *types.DcaOrder) { o.Id = 0 },
			err:    types.ErrNonExistentDca,
		},
		{
			name:   "bad owner",
			mutate: func(o *types.DcaOrder) { o.Owner = "nope" },
			err:    types.ErrInvalidAsset,
		},
		{
			name:   "same initial and target asset",
			mutate: func(o *types.DcaOrder) { o.TargetAsset = types.AssetInfo{Denom: "inj"} },
			err:    types.ErrDuplicateAsset,
		},
		{
			name:   "zero interval",
			mutate: func(o *types.DcaOrder) { o.Interval = 0 },
			err:    types.ErrInvalidAsset,
		},
		{
			name:   "zero dca amount",
			mutate: func(o *types.DcaOrder) { o.DcaAmount = math.ZeroInt() },
			err:    types.ErrInvalidZeroAmount,
		},
		{
			name:   "dca amount above deposit",
			mutate: func(o *types.DcaOrder) { o.DcaAmount = math.NewInt(400) },
			err:    types.ErrDepositTooSmall,
		},
		{
			name:   "indivisible deposit",
			mutate: func(o *types.DcaOrder) { o.DcaAmount = math.NewInt(170) },
			err:    types.ErrIndivisibleDeposit,
		},
		{
			name: "spread above one",
			mutate: func(o *types.DcaOrder) {
				spread := math.LegacyNewDec(2)
				o.MaxSpread = &spread
			},
			err: types.ErrInvalidAsset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(&order)
			require.ErrorIs(t, order.Validate(), tt.err)
		})
	}
}

func TestEffectiveMaxHops(t *testing.T) {
	params := types.DefaultParams()
	order := validOrder()

	// module default when nothing overrides it
	require.Equal(t, params.MaxHops, order.EffectiveMaxHops(nil, params))

	// user override beats the default
	settings := &types.UserSettings{MaxHops: 2}
	require.Equal(t, uint32(2), order.EffectiveMaxHops(settings, params))

	// per-order cap beats both
	order.MaxHops = 5
	require.Equal(t, uint32(5), order.EffectiveMaxHops(settings, params))
}

func TestEffectiveMaxSpread(t *testing.T) {
	params := types.DefaultParams()
	order := validOrder()

	require.Equal(t, params.MaxSpread, order.EffectiveMaxSpread(nil, params))

	userSpread := math.LegacyNewDecWithPrec(1, 2)
	settings := &types.UserSettings{MaxSpread: &userSpread}
	require.Equal(t, userSpread, order.EffectiveMaxSpread(settings, params))

	orderSpread := math.LegacyNewDecWithPrec(3, 2)
	order.MaxSpread = &orderSpread
	require.Equal(t, orderSpread, order.EffectiveMaxSpread(settings, params))
}

func TestPurchaseDueAt(t *testing.T) {
	order := validOrder()

	// never executed, no start time: due since the epoch
	require.Equal(t, uint64(3600), order.PurchaseDueAt())

	// a start time gates the first purchase only
	order.StartPurchase = 10_000
	require.Equal(t, uint64(10_000), order.PurchaseDueAt())

	order.LastPurchase = 10_000
	require.Equal(t, uint64(13_600), order.PurchaseDueAt())
}

func TestIsPurchaseDue(t *testing.T) {
	order := validOrder()

	require.True(t, order.IsPurchaseDue(1))

	order.StartPurchase = 1000
	require.False(t, order.IsPurchaseDue(999))
	require.True(t, order.IsPurchaseDue(1000))

	order.LastPurchase = 1000
	require.False(t, order.IsPurchaseDue(4599))

	// the boundary itself is accepted
	require.True(t, order.IsPurchaseDue(4600))
}

func TestUserSettingsIsEmpty(t *testing.T) {
	settings := types.UserSettings{}
	require.True(t, settings.IsEmpty())

	settings.MaxHops = 1
	require.False(t, settings.IsEmpty())

	spread := math.LegacyNewDecWithPrec(1, 2)
	settings = types.UserSettings{MaxSpread: &spread}
	require.False(t, settings.IsEmpty())
}
