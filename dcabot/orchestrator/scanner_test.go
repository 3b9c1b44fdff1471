package orchestrator

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

var (
	testOwner    = "inj1cml96vmptgw99syqrrz8az79xer2pcgp0a885r"
	testContract = "inj14au322k9munkmx5wrchz9q30juf5wjgz2cfqku"
	testMid      = "inj1hkhdaj2a2clmq5jq6mspsggqs32vynpk228q3r"
)

func testScanParams() *types.Params {
	params := types.DefaultParams()
	params.WhitelistedTokens = []types.AssetInfo{
		{ContractAddress: testContract},
		{ContractAddress: testMid},
	}
	params.WhitelistedTipFees = []types.TipFee{
		{AssetInfo: types.AssetInfo{Denom: "inj"}, PerHopFee: math.NewInt(100)},
	}
	return &params
}

// fakeNetwork serves a static order book from memory.
type fakeNetwork struct {
	params    *types.Params
	orders    []types.DcaOrder
	tips      map[string][]types.Asset
	settings  map[string]*types.UserSettings
	blockTime time.Time

	purchased   []uint64
	purchaseErr error
	attempts    int
}

func (n *fakeNetwork) DcaParams(context.Context) (*types.Params, error) {
	return n.params, nil
}

func (n *fakeNetwork) DcaOrders(_ context.Context, startAfter uint64, limit uint32) ([]types.DcaOrder, error) {
	page := make([]types.DcaOrder, 0, limit)
	for _, order := range n.orders {
		if startAfter != 0 && order.Id <= startAfter {
			continue
		}
		page = append(page, order)
		if uint32(len(page)) >= limit {
			break
		}
	}
	return page, nil
}

func (n *fakeNetwork) UserTips(_ context.Context, user string) ([]types.Asset, error) {
	return n.tips[user], nil
}

func (n *fakeNetwork) UserConfig(_ context.Context, user string) (*types.UserSettings, error) {
	if settings, ok := n.settings[user]; ok {
		return settings, nil
	}
	return &types.UserSettings{}, nil
}

func (n *fakeNetwork) LatestBlockTime(context.Context) (time.Time, error) {
	return n.blockTime, nil
}

func (n *fakeNetwork) PerformDcaPurchase(_ context.Context, id uint64, _ []types.SwapOperation) error {
	n.attempts++
	if n.purchaseErr != nil {
		return n.purchaseErr
	}
	n.purchased = append(n.purchased, id)
	return nil
}

// fakePriceFeed accepts or rejects every tip.
type fakePriceFeed struct {
	accept bool
}

func (f fakePriceFeed) QueryUSDPrice(context.Context, types.AssetInfo) (float64, error) {
	return 1, nil
}

func (f fakePriceFeed) CheckTipThreshold(context.Context, types.AssetInfo, math.Int, float64) bool {
	return f.accept
}

func testOrder(id uint64, lastPurchase uint64) types.DcaOrder {
	return types.DcaOrder{
		Id:           id,
		Owner:        testOwner,
		InitialAsset: types.NewNativeAsset("inj", math.NewInt(300)),
		TargetAsset:  types.AssetInfo{ContractAddress: testContract},
		Interval:     3600,
		DcaAmount:    math.NewInt(100),
		LastPurchase: lastPurchase,
	}
}

func newTestScanner(t *testing.T, net *fakeNetwork, feed PriceFeed, cfg Config) *scanner {
	t.Helper()

	orc, err := NewOrchestrator(net, feed, cfg)
	require.NoError(t, err)
	orc.maxAttempts = 2

	return &scanner{
		Orchestrator: orc,
		ordersPerRun: maxOrdersPerRun,
	}
}

func TestScanOrderBookPlansDueOrders(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	net := &fakeNetwork{
		params: testScanParams(),
		orders: []types.DcaOrder{
			testOrder(1, 0),                            // never purchased, due
			testOrder(2, uint64(now.Unix())),           // just purchased
			testOrder(3, uint64(now.Unix())-3600),      // exactly one interval ago, due
			testOrder(4, uint64(now.Unix())-3600+1800), // half an interval ago
		},
		tips: map[string][]types.Asset{
			testOwner: {types.NewNativeAsset("inj", math.NewInt(500))},
		},
		blockTime: now,
	}

	l := newTestScanner(t, net, fakePriceFeed{}, Config{})
	require.NoError(t, l.scanOrderBook(context.Background()))

	require.Len(t, l.pending, 2)
	first := <-l.pending
	require.Equal(t, uint64(1), first.orderID)
	require.Equal(t, testOwner, first.owner)
	require.Len(t, first.hops, 1)
	second := <-l.pending
	require.Equal(t, uint64(3), second.orderID)
}

func TestScanOrderBookSkipsUncoveredTips(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	net := &fakeNetwork{
		params:    testScanParams(),
		orders:    []types.DcaOrder{testOrder(1, 0)},
		tips:      map[string][]types.Asset{},
		blockTime: now,
	}

	l := newTestScanner(t, net, fakePriceFeed{}, Config{})
	require.NoError(t, l.scanOrderBook(context.Background()))
	require.Empty(t, l.pending)

	// a jar below one hop's fee does not count either
	net.tips[testOwner] = []types.Asset{types.NewNativeAsset("inj", math.NewInt(99))}
	require.NoError(t, l.scanOrderBook(context.Background()))
	require.Empty(t, l.pending)
}

func TestScanOrderBookTipThreshold(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	net := &fakeNetwork{
		params: testScanParams(),
		orders: []types.DcaOrder{testOrder(1, 0)},
		tips: map[string][]types.Asset{
			testOwner: {types.NewNativeAsset("inj", math.NewInt(500))},
		},
		blockTime: now,
	}

	l := newTestScanner(t, net, fakePriceFeed{accept: false}, Config{MinTipUSD: 5})
	require.NoError(t, l.scanOrderBook(context.Background()))
	require.Empty(t, l.pending)

	l = newTestScanner(t, net, fakePriceFeed{accept: true}, Config{MinTipUSD: 5})
	require.NoError(t, l.scanOrderBook(context.Background()))
	require.Len(t, l.pending, 1)
}

func TestPlanRoute(t *testing.T) {
	params := testScanParams()
	l := newTestScanner(t, &fakeNetwork{params: params}, fakePriceFeed{}, Config{})

	// non-native pair goes direct
	order := testOrder(1, 0)
	hops, ok := l.planRoute(params, &order, nil)
	require.True(t, ok)
	require.Len(t, hops, 1)
	require.Equal(t, "inj", hops[0].OfferAssetInfo.Denom)
	require.Equal(t, testContract, hops[0].AskAssetInfo.ContractAddress)

	// native-to-native goes through the first whitelisted cw20
	order.TargetAsset = types.AssetInfo{Denom: "usdt"}
	hops, ok = l.planRoute(params, &order, nil)
	require.True(t, ok)
	require.Len(t, hops, 2)
	require.Equal(t, testContract, hops[0].AskAssetInfo.ContractAddress)
	require.Equal(t, testContract, hops[1].OfferAssetInfo.ContractAddress)
	require.Equal(t, "usdt", hops[1].AskAssetInfo.Denom)

	// unless the hop cap forbids a second hop
	_, ok = l.planRoute(params, &order, &types.UserSettings{MaxHops: 1})
	require.False(t, ok)

	// or there is no cw20 intermediate at all
	bare := testScanParams()
	bare.WhitelistedTokens = []types.AssetInfo{{Denom: "usdt"}}
	_, ok = l.planRoute(bare, &order, nil)
	require.False(t, ok)
}

func TestCoveringTip(t *testing.T) {
	params := testScanParams()
	params.WhitelistedTipFees = append(params.WhitelistedTipFees, types.TipFee{
		AssetInfo: types.AssetInfo{ContractAddress: testContract},
		PerHopFee: math.NewInt(10),
	})

	net := &fakeNetwork{
		params: params,
		tips: map[string][]types.Asset{
			testOwner: {
				types.NewNativeAsset("usdt", math.NewInt(1_000_000)), // not a whitelisted tip asset
				types.NewNativeAsset("inj", math.NewInt(150)),
				types.NewTokenAsset(testContract, math.NewInt(25)),
			},
		},
	}
	l := newTestScanner(t, net, fakePriceFeed{}, Config{})

	// one hop: the first whitelisted jar that covers the fee wins
	tip, ok := l.coveringTip(context.Background(), params, testOwner, 1)
	require.True(t, ok)
	require.Equal(t, "inj", tip.Info.Denom)
	require.Equal(t, math.NewInt(100), tip.Amount)

	// two hops: the inj jar falls short, the cw20 jar takes over
	tip, ok = l.coveringTip(context.Background(), params, testOwner, 2)
	require.True(t, ok)
	require.Equal(t, testContract, tip.Info.ContractAddress)
	require.Equal(t, math.NewInt(20), tip.Amount)

	// three hops: nothing covers 300 inj or 30 tokens
	_, ok = l.coveringTip(context.Background(), params, testOwner, 3)
	require.False(t, ok)
}
