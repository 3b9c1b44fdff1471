package orchestrator

import (
	"context"
	"testing"

	"github.com/InjectiveLabs/coretracer"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

func newTestExecutor(t *testing.T, net *fakeNetwork) *executor {
	t.Helper()

	orc, err := NewOrchestrator(net, fakePriceFeed{}, Config{})
	require.NoError(t, err)
	orc.maxAttempts = 3

	return &executor{
		Orchestrator: orc,
		svcTags:      coretracer.NewTag("svc", "dca_executor"),
	}
}

func TestExecutePurchaseBroadcasts(t *testing.T) {
	net := &fakeNetwork{}
	l := newTestExecutor(t, net)

	l.executePurchase(context.Background(), plannedPurchase{
		orderID: 7,
		owner:   testOwner,
		hops: []types.SwapOperation{{
			OfferAssetInfo: types.AssetInfo{Denom: "inj"},
			AskAssetInfo:   types.AssetInfo{ContractAddress: testContract},
		}},
	})

	require.Equal(t, []uint64{7}, net.purchased)
	require.Equal(t, 1, net.attempts)
}

func TestExecutePurchaseDropsModuleRejections(t *testing.T) {
	net := &fakeNetwork{
		purchaseErr: errors.New("rpc error: purchase interval has not elapsed yet"),
	}
	l := newTestExecutor(t, net)

	l.executePurchase(context.Background(), plannedPurchase{orderID: 7, owner: testOwner})

	// a deterministic rejection is dropped without a retry
	require.Equal(t, 1, net.attempts)
	require.Empty(t, net.purchased)
}

func TestExecutePurchaseRetriesTransientErrors(t *testing.T) {
	net := &fakeNetwork{
		purchaseErr: errors.New("post failed: connection refused"),
	}
	l := newTestExecutor(t, net)

	l.executePurchase(context.Background(), plannedPurchase{orderID: 7, owner: testOwner})

	require.Equal(t, 3, net.attempts)
	require.Empty(t, net.purchased)
}

func TestIsPurchaseRejection(t *testing.T) {
	rejections := []string{
		"purchase interval has not elapsed yet",
		"dca order does not exist",
		"order deposit cannot cover the purchase",
		"no tip jar covers the bot fee",
		"invalid hop route",
	}
	for _, msg := range rejections {
		require.True(t, isPurchaseRejection(errors.New(msg)), msg)
	}

	require.False(t, isPurchaseRejection(errors.New("connection refused")))
	require.False(t, isPurchaseRejection(errors.New("account sequence mismatch")))
}
