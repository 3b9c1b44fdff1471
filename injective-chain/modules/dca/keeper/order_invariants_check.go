package keeper

import (
	"fmt"

	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/go-test/deep"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

// IsOrderIndexInvariantValid should only be used by tests to verify data integrity
func (k *Keeper) IsOrderIndexInvariantValid(ctx sdk.Context) bool {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	primary := k.getAllOrderIDsFromPrimaryStore(ctx)
	fromOwnerIndex := k.getAllOrderIDsFromOwnerIndex(ctx)
	fromOwnerAssetIndex := k.getAllOrderIDsFromOwnerAssetIndex(ctx)

	isValid := true

	if diff := deep.Equal(primary, fromOwnerIndex); diff != nil {
		fmt.Println("❌ Primary order store doesnt equal orders derived from the owner index")
		fmt.Println("📢 DIFF: ", diff)

		k.Logger(ctx).Error("❌ Primary order store doesnt equal orders derived from the owner index")
		k.Logger(ctx).Error("📢 DIFF: ", fmt.Sprint(diff))
		isValid = false
	}
	if diff := deep.Equal(primary, fromOwnerAssetIndex); diff != nil {
		fmt.Println("❌ Primary order store doesnt equal orders derived from the owner-asset index")
		fmt.Println("📢 DIFF: ", diff)

		k.Logger(ctx).Error("❌ Primary order store doesnt equal orders derived from the owner-asset index")
		k.Logger(ctx).Error("📢 DIFF: ", fmt.Sprint(diff))
		isValid = false
	}

	for _, order := range k.GetAllDcaOrders(ctx) {
		if order.Id >= k.PeekNextOrderID(ctx) {
			fmt.Printf("❌ Order %d is not below the next order id %d\n", order.Id, k.PeekNextOrderID(ctx))
			k.Logger(ctx).Error(fmt.Sprintf("❌ Order %d is not below the next order id %d", order.Id, k.PeekNextOrderID(ctx)))
			isValid = false
		}
		if order.InitialAsset.Amount.IsNegative() {
			fmt.Printf("❌ Order %d carries a negative deposit %s\n", order.Id, order.InitialAsset.Amount)
			k.Logger(ctx).Error(fmt.Sprintf("❌ Order %d carries a negative deposit %s", order.Id, order.InitialAsset.Amount))
			isValid = false
		}
	}

	return isValid
}

// getAllOrderIDsFromPrimaryStore is a helper method only used by tests to verify data integrity
func (k *Keeper) getAllOrderIDsFromPrimaryStore(ctx sdk.Context) map[uint64]struct{} {
	ids := make(map[uint64]struct{})
	k.IterateDcaOrders(ctx, true, func(order types.DcaOrder) bool {
		ids[order.Id] = struct{}{}
		return false
	})
	return ids
}

// getAllOrderIDsFromOwnerIndex is a helper method only used by tests to verify data integrity
func (k *Keeper) getAllOrderIDsFromOwnerIndex(ctx sdk.Context) map[uint64]struct{} {
	ids := make(map[uint64]struct{})
	owners := make(map[string]struct{})

	k.IterateDcaOrders(ctx, true, func(order types.DcaOrder) bool {
		owners[order.Owner] = struct{}{}
		return false
	})

	for owner := range owners {
		k.IterateDcaOrdersByOwner(ctx, sdk.MustAccAddressFromBech32(owner), func(order types.DcaOrder) bool {
			ids[order.Id] = struct{}{}
			return false
		})
	}
	return ids
}

// getAllOrderIDsFromOwnerAssetIndex is a helper method only used by tests to verify data integrity
func (k *Keeper) getAllOrderIDsFromOwnerAssetIndex(ctx sdk.Context) map[uint64]struct{} {
	ids := make(map[uint64]struct{})
	subspaces := make(map[string]types.DcaOrder)

	k.IterateDcaOrders(ctx, true, func(order types.DcaOrder) bool {
		subspaces[order.Owner+"/"+order.InitialAsset.Info.ID()] = order
		return false
	})

	for _, order := range subspaces {
		owner := sdk.MustAccAddressFromBech32(order.Owner)
		k.IterateDcaOrdersByOwnerAsset(ctx, owner, order.InitialAsset.Info.ID(), func(order types.DcaOrder) bool {
			ids[order.Id] = struct{}{}
			return false
		})
	}
	return ids
}
