package keeper

import (
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

// nextOrderID draws the next unique order id from the counter. Ids are
// monotonically increasing and never reused.
func (k *Keeper) nextOrderID(ctx sdk.Context) (uint64, error) {
	return k.orderID.Next(ctx)
}

// PeekNextOrderID returns the id the next created order will receive without
// consuming it.
func (k *Keeper) PeekNextOrderID(ctx sdk.Context) uint64 {
	id, err := k.orderID.Peek(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

func (k *Keeper) setNextOrderID(ctx sdk.Context, id uint64) {
	if err := k.orderID.Set(ctx, id); err != nil {
		panic(err)
	}
}

// GetDcaOrder returns the order stored under the id, or nil when absent.
func (k *Keeper) GetDcaOrder(ctx sdk.Context, id uint64) *types.DcaOrder {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	ordersStore := prefix.NewStore(k.getStore(ctx), types.OrdersPrefix)
	bz := ordersStore.Get(types.GetOrderKey(id))
	if bz == nil {
		return nil
	}

	var order types.DcaOrder
	k.cdc.MustUnmarshal(bz, &order)
	return &order
}

// SetDcaOrder persists the order and keeps both secondary indices in sync in
// the same commit.
func (k *Keeper) SetDcaOrder(ctx sdk.Context, order *types.DcaOrder) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	store := k.getStore(ctx)
	owner := sdk.MustAccAddressFromBech32(order.Owner)

	// an asset-info change moves the order between owner-asset index subspaces
	if prev := k.GetDcaOrder(ctx, order.Id); prev != nil {
		k.removeOrderIndexEntries(ctx, prev)
	}

	ordersStore := prefix.NewStore(store, types.OrdersPrefix)
	ordersStore.Set(types.GetOrderKey(order.Id), k.cdc.MustMarshal(order))

	idBz := sdk.Uint64ToBigEndian(order.Id)

	ownerIndexStore := prefix.NewStore(store, types.OrdersByOwnerPrefix)
	ownerIndexStore.Set(types.GetOwnerIndexKey(owner, order.Id), idBz)

	ownerAssetIndexStore := prefix.NewStore(store, types.OrdersByOwnerAssetPrefix)
	ownerAssetIndexStore.Set(types.GetOwnerAssetIndexKey(owner, order.InitialAsset.Info.ID(), order.Id), idBz)
}

// DeleteDcaOrder removes the order from the primary store and both indices.
func (k *Keeper) DeleteDcaOrder(ctx sdk.Context, order *types.DcaOrder) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	ordersStore := prefix.NewStore(k.getStore(ctx), types.OrdersPrefix)
	ordersStore.Delete(types.GetOrderKey(order.Id))

	k.removeOrderIndexEntries(ctx, order)
}

func (k *Keeper) removeOrderIndexEntries(ctx sdk.Context, order *types.DcaOrder) {
	store := k.getStore(ctx)
	owner := sdk.MustAccAddressFromBech32(order.Owner)

	ownerIndexStore := prefix.NewStore(store, types.OrdersByOwnerPrefix)
	ownerIndexStore.Delete(types.GetOwnerIndexKey(owner, order.Id))

	ownerAssetIndexStore := prefix.NewStore(store, types.OrdersByOwnerAssetPrefix)
	ownerAssetIndexStore.Delete(types.GetOwnerAssetIndexKey(owner, order.InitialAsset.Info.ID(), order.Id))
}

// IterateDcaOrders iterates over every order in id order, ascending or
// descending, until process returns true.
func (k *Keeper) IterateDcaOrders(ctx sdk.Context, ascending bool, process func(order types.DcaOrder) (stop bool)) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	ordersStore := prefix.NewStore(k.getStore(ctx), types.OrdersPrefix)

	var iterator storetypes.Iterator
	if ascending {
		iterator = ordersStore.Iterator(nil, nil)
	} else {
		iterator = ordersStore.ReverseIterator(nil, nil)
	}

	iterateSafe(iterator, func(_, v []byte) bool {
		var order types.DcaOrder
		k.cdc.MustUnmarshal(v, &order)
		return process(order)
	})
}

// IterateDcaOrdersByOwner iterates over one owner's orders through the owner
// index, in descending id order.
func (k *Keeper) IterateDcaOrdersByOwner(ctx sdk.Context, owner sdk.AccAddress, process func(order types.DcaOrder) (stop bool)) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	store := k.getStore(ctx)
	ordersStore := prefix.NewStore(store, types.OrdersPrefix)
	indexStore := prefix.NewStore(store, append(types.OrdersByOwnerPrefix, types.GetOwnerIndexPrefix(owner)...))

	iterateSafe(indexStore.ReverseIterator(nil, nil), func(_, v []byte) bool {
		var order types.DcaOrder
		k.cdc.MustUnmarshal(ordersStore.Get(v), &order)
		return process(order)
	})
}

// IterateDcaOrdersByOwnerAsset iterates over one owner's orders depositing
// one asset, ascending, through the owner-asset index.
func (k *Keeper) IterateDcaOrdersByOwnerAsset(
	ctx sdk.Context,
	owner sdk.AccAddress,
	assetID string,
	process func(order types.DcaOrder) (stop bool),
) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	store := k.getStore(ctx)
	ordersStore := prefix.NewStore(store, types.OrdersPrefix)
	indexStore := prefix.NewStore(store, append(types.OrdersByOwnerAssetPrefix, types.GetOwnerAssetIndexPrefix(owner, assetID)...))

	iterateSafe(indexStore.Iterator(nil, nil), func(_, v []byte) bool {
		var order types.DcaOrder
		k.cdc.MustUnmarshal(ordersStore.Get(v), &order)
		return process(order)
	})
}

// GetAllDcaOrders returns every stored order in ascending id order.
func (k *Keeper) GetAllDcaOrders(ctx sdk.Context) []types.DcaOrder {
	orders := make([]types.DcaOrder, 0)
	k.IterateDcaOrders(ctx, true, func(order types.DcaOrder) bool {
		orders = append(orders, order)
		return false
	})
	return orders
}
