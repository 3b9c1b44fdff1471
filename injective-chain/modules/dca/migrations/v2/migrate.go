package v2

import (
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

// Migrate rebuilds both order indices from the primary order store. The v1
// state kept orders without secondary indices, so owner-scoped queries had to
// scan the whole book.
func Migrate(ctx sdk.Context, store storetypes.KVStore, cdc codec.BinaryCodec) error {
	ordersStore := prefix.NewStore(store, types.OrdersPrefix)
	ownerIndexStore := prefix.NewStore(store, types.OrdersByOwnerPrefix)
	ownerAssetIndexStore := prefix.NewStore(store, types.OrdersByOwnerAssetPrefix)

	// drop any stale index entries before rebuilding
	for _, indexStore := range []prefix.Store{ownerIndexStore, ownerAssetIndexStore} {
		iter := indexStore.Iterator(nil, nil)
		keys := make([][]byte, 0)
		for ; iter.Valid(); iter.Next() {
			keys = append(keys, iter.Key())
		}
		iter.Close()
		for _, key := range keys {
			indexStore.Delete(key)
		}
	}

	iter := ordersStore.Iterator(nil, nil)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		var order types.DcaOrder
		if err := cdc.Unmarshal(iter.Value(), &order); err != nil {
			return err
		}

		owner, err := sdk.AccAddressFromBech32(order.Owner)
		if err != nil {
			return err
		}

		idBz := sdk.Uint64ToBigEndian(order.Id)
		ownerIndexStore.Set(types.GetOwnerIndexKey(owner, order.Id), idBz)
		ownerAssetIndexStore.Set(types.GetOwnerAssetIndexKey(owner, order.InitialAsset.Info.ID(), order.Id), idBz)
	}

	return nil
}
