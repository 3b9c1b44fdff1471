package keeper

import (
	storetypes "cosmossdk.io/store/types"
)

type iterCb func(k, v []byte) (stop bool)

// iterateSafe ensures the Iterator is closed even if the work done inside the callback panics.
func iterateSafe(iter storetypes.Iterator, callback iterCb) {
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		if callback(iter.Key(), iter.Value()) {
			return
		}
	}
}
