package types

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "dca"

	// StoreKey is the default store key for the module
	StoreKey = ModuleName

	// RouterKey is the message route
	RouterKey = ModuleName
)

const (
	// DefaultOrdersLimit is the page size applied when an orders query gives no limit.
	DefaultOrdersLimit = 10

	// MaxOrdersLimit caps the page size of orders queries.
	MaxOrdersLimit = 50
)

var (
	// ParamsKey is the key of the module params singleton.
	ParamsKey = []byte{0x01}

	// OrderIDSequencePrefix is the prefix of the order id sequence.
	OrderIDSequencePrefix = collections.NewPrefix(2)

	// OrdersPrefix + order id -> DcaOrder
	OrdersPrefix = []byte{0x03}

	// OrdersByOwnerPrefix + owner + order id -> order id
	OrdersByOwnerPrefix = []byte{0x04}

	// OrdersByOwnerAssetPrefix + owner + asset id + order id -> order id
	OrdersByOwnerAssetPrefix = []byte{0x05}

	// TipJarsPrefix + owner + asset id -> Asset
	TipJarsPrefix = []byte{0x06}

	// UserSettingsPrefix + owner -> UserSettings
	UserSettingsPrefix = []byte{0x07}
)

// GetOrderKey returns the primary store key of an order.
func GetOrderKey(id uint64) []byte {
	return sdk.Uint64ToBigEndian(id)
}

// GetOwnerIndexPrefix returns the owner index subspace of one owner.
func GetOwnerIndexPrefix(owner sdk.AccAddress) []byte {
	return address.MustLengthPrefix(owner)
}

// GetOwnerIndexKey returns the owner index key of an order.
func GetOwnerIndexKey(owner sdk.AccAddress, id uint64) []byte {
	return append(GetOwnerIndexPrefix(owner), sdk.Uint64ToBigEndian(id)...)
}

// GetOwnerAssetIndexPrefix returns the owner-asset index subspace of one owner
// and deposit asset.
func GetOwnerAssetIndexPrefix(owner sdk.AccAddress, assetID string) []byte {
	key := address.MustLengthPrefix(owner)
	key = append(key, address.MustLengthPrefix([]byte(assetID))...)
	return key
}

// GetOwnerAssetIndexKey returns the owner-asset index key of an order.
func GetOwnerAssetIndexKey(owner sdk.AccAddress, assetID string, id uint64) []byte {
	return append(GetOwnerAssetIndexPrefix(owner, assetID), sdk.Uint64ToBigEndian(id)...)
}

// GetTipJarsPrefix returns the tip jar subspace of one owner.
func GetTipJarsPrefix(owner sdk.AccAddress) []byte {
	return address.MustLengthPrefix(owner)
}

// GetTipJarKey returns the tip jar key of one owner and tip asset.
func GetTipJarKey(owner sdk.AccAddress, assetID string) []byte {
	return append(GetTipJarsPrefix(owner), []byte(assetID)...)
}

// GetUserSettingsKey returns the user settings key of one owner.
func GetUserSettingsKey(owner sdk.AccAddress) []byte {
	return owner.Bytes()
}
