package keeper

import (
	"cosmossdk.io/collections"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/InjectiveLabs/metrics"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/gogoproto/proto"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

// Keeper of the x/dca store. It owns the order book, the tip ledger and the
// module params, and reaches the router/factory contracts through the wasm
// keepers.
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      codec.BinaryCodec

	bankKeeper    types.BankKeeper
	wasmViewer    types.WasmViewKeeper
	wasmExecutor  types.WasmContractOpsKeeper
	moduleAddress sdk.AccAddress

	orderID collections.Sequence

	svcTags metrics.Tags
}

func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	bk types.BankKeeper,
	wv types.WasmViewKeeper,
	wx types.WasmContractOpsKeeper,
) Keeper {
	sb := collections.NewSchemaBuilder(runtime.NewKVStoreService(storeKey.(*storetypes.KVStoreKey)))

	k := Keeper{
		storeKey:      storeKey,
		cdc:           cdc,
		bankKeeper:    bk,
		wasmViewer:    wv,
		wasmExecutor:  wx,
		moduleAddress: authtypes.NewModuleAddress(types.ModuleName),
		orderID:       collections.NewSequence(sb, types.OrderIDSequencePrefix, "order_id"),
		svcTags: metrics.Tags{
			"svc": "dca_k",
		},
	}

	if _, err := sb.Build(); err != nil {
		panic(err)
	}

	return k
}

func (k *Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", types.ModuleName)
}

// ModuleAddress returns the address of the dca module account holding native
// escrow and tip balances.
func (k *Keeper) ModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}

func (k *Keeper) getStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// EmitEvent emits a typed event, logging instead of failing when the event
// cannot be emitted.
func (k *Keeper) EmitEvent(ctx sdk.Context, event proto.Message) {
	if err := ctx.EventManager().EmitTypedEvent(event); err != nil {
		k.Logger(ctx).Debug("failed to emit event", "event", event, "error", err)
	}
}
