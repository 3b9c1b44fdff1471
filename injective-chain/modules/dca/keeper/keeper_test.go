package keeper_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/api/cometbft/types/v1"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/keeper"
	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

var (
	ownerAddr   = sdk.AccAddress("owner_______________")
	otherAddr   = sdk.AccAddress("other_______________")
	botAddr     = sdk.AccAddress("bot_________________")
	adminAddr   = sdk.AccAddress("admin_______________")
	routerAddr  = sdk.AccAddress("router______________")
	factoryAddr = sdk.AccAddress("factory_____________")
	cw20Addr    = sdk.AccAddress("cw20_token__________")
	cw20MidAddr = sdk.AccAddress("cw20_middle_________")

	moduleAddr = authtypes.NewModuleAddress(types.ModuleName)

	testBlockTime = time.Unix(1_700_000_000, 0).UTC()
)

type testFixture struct {
	ctx    sdk.Context
	keeper keeper.Keeper
	bank   *mockBank
	wasm   *mockWasm

	msgServer   types.MsgServer
	queryServer types.QueryServer
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), storemetrics.NewNoOpMetrics())
	cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	require.NoError(t, cms.LoadLatestVersion())

	ctx := sdk.NewContext(cms, cmtproto.Header{Time: testBlockTime}, false, log.NewNopLogger())
	ctx = ctx.WithBlockTime(testBlockTime)

	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())

	bank := newMockBank()
	wasm := newMockWasm()

	k := keeper.NewKeeper(cdc, key, bank, wasm, wasm)
	k.InitGenesis(ctx, types.GenesisState{
		Params:      testParams(),
		NextOrderId: 1,
	})

	return &testFixture{
		ctx:         ctx,
		keeper:      k,
		bank:        bank,
		wasm:        wasm,
		msgServer:   keeper.NewMsgServerImpl(k),
		queryServer: keeper.NewQueryServerImpl(k),
	}
}

// testParams configures the router and factory contracts, whitelists the two
// cw20 test tokens as intermediates and accepts inj and the cw20 token for
// tips.
func testParams() types.Params {
	params := types.DefaultParams()
	params.RouterAddress = routerAddr.String()
	params.FactoryAddress = factoryAddr.String()
	params.WhitelistedTokens = []types.AssetInfo{
		{ContractAddress: cw20Addr.String()},
		{ContractAddress: cw20MidAddr.String()},
		{Denom: "usdt"},
	}
	params.WhitelistedTipFees = []types.TipFee{
		{AssetInfo: types.AssetInfo{Denom: "inj"}, PerHopFee: math.NewInt(100)},
		{AssetInfo: types.AssetInfo{ContractAddress: cw20Addr.String()}, PerHopFee: math.NewInt(10)},
	}
	return params
}

func (f *testFixture) goCtx() context.Context {
	return sdk.WrapSDKContext(f.ctx)
}

func (f *testFixture) advanceTime(d time.Duration) {
	f.ctx = f.ctx.WithBlockTime(f.ctx.BlockTime().Add(d))
}

func (f *testFixture) blockUnix() uint64 {
	return uint64(f.ctx.BlockTime().Unix())
}

// createNativeOrder funds the owner and creates a plain inj -> cw20 order.
func (f *testFixture) createNativeOrder(t *testing.T, deposit, dcaAmount int64) uint64 {
	t.Helper()

	f.bank.mint(ownerAddr, sdk.NewCoin("inj", math.NewInt(deposit)))

	resp, err := f.msgServer.CreateDcaOrder(f.goCtx(), &types.MsgCreateDcaOrder{
		Sender:       ownerAddr.String(),
		InitialAsset: types.NewNativeAsset("inj", math.NewInt(deposit)),
		TargetAsset:  types.AssetInfo{ContractAddress: cw20Addr.String()},
		Interval:     3600,
		DcaAmount:    math.NewInt(dcaAmount),
	})
	require.NoError(t, err)

	return resp.Id
}

// fundNativeTip mints inj for the owner and credits their tip jar with it.
func (f *testFixture) fundNativeTip(t *testing.T, amount int64) {
	t.Helper()

	f.bank.mint(ownerAddr, sdk.NewCoin("inj", math.NewInt(amount)))
	_, err := f.msgServer.AddBotTip(f.goCtx(), &types.MsgAddBotTip{
		Sender: ownerAddr.String(),
		Asset:  types.NewNativeAsset("inj", math.NewInt(amount)),
	})
	require.NoError(t, err)
}

// mockBank is an in-memory bank keeper tracking account and module balances.
type mockBank struct {
	balances map[string]sdk.Coins
}

func newMockBank() *mockBank {
	return &mockBank{balances: make(map[string]sdk.Coins)}
}

func (b *mockBank) mint(addr sdk.AccAddress, coins ...sdk.Coin) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(coins...)
}

func (b *mockBank) balanceOf(addr sdk.AccAddress, denom string) math.Int {
	return b.balances[addr.String()].AmountOf(denom)
}

func (b *mockBank) send(from, to string, amt sdk.Coins) error {
	balance := b.balances[from]
	if !balance.IsAllGTE(amt) {
		return errors.Errorf("spendable balance %s is smaller than %s: insufficient funds", balance.String(), amt.String())
	}
	b.balances[from] = balance.Sub(amt...)
	b.balances[to] = b.balances[to].Add(amt...)
	return nil
}

func (b *mockBank) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

func (b *mockBank) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.send(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

func (b *mockBank) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.send(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

func (b *mockBank) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.send(fromAddr.String(), toAddr.String(), amt)
}

// routerCall records one swap submitted to the router contract.
type routerCall struct {
	contract string
	msg      []byte
	funds    sdk.Coins
}

// mockWasm fakes the wasm keeper pair: cw20 allowances and balances plus the
// factory config query and the router execute entrypoint.
type mockWasm struct {
	factoryOwner string

	// contract|address keyed cw20 state
	allowances map[string]math.Int
	balances   map[string]math.Int

	swaps []routerCall

	// when set, router executions fail with this error
	swapErr error
}

func newMockWasm() *mockWasm {
	return &mockWasm{
		factoryOwner: adminAddr.String(),
		allowances:   make(map[string]math.Int),
		balances:     make(map[string]math.Int),
	}
}

func cw20Key(contract, addr string) string {
	return contract + "|" + addr
}

// setAllowance grants the module a spending allowance and backs it with an
// owner balance of the same size.
func (w *mockWasm) setAllowance(contract, owner sdk.AccAddress, amount math.Int) {
	w.allowances[cw20Key(contract.String(), owner.String())] = amount
	w.creditCw20(contract, owner, amount)
}

func (w *mockWasm) creditCw20(contract, addr sdk.AccAddress, amount math.Int) {
	key := cw20Key(contract.String(), addr.String())
	balance, ok := w.balances[key]
	if !ok {
		balance = math.ZeroInt()
	}
	w.balances[key] = balance.Add(amount)
}

func (w *mockWasm) cw20BalanceOf(contract, addr sdk.AccAddress) math.Int {
	balance, ok := w.balances[cw20Key(contract.String(), addr.String())]
	if !ok {
		return math.ZeroInt()
	}
	return balance
}

func (w *mockWasm) allowanceOf(contract, owner sdk.AccAddress) math.Int {
	allowance, ok := w.allowances[cw20Key(contract.String(), owner.String())]
	if !ok {
		return math.ZeroInt()
	}
	return allowance
}

func (w *mockWasm) QuerySmart(_ context.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error) {
	var query struct {
		Allowance *struct {
			Owner   string `json:"owner"`
			Spender string `json:"spender"`
		} `json:"allowance"`
		Config *struct{} `json:"config"`
	}
	if err := json.Unmarshal(req, &query); err != nil {
		return nil, err
	}

	switch {
	case query.Allowance != nil:
		allowance, ok := w.allowances[cw20Key(contractAddr.String(), query.Allowance.Owner)]
		if !ok {
			allowance = math.ZeroInt()
		}
		return json.Marshal(struct {
			Allowance math.Int `json:"allowance"`
		}{Allowance: allowance})
	case query.Config != nil:
		return json.Marshal(struct {
			Owner string `json:"owner"`
		}{Owner: w.factoryOwner})
	default:
		return nil, errors.Errorf("unknown query: %s", string(req))
	}
}

func (w *mockWasm) Execute(_ sdk.Context, contractAddress, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error) {
	var exec struct {
		Transfer *struct {
			Recipient string   `json:"recipient"`
			Amount    math.Int `json:"amount"`
		} `json:"transfer"`
		TransferFrom *struct {
			Owner     string   `json:"owner"`
			Recipient string   `json:"recipient"`
			Amount    math.Int `json:"amount"`
		} `json:"transfer_from"`
		ExecuteSwapOperations *json.RawMessage `json:"execute_swap_operations"`
	}
	if err := json.Unmarshal(msg, &exec); err != nil {
		return nil, err
	}

	switch {
	case exec.Transfer != nil:
		return nil, w.moveCw20(contractAddress.String(), caller.String(), exec.Transfer.Recipient, exec.Transfer.Amount)

	case exec.TransferFrom != nil:
		allowanceKey := cw20Key(contractAddress.String(), exec.TransferFrom.Owner)
		allowance, ok := w.allowances[allowanceKey]
		if !ok || allowance.LT(exec.TransferFrom.Amount) {
			return nil, errors.Errorf("no allowance for %s", caller.String())
		}
		w.allowances[allowanceKey] = allowance.Sub(exec.TransferFrom.Amount)
		return nil, w.moveCw20(contractAddress.String(), exec.TransferFrom.Owner, exec.TransferFrom.Recipient, exec.TransferFrom.Amount)

	case exec.ExecuteSwapOperations != nil:
		if w.swapErr != nil {
			return nil, w.swapErr
		}
		w.swaps = append(w.swaps, routerCall{
			contract: contractAddress.String(),
			msg:      msg,
			funds:    coins,
		})
		return nil, nil

	default:
		return nil, errors.Errorf("unknown execute msg: %s", string(msg))
	}
}

func (w *mockWasm) moveCw20(contract, from, to string, amount math.Int) error {
	fromKey := cw20Key(contract, from)
	balance, ok := w.balances[fromKey]
	if !ok || balance.LT(amount) {
		return errors.Errorf("insufficient cw20 balance of %s", from)
	}
	w.balances[fromKey] = balance.Sub(amount)

	toKey := cw20Key(contract, to)
	toBalance, ok := w.balances[toKey]
	if !ok {
		toBalance = math.ZeroInt()
	}
	w.balances[toKey] = toBalance.Add(amount)
	return nil
}

// directHop is the single-hop route of an order created by createNativeOrder.
func directHop() []types.SwapOperation {
	return []types.SwapOperation{{
		OfferAssetInfo: types.AssetInfo{Denom: "inj"},
		AskAssetInfo:   types.AssetInfo{ContractAddress: cw20Addr.String()},
	}}
}
