package cosmos

import (
	"context"
	"time"

	"github.com/InjectiveLabs/coretracer"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/tx"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc"

	"github.com/InjectiveLabs/injective-dca/dcabot/orchestrator/cosmos/tendermint"
	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

// MsgBroadcaster signs and broadcasts messages on behalf of the bot account.
type MsgBroadcaster interface {
	BroadcastMsg(ctx context.Context, msgs ...cosmostypes.Msg) error
}

// Network is the bot's view of the DCA module on chain: queries go over gRPC,
// block metadata over CometBFT RPC, and purchases over the tx broadcaster.
type Network struct {
	dcaQuery    types.QueryClient
	tmClient    tendermint.Client
	broadcaster MsgBroadcaster
	sender      string

	svcTags coretracer.Tags
}

func NewNetwork(
	conn *grpc.ClientConn,
	tmRPCAddr string,
	sender cosmostypes.AccAddress,
	broadcaster MsgBroadcaster,
) *Network {
	return &Network{
		dcaQuery:    types.NewQueryClient(conn),
		tmClient:    tendermint.NewRPCClient(tmRPCAddr),
		broadcaster: broadcaster,
		sender:      sender.String(),
		svcTags:     coretracer.NewTag("svc", "dca_network"),
	}
}

func (n *Network) DcaParams(ctx context.Context) (*types.Params, error) {
	defer coretracer.Trace(&ctx, n.svcTags)()

	res, err := n.dcaQuery.Config(ctx, &types.QueryConfigRequest{})
	if err != nil {
		coretracer.TraceError(ctx, err)
		return nil, err
	}

	return &res.Params, nil
}

func (n *Network) DcaOrders(ctx context.Context, startAfter uint64, limit uint32) ([]types.DcaOrder, error) {
	defer coretracer.Trace(&ctx, n.svcTags)()

	res, err := n.dcaQuery.DcaOrders(ctx, &types.QueryDcaOrdersRequest{
		StartAfter:  startAfter,
		Limit:       limit,
		IsAscending: true,
	})
	if err != nil {
		coretracer.TraceError(ctx, err)
		return nil, err
	}

	return res.Orders, nil
}

func (n *Network) UserTips(ctx context.Context, user string) ([]types.Asset, error) {
	defer coretracer.Trace(&ctx, n.svcTags)()

	res, err := n.dcaQuery.UserTips(ctx, &types.QueryUserTipsRequest{User: user})
	if err != nil {
		coretracer.TraceError(ctx, err)
		return nil, err
	}

	return res.Tips, nil
}

func (n *Network) UserConfig(ctx context.Context, user string) (*types.UserSettings, error) {
	defer coretracer.Trace(&ctx, n.svcTags)()

	res, err := n.dcaQuery.UserConfig(ctx, &types.QueryUserConfigRequest{User: user})
	if err != nil {
		coretracer.TraceError(ctx, err)
		return nil, err
	}

	return &res.Settings, nil
}

func (n *Network) LatestBlockTime(ctx context.Context) (time.Time, error) {
	defer coretracer.Trace(&ctx, n.svcTags)()

	block, err := n.tmClient.GetLatestBlock(ctx)
	if err != nil {
		coretracer.TraceError(ctx, err)
		return time.Time{}, err
	}

	return block.Block.Time, nil
}

func (n *Network) PerformDcaPurchase(ctx context.Context, id uint64, hops []types.SwapOperation) error {
	defer coretracer.Trace(&ctx, n.svcTags)()

	msg := &types.MsgPerformDcaPurchase{
		Sender: n.sender,
		Id:     id,
		Hops:   hops,
	}

	if err := n.broadcaster.BroadcastMsg(ctx, msg); err != nil {
		coretracer.TraceError(ctx, err)
		return err
	}

	return nil
}

// broadcastClient is the default MsgBroadcaster, signing with the key behind
// clientCtx.FromAddress and broadcasting in sync mode.
type broadcastClient struct {
	clientCtx client.Context
	txFactory tx.Factory
}

func NewBroadcastClient(clientCtx client.Context, txFactory tx.Factory) MsgBroadcaster {
	return broadcastClient{
		clientCtx: clientCtx,
		txFactory: txFactory,
	}
}

func (c broadcastClient) BroadcastMsg(_ context.Context, msgs ...cosmostypes.Msg) error {
	return tx.BroadcastTx(c.clientCtx, c.txFactory, msgs...)
}
