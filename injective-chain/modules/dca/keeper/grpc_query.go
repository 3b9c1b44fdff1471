package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

var _ types.QueryServer = queryServer{}

type queryServer struct {
	Keeper
	svcTags metrics.Tags
}

// NewQueryServerImpl returns an implementation of the dca QueryServer
// interface for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{
		Keeper: keeper,
		svcTags: metrics.Tags{
			"svc": "dca_q",
		},
	}
}

func (q queryServer) Config(goCtx context.Context, _ *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, q.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryConfigResponse{Params: q.GetParams(ctx)}, nil
}

func (q queryServer) DcaOrder(goCtx context.Context, req *types.QueryDcaOrderRequest) (*types.QueryDcaOrderResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, q.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)

	order := q.GetDcaOrder(ctx, req.Id)
	if order == nil {
		metrics.ReportFuncError(q.svcTags)
		return nil, errors.Wrapf(types.ErrNonExistentDca, "order %d", req.Id)
	}

	return &types.QueryDcaOrderResponse{Order: *order}, nil
}

func (q queryServer) DcaOrders(goCtx context.Context, req *types.QueryDcaOrdersRequest) (*types.QueryDcaOrdersResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, q.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)
	limit := clampOrdersLimit(req.Limit)

	orders := make([]types.DcaOrder, 0, limit)
	q.IterateDcaOrders(ctx, req.IsAscending, func(order types.DcaOrder) bool {
		// start_after is an exclusive cursor in the iteration direction
		if req.StartAfter != 0 {
			if req.IsAscending && order.Id <= req.StartAfter {
				return false
			}
			if !req.IsAscending && order.Id >= req.StartAfter {
				return false
			}
		}
		orders = append(orders, order)
		return uint32(len(orders)) >= limit
	})

	return &types.QueryDcaOrdersResponse{Orders: orders}, nil
}

func (q queryServer) UserDcaOrders(goCtx context.Context, req *types.QueryUserDcaOrdersRequest) (*types.QueryUserDcaOrdersResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, q.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)

	user, err := sdk.AccAddressFromBech32(req.User)
	if err != nil {
		metrics.ReportFuncError(q.svcTags)
		return nil, errors.Wrap(sdkerrors.ErrInvalidAddress, req.User)
	}

	orders := make([]types.UserDcaOrder, 0)
	q.IterateDcaOrdersByOwner(ctx, user, func(order types.DcaOrder) bool {
		orders = append(orders, q.enrichOrder(ctx, order))
		return false
	})

	return &types.QueryUserDcaOrdersResponse{Orders: orders}, nil
}

func (q queryServer) UserAssetDcaOrders(goCtx context.Context, req *types.QueryUserAssetDcaOrdersRequest) (*types.QueryUserAssetDcaOrdersResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, q.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)

	user, err := sdk.AccAddressFromBech32(req.User)
	if err != nil {
		metrics.ReportFuncError(q.svcTags)
		return nil, errors.Wrap(sdkerrors.ErrInvalidAddress, req.User)
	}
	if err := req.AssetInfo.Validate(); err != nil {
		metrics.ReportFuncError(q.svcTags)
		return nil, err
	}

	limit := clampOrdersLimit(req.Limit)

	orders := make([]types.UserDcaOrder, 0, limit)
	q.IterateDcaOrdersByOwnerAsset(ctx, user, req.AssetInfo.ID(), func(order types.DcaOrder) bool {
		if req.StartAfter != 0 && order.Id <= req.StartAfter {
			return false
		}
		orders = append(orders, q.enrichOrder(ctx, order))
		return uint32(len(orders)) >= limit
	})

	return &types.QueryUserAssetDcaOrdersResponse{Orders: orders}, nil
}

func (q queryServer) UserTips(goCtx context.Context, req *types.QueryUserTipsRequest) (*types.QueryUserTipsResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, q.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)

	user, err := sdk.AccAddressFromBech32(req.User)
	if err != nil {
		metrics.ReportFuncError(q.svcTags)
		return nil, errors.Wrap(sdkerrors.ErrInvalidAddress, req.User)
	}

	return &types.QueryUserTipsResponse{Tips: q.GetUserTips(ctx, user)}, nil
}

func (q queryServer) TipFees(goCtx context.Context, _ *types.QueryTipFeesRequest) (*types.QueryTipFeesResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, q.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryTipFeesResponse{TipFees: q.GetParams(ctx).WhitelistedTipFees}, nil
}

func (q queryServer) UserConfig(goCtx context.Context, req *types.QueryUserConfigRequest) (*types.QueryUserConfigResponse, error) {
	goCtx, doneFn := metrics.ReportFuncCallAndTimingCtx(goCtx, q.svcTags)
	defer doneFn()

	ctx := sdk.UnwrapSDKContext(goCtx)

	user, err := sdk.AccAddressFromBech32(req.User)
	if err != nil {
		metrics.ReportFuncError(q.svcTags)
		return nil, errors.Wrap(sdkerrors.ErrInvalidAddress, req.User)
	}

	settings := q.GetUserSettings(ctx, user)
	if settings == nil {
		settings = &types.UserSettings{}
	}

	return &types.QueryUserConfigResponse{Settings: *settings}, nil
}

// enrichOrder pairs the order with the spendable amount backing it: the
// remaining escrow for native deposits, the live allowance for cw20 ones.
func (q queryServer) enrichOrder(ctx sdk.Context, order types.DcaOrder) types.UserDcaOrder {
	allowance := order.InitialAsset.Amount
	if !order.InitialAsset.Info.IsNative() {
		queried, err := q.QueryTokenAllowance(ctx, order.InitialAsset.Info.ContractAddress, order.Owner)
		if err != nil {
			q.Logger(ctx).Debug("allowance query failed", "order", order.Id, "error", err)
			queried = math.ZeroInt()
		}
		allowance = queried
	}

	return types.UserDcaOrder{
		Order:          order,
		TokenAllowance: allowance,
	}
}

func clampOrdersLimit(limit uint32) uint32 {
	switch {
	case limit == 0:
		return types.DefaultOrdersLimit
	case limit > types.MaxOrdersLimit:
		return types.MaxOrdersLimit
	default:
		return limit
	}
}
