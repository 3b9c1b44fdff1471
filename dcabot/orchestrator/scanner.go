package orchestrator

import (
	"context"
	"time"

	"cosmossdk.io/math"
	"github.com/InjectiveLabs/coretracer"
	log "github.com/xlab/suplog"

	"github.com/InjectiveLabs/injective-dca/dcabot/orchestrator/loops"
	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

const (
	// Page size for the order book scan. Capped by the module's own query
	// limit, so asking for more is pointless.
	ordersPageLimit = 50

	maxOrdersPerRun = 200
)

// runScanner pages through the order book on every tick, plans a route for
// each purchase that is due and profitable, and hands the plans over to the
// executor.
func (s *Orchestrator) runScanner(ctx context.Context) error {
	scanner := scanner{
		Orchestrator: s,
		ordersPerRun: s.cfg.MaxOrdersPerRun,
		svcTags:      coretracer.NewTag("svc", "dca_scanner"),
	}

	if scanner.ordersPerRun == 0 {
		scanner.ordersPerRun = maxOrdersPerRun
	}

	s.logger.WithField("loop_duration", s.cfg.LoopDuration.String()).Debugln("starting Scanner...")

	return loops.RunLoop(ctx, s.cfg.LoopDuration, func() error {
		return scanner.scanOrderBook(ctx)
	})
}

type scanner struct {
	*Orchestrator
	ordersPerRun int
	svcTags      coretracer.Tags
}

func (l *scanner) Log() log.Logger {
	return l.logger.WithField("loop", "Scanner")
}

func (l *scanner) scanOrderBook(ctx context.Context) error {
	defer coretracer.Trace(&ctx, l.svcTags)()

	params, err := l.getDcaParams(ctx)
	if err != nil {
		coretracer.TraceError(ctx, err)
		return err
	}

	blockTime, err := l.getLatestBlockTime(ctx)
	if err != nil {
		coretracer.TraceError(ctx, err)
		return err
	}

	var (
		scanned    int
		planned    int
		startAfter uint64
	)

	for scanned < l.ordersPerRun {
		orders, err := l.getDcaOrders(ctx, startAfter)
		if err != nil {
			coretracer.TraceError(ctx, err)
			return err
		}

		if len(orders) == 0 {
			break
		}

		for _, order := range orders {
			scanned++
			startAfter = order.Id

			plan, ok := l.planPurchase(ctx, params, order, blockTime)
			if !ok {
				continue
			}

			select {
			case l.pending <- plan:
				planned++
			default:
				l.Log().WithField("order_id", order.Id).Warningln("purchase queue is full, dropping plan")
			}
		}
	}

	l.Log().WithFields(log.Fields{
		"scanned": scanned,
		"planned": planned,
	}).Infoln("scanned the order book")

	return nil
}

// planPurchase decides whether the order is worth purchasing right now and, if
// so, picks a route for it. An order is skipped when it is not due yet, its
// deposit cannot cover a full purchase, no route exists, the owner cannot
// cover the tip, or the tip is below the configured USD threshold.
func (l *scanner) planPurchase(ctx context.Context, params *types.Params, order types.DcaOrder, blockTime time.Time) (plannedPurchase, bool) {
	if !order.IsPurchaseDue(uint64(blockTime.Unix())) {
		return plannedPurchase{}, false
	}

	if order.InitialAsset.Amount.LT(order.DcaAmount) {
		l.Log().WithField("order_id", order.Id).Debugln("order deposit cannot cover a purchase")
		return plannedPurchase{}, false
	}

	userSettings, err := l.getUserConfig(ctx, order.Owner)
	if err != nil {
		coretracer.TraceError(ctx, err)
		l.Log().WithError(err).WithField("order_id", order.Id).Warningln("failed to get owner overrides")
		return plannedPurchase{}, false
	}

	hops, ok := l.planRoute(params, &order, userSettings)
	if !ok {
		l.Log().WithField("order_id", order.Id).Debugln("no viable route for order")
		return plannedPurchase{}, false
	}

	tip, ok := l.coveringTip(ctx, params, order.Owner, uint32(len(hops)))
	if !ok {
		l.Log().WithField("order_id", order.Id).Debugln("owner cannot cover the tip")
		return plannedPurchase{}, false
	}

	if l.cfg.MinTipUSD > 0 && !l.priceFeed.CheckTipThreshold(ctx, tip.Info, tip.Amount, l.cfg.MinTipUSD) {
		l.Log().WithFields(log.Fields{
			"order_id": order.Id,
			"tip":      tip.String(),
		}).Debugln("tip is below the USD threshold")
		return plannedPurchase{}, false
	}

	return plannedPurchase{
		orderID: order.Id,
		owner:   order.Owner,
		hops:    hops,
	}, true
}

// planRoute picks the shortest route the module will accept: the direct hop
// when the pair is routable, otherwise a two-hop route through the first
// whitelisted intermediate. Native-to-native pairs have no router pool, so
// they always go through an intermediate.
func (l *scanner) planRoute(params *types.Params, order *types.DcaOrder, userSettings *types.UserSettings) ([]types.SwapOperation, bool) {
	offer := order.InitialAsset.Info
	ask := order.TargetAsset

	maxHops := order.EffectiveMaxHops(userSettings, *params)

	if !(offer.IsNative() && ask.IsNative()) {
		return []types.SwapOperation{{
			OfferAssetInfo: offer,
			AskAssetInfo:   ask,
		}}, true
	}

	if maxHops < 2 {
		return nil, false
	}

	for _, mid := range params.WhitelistedTokens {
		if mid.IsNative() || mid.Equal(&offer) || mid.Equal(&ask) {
			continue
		}

		return []types.SwapOperation{
			{OfferAssetInfo: offer, AskAssetInfo: mid},
			{OfferAssetInfo: mid, AskAssetInfo: ask},
		}, true
	}

	return nil, false
}

// coveringTip returns the tip the module will charge for a route of hopCount
// hops, picking jars the same way the module does: the first whitelisted jar
// whose balance covers the full fee.
func (l *scanner) coveringTip(ctx context.Context, params *types.Params, owner string, hopCount uint32) (types.Asset, bool) {
	jars, err := l.getUserTips(ctx, owner)
	if err != nil {
		coretracer.TraceError(ctx, err)
		l.Log().WithError(err).WithField("owner", owner).Warningln("failed to get owner tip jars")
		return types.Asset{}, false
	}

	for _, jar := range jars {
		fee := params.TipFeeFor(&jar.Info)
		if fee == nil {
			continue
		}

		required := fee.PerHopFee.Mul(math.NewIntFromUint64(uint64(hopCount)))
		if jar.Amount.GTE(required) {
			return types.Asset{Info: jar.Info, Amount: required}, true
		}
	}

	return types.Asset{}, false
}

func (l *scanner) getDcaParams(ctx context.Context) (*types.Params, error) {
	var params *types.Params
	fn := func() (err error) {
		params, err = l.injective.DcaParams(ctx)
		return
	}

	if err := l.retry(ctx, fn); err != nil {
		return nil, err
	}

	return params, nil
}

func (l *scanner) getDcaOrders(ctx context.Context, startAfter uint64) ([]types.DcaOrder, error) {
	var orders []types.DcaOrder
	fn := func() (err error) {
		orders, err = l.injective.DcaOrders(ctx, startAfter, ordersPageLimit)
		return
	}

	if err := l.retry(ctx, fn); err != nil {
		return nil, err
	}

	return orders, nil
}

func (l *scanner) getUserTips(ctx context.Context, owner string) ([]types.Asset, error) {
	var tips []types.Asset
	fn := func() (err error) {
		tips, err = l.injective.UserTips(ctx, owner)
		return
	}

	if err := l.retry(ctx, fn); err != nil {
		return nil, err
	}

	return tips, nil
}

func (l *scanner) getUserConfig(ctx context.Context, owner string) (*types.UserSettings, error) {
	var settings *types.UserSettings
	fn := func() (err error) {
		settings, err = l.injective.UserConfig(ctx, owner)
		return
	}

	if err := l.retry(ctx, fn); err != nil {
		return nil, err
	}

	return settings, nil
}

func (l *scanner) getLatestBlockTime(ctx context.Context) (time.Time, error) {
	var blockTime time.Time
	fn := func() (err error) {
		blockTime, err = l.injective.LatestBlockTime(ctx)
		return
	}

	if err := l.retry(ctx, fn); err != nil {
		return time.Time{}, err
	}

	return blockTime, nil
}
