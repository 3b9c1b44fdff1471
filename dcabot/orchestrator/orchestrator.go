package orchestrator

import (
	"context"
	"time"

	"cosmossdk.io/math"
	"github.com/InjectiveLabs/coretracer"
	"github.com/avast/retry-go"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	log "github.com/xlab/suplog"
	"golang.org/x/sync/errgroup"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

const (
	defaultLoopDur = 60 * time.Second

	// Purchases found by the scanner wait here until the executor broadcasts
	// them. The buffer smooths out bursts right after many orders come due at
	// the same block time.
	pendingPurchaseBufferSize = 256
)

// DcaNetwork is the DCA chain module as seen by the bot: order book reads over
// gRPC and purchase broadcasts over the tx service.
type DcaNetwork interface {
	DcaParams(ctx context.Context) (*types.Params, error)
	DcaOrders(ctx context.Context, startAfter uint64, limit uint32) ([]types.DcaOrder, error)
	UserTips(ctx context.Context, user string) ([]types.Asset, error)
	UserConfig(ctx context.Context, user string) (*types.UserSettings, error)
	LatestBlockTime(ctx context.Context) (time.Time, error)
	PerformDcaPurchase(ctx context.Context, id uint64, hops []types.SwapOperation) error
}

// PriceFeed prices DCA assets in USD.
type PriceFeed interface {
	QueryUSDPrice(ctx context.Context, asset types.AssetInfo) (float64, error)
	CheckTipThreshold(ctx context.Context, asset types.AssetInfo, totalTip math.Int, minTipUSD float64) bool
}

type Config struct {
	CosmosAddr      cosmostypes.AccAddress
	LoopDuration    time.Duration
	MinTipUSD       float64
	MaxOrdersPerRun int
	HealthCheckPort uint64
}

type Orchestrator struct {
	logger  log.Logger
	svcTags coretracer.Tags

	cfg         Config
	maxAttempts uint

	injective DcaNetwork
	priceFeed PriceFeed

	pending chan plannedPurchase
}

// plannedPurchase is a due order paired with the route the scanner picked for
// it.
type plannedPurchase struct {
	orderID uint64
	owner   string
	hops    []types.SwapOperation
}

func NewOrchestrator(
	inj DcaNetwork,
	priceFeed PriceFeed,
	cfg Config,
) (*Orchestrator, error) {
	if cfg.LoopDuration == 0 {
		cfg.LoopDuration = defaultLoopDur
	}

	o := &Orchestrator{
		logger:      log.WithField("svc", "dca_orchestrator"),
		svcTags:     coretracer.NewTag("svc", "dca_orchestrator"),
		cfg:         cfg,
		maxAttempts: 10,
		injective:   inj,
		priceFeed:   priceFeed,
		pending:     make(chan plannedPurchase, pendingPurchaseBufferSize),
	}

	return o, nil
}

// Run starts the scanner and executor loops and blocks until either fails or
// the context is cancelled.
func (s *Orchestrator) Run(ctx context.Context) error {
	pg, ctx := errgroup.WithContext(ctx)

	pg.Go(func() error { return s.runScanner(ctx) })
	pg.Go(func() error { return s.runExecutor(ctx) })

	return pg.Wait()
}

// retry runs fn repeatedly with a backoff until it succeeds or the number of
// attempts is exceeded.
func (s *Orchestrator) retry(ctx context.Context, fn func() error) error {
	return retry.Do(fn,
		retry.Context(ctx),
		retry.Attempts(s.maxAttempts),
		retry.OnRetry(func(n uint, err error) {
			s.logger.WithError(err).Warningf("loop error, retrying (%d)", n)
		}),
	)
}
