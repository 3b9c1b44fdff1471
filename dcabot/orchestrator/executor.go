package orchestrator

import (
	"context"
	"strings"

	"github.com/InjectiveLabs/coretracer"
	log "github.com/xlab/suplog"
)

// runExecutor drains the purchase queue and broadcasts one
// MsgPerformDcaPurchase per plan. A purchase rejected by the module is logged
// and dropped: the scanner will re-plan the order on its next pass if it is
// still due.
func (s *Orchestrator) runExecutor(ctx context.Context) error {
	executor := executor{
		Orchestrator: s,
		svcTags:      coretracer.NewTag("svc", "dca_executor"),
	}

	s.logger.Debugln("starting Executor...")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case plan := <-s.pending:
			executor.executePurchase(ctx, plan)
		}
	}
}

type executor struct {
	*Orchestrator
	svcTags coretracer.Tags
}

func (l *executor) Log() log.Logger {
	return l.logger.WithField("loop", "Executor")
}

func (l *executor) executePurchase(ctx context.Context, plan plannedPurchase) {
	defer coretracer.Trace(&ctx, l.svcTags)()

	fn := func() error {
		err := l.injective.PerformDcaPurchase(ctx, plan.orderID, plan.hops)
		if err != nil && isPurchaseRejection(err) {
			// chain state moved since the scan, nothing to retry
			l.Log().WithError(err).WithFields(log.Fields{
				"order_id": plan.orderID,
				"owner":    plan.owner,
			}).Debugln("purchase rejected by the chain")
			return nil
		}

		return err
	}

	if err := l.retry(ctx, fn); err != nil {
		coretracer.TraceError(ctx, err)
		l.Log().WithError(err).WithFields(log.Fields{
			"order_id": plan.orderID,
			"owner":    plan.owner,
		}).Errorln("failed to broadcast purchase")
		return
	}

	l.Log().WithFields(log.Fields{
		"order_id": plan.orderID,
		"owner":    plan.owner,
		"hops":     len(plan.hops),
	}).Infoln("broadcasted purchase")
}

// isPurchaseRejection tells a deterministic module rejection apart from a
// transient broadcast failure. Rejections happen when another bot purchased
// the same order first or the order state changed since the scan.
func isPurchaseRejection(err error) bool {
	msg := err.Error()
	for _, s := range []string{
		"purchase interval has not elapsed yet",
		"dca order does not exist",
		"order deposit cannot cover the purchase",
		"no tip jar covers the bot fee",
		"hop route",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}

	return false
}
