package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/InjectiveLabs/coretracer"
)

const (
	HealthCheckURI = "/health"
)

// Status represents the bot's overall health with respect to the DCA chain
// module.
type Status struct {
	// Unix time of the latest block observed on the chain
	LatestBlockTime int64 `json:"latest_block_time"`

	// Number of orders currently in the book
	OrdersInBook int `json:"orders_in_book"`

	// Number of planned purchases waiting for broadcast
	PendingPurchases int `json:"pending_purchases"`

	// How long the bot has been running
	Uptime string `json:"uptime"`
}

func (s *Orchestrator) RunHealthCheckServer(port uint64) error {
	mux := http.NewServeMux()
	start := time.Now()

	mux.HandleFunc(HealthCheckURI, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		status, err := s.checkHealthStatus(ctx)
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)

			jsonErr := map[string]string{"error": err.Error()}
			_ = json.NewEncoder(w).Encode(jsonErr)
			return
		}

		uptime := time.Since(start)
		status.Uptime = uptime.String()

		w.WriteHeader(http.StatusOK)
		if err = json.NewEncoder(w).Encode(status); err != nil {
			s.logger.Errorln("failed to encode health check response: ", err)
		}
	})

	err := http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	if err != nil && errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (s *Orchestrator) checkHealthStatus(ctx context.Context) (Status, error) {
	defer coretracer.Trace(&ctx, s.svcTags)()

	blockTime, err := s.injective.LatestBlockTime(ctx)
	if err != nil {
		coretracer.TraceError(ctx, err)
		return Status{}, fmt.Errorf("failed to get latest block time: %w", err)
	}

	ordersInBook := 0
	startAfter := uint64(0)
	for {
		orders, err := s.injective.DcaOrders(ctx, startAfter, ordersPageLimit)
		if err != nil {
			coretracer.TraceError(ctx, err)
			return Status{}, fmt.Errorf("failed to page the order book: %w", err)
		}

		if len(orders) == 0 {
			break
		}

		ordersInBook += len(orders)
		startAfter = orders[len(orders)-1].Id
	}

	status := Status{
		LatestBlockTime:  blockTime.Unix(),
		OrdersInBook:     ordersInBook,
		PendingPurchases: len(s.pending),
	}

	return status, nil
}
