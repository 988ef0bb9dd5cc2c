package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required
// by the worker.
type StorefrontFacade interface {
	OrdersForDelivery(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
	ConfirmDelivery(ctx context.Context, orderID string) error
}

// DeliveryWorker periodically confirms delivery of shipped orders that have
// been in transit longer than the configured window.
type DeliveryWorker struct {
	facade        StorefrontFacade
	pollInterval  time.Duration
	deliveryAfter time.Duration
	batchSize     int
	workers       int
	logger        *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDeliveryWorker constructs the delivery confirmation worker pool.
func NewDeliveryWorker(facade StorefrontFacade, pollInterval, deliveryAfter time.Duration, batchSize, workers int, logger *slog.Logger) *DeliveryWorker {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &DeliveryWorker{
		facade:        facade,
		pollInterval:  pollInterval,
		deliveryAfter: deliveryAfter,
		batchSize:     batchSize,
		workers:       workers,
		logger:        logger,
		jobs:          make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (w *DeliveryWorker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.worker(runCtx)
	}

	w.wg.Add(1)
	go w.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (w *DeliveryWorker) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *DeliveryWorker) dispatch(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.jobs)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.fetchAndDispatch(ctx)
		}
	}
}

func (w *DeliveryWorker) fetchAndDispatch(ctx context.Context) {
	cutoff := time.Now().Add(-w.deliveryAfter)
	orders, err := w.facade.OrdersForDelivery(ctx, cutoff, w.batchSize)
	if err != nil {
		w.logger.Error("fetch orders for delivery failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case w.jobs <- order:
		}
	}
}

func (w *DeliveryWorker) worker(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-w.jobs:
			if !ok {
				return
			}
			w.handleOrder(ctx, order)
		}
	}
}

func (w *DeliveryWorker) handleOrder(ctx context.Context, order model.Order) {
	err := w.facade.ConfirmDelivery(ctx, order.ID)
	if err == nil {
		w.logger.Info("order auto-delivered", slog.String("order_id", order.ID))
		return
	}
	// A staff member may have shipped or delayed the order between the batch
	// select and this confirmation; the next poll picks up the rest.
	if errors.Is(err, domainErrors.ErrConflict) || errors.Is(err, domainErrors.ErrNotFound) {
		w.logger.Debug("delivery confirmation skipped",
			slog.String("order_id", order.ID),
			slog.String("reason", err.Error()),
		)
		return
	}
	w.logger.Error("delivery confirmation failed",
		slog.String("order_id", order.ID),
		slog.String("error", err.Error()),
	)
}
