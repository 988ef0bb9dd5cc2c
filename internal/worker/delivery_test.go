package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
)

type facadeStub struct {
	mu        sync.Mutex
	batches   [][]model.Order
	confirmed []string
	listErr   error
	deliverFn func(orderID string) error
	done      chan string
}

func (s *facadeStub) OrdersForDelivery(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	if len(s.batches) == 0 {
		return nil, nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch, nil
}

func (s *facadeStub) ConfirmDelivery(ctx context.Context, orderID string) error {
	var err error
	if s.deliverFn != nil {
		err = s.deliverFn(orderID)
	}
	s.mu.Lock()
	if err == nil {
		s.confirmed = append(s.confirmed, orderID)
	}
	s.mu.Unlock()
	if s.done != nil {
		s.done <- orderID
	}
	return err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestDeliveryWorkerConfirmsShippedOrders(t *testing.T) {
	stub := &facadeStub{
		batches: [][]model.Order{{
			{ID: "order-1", Status: model.OrderStatusShipped},
			{ID: "order-2", Status: model.OrderStatusShipped},
		}},
		done: make(chan string, 2),
	}

	w := NewDeliveryWorker(stub, 10*time.Millisecond, time.Hour, 10, 2, discardLogger())
	w.Start(context.Background())
	defer w.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-stub.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for delivery confirmations")
		}
	}

	stub.mu.Lock()
	defer stub.mu.Unlock()
	if len(stub.confirmed) != 2 {
		t.Fatalf("expected 2 confirmations, got %v", stub.confirmed)
	}
}

func TestDeliveryWorkerToleratesConflicts(t *testing.T) {
	stub := &facadeStub{
		batches: [][]model.Order{{
			{ID: "order-1", Status: model.OrderStatusShipped},
			{ID: "order-2", Status: model.OrderStatusShipped},
		}},
		done: make(chan string, 2),
		deliverFn: func(orderID string) error {
			if orderID == "order-1" {
				return domainErrors.ErrConflict
			}
			return nil
		},
	}

	w := NewDeliveryWorker(stub, 10*time.Millisecond, time.Hour, 10, 1, discardLogger())
	w.Start(context.Background())
	defer w.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-stub.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for confirmations")
		}
	}

	stub.mu.Lock()
	defer stub.mu.Unlock()
	if len(stub.confirmed) != 1 || stub.confirmed[0] != "order-2" {
		t.Fatalf("expected only order-2 confirmed, got %v", stub.confirmed)
	}
}

func TestDeliveryWorkerSurvivesListErrors(t *testing.T) {
	stub := &facadeStub{listErr: errors.New("db down")}

	w := NewDeliveryWorker(stub, 5*time.Millisecond, time.Hour, 10, 1, discardLogger())
	w.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	w.Stop()
}

func TestDeliveryWorkerDefaults(t *testing.T) {
	w := NewDeliveryWorker(&facadeStub{}, time.Second, time.Hour, 0, 0, discardLogger())
	if w.workers != 1 || w.batchSize != 1 {
		t.Fatalf("expected defaults of 1, got workers=%d batch=%d", w.workers, w.batchSize)
	}

	// Stop before Start must not hang.
	w.Stop()
}
