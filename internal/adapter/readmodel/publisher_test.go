package readmodel

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/naijamart/storefront/internal/domain/model"
)

type publishCall struct {
	channel string
	payload []byte
}

type stubRedis struct {
	calls []publishCall
	err   error
}

func (s *stubRedis) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	s.calls = append(s.calls, publishCall{channel: channel, payload: message.([]byte)})
	if s.err != nil {
		return redis.NewIntResult(0, s.err)
	}
	return redis.NewIntResult(1, nil)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestPublishOrderStatus(t *testing.T) {
	stub := &stubRedis{}
	publisher := NewPublisher(stub, testLogger())

	now := time.Now()
	err := publisher.PublishOrderStatus(context.Background(), &model.Order{
		ID:          "order-1",
		UserID:      7,
		Status:      model.OrderStatusApproved,
		TotalAmount: 5000,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stub.calls) != 1 || stub.calls[0].channel != OrderStatusChannel {
		t.Fatalf("unexpected calls %+v", stub.calls)
	}

	var event orderEvent
	if err := json.Unmarshal(stub.calls[0].payload, &event); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if event.OrderID != "order-1" || event.Status != "approved" || event.TotalAmount != 5000 {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestPublishNotification(t *testing.T) {
	stub := &stubRedis{}
	publisher := NewPublisher(stub, testLogger())

	err := publisher.PublishNotification(context.Background(), &model.Notification{
		ID:      "notif-1",
		UserID:  7,
		Message: "Your order has been approved",
		Type:    model.NotificationSuccess,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stub.calls) != 1 || stub.calls[0].channel != NotificationChannel {
		t.Fatalf("unexpected calls %+v", stub.calls)
	}

	var event notificationEvent
	if err := json.Unmarshal(stub.calls[0].payload, &event); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if event.ID != "notif-1" || event.Type != "success" {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestPublishPropagatesRedisError(t *testing.T) {
	stub := &stubRedis{err: errors.New("connection refused")}
	publisher := NewPublisher(stub, testLogger())

	if err := publisher.PublishOrderStatus(context.Background(), &model.Order{ID: "order-1"}); err == nil {
		t.Fatal("expected error")
	}
	if err := publisher.PublishNotification(context.Background(), &model.Notification{ID: "notif-1"}); err == nil {
		t.Fatal("expected error")
	}
}
