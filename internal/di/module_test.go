package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/naijamart/storefront/internal/adapter/imagehost"
	"github.com/naijamart/storefront/internal/app"
	"github.com/naijamart/storefront/internal/config"
	"github.com/naijamart/storefront/internal/domain/repository"
	"github.com/naijamart/storefront/internal/storage/postgres"
	"github.com/naijamart/storefront/internal/test"
	"github.com/naijamart/storefront/internal/usecase"
)

type imageHostStub struct{}

func (imageHostStub) Upload(context.Context, string, io.Reader) (string, error) {
	return "https://img.example/proof.png", nil
}

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:       ":0",
		DatabaseURI:      "postgres://stub",
		RedisAddress:     "localhost:0",
		ImageHostAddress: "http://localhost",
		JWTSecret:        "secret",
		DeliveryInterval: time.Millisecond,
		DeliveryAfter:    time.Millisecond,
		WorkerPoolSize:   1,
		DeliveryBatch:    1,
		ShutdownTimeout:  time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}
	workflowRepo := &test.WorkflowRepositoryStub{}
	ledgerRepo := &test.LedgerRepositoryStub{}
	notificationRepo := &test.NotificationRepositoryStub{}
	productRepo := &test.ProductRepositoryStub{}

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.WorkflowRepository(workflowRepo)),
			fx.Replace(repository.LedgerRepository(ledgerRepo)),
			fx.Replace(repository.NotificationRepository(notificationRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(imagehost.Client(imageHostStub{})),
			fx.Replace(usecase.ReadModelPublisher(&test.PublisherStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
