package di

import (
	"go.uber.org/fx"

	"github.com/naijamart/storefront/internal/adapter/imagehost"
	"github.com/naijamart/storefront/internal/adapter/readmodel"
	"github.com/naijamart/storefront/internal/app"
	"github.com/naijamart/storefront/internal/config"
	"github.com/naijamart/storefront/internal/logger"
	"github.com/naijamart/storefront/internal/pkg/auth"
	"github.com/naijamart/storefront/internal/server/http/handlers"
	"github.com/naijamart/storefront/internal/server/http/middleware"
	"github.com/naijamart/storefront/internal/server/http/router"
	"github.com/naijamart/storefront/internal/storage/postgres"
	"github.com/naijamart/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		imagehost.Module,
		readmodel.Module,
		usecase.Module,
		fx.Provide(func(client imagehost.Client) app.ProofImageUploader { return client }),
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		fx.Provide(middleware.NewHTTPMetrics),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
