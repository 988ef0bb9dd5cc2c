package imagehost

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/naijamart/storefront/internal/config"
)

// Module exposes the image host client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.ImageHostAddress, p.Config.ImageHostKey, p.Logger)
}
