package components

import (
	"balancestore/internal/handler"
	"balancestore/internal/handler/api"
	"balancestore/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
