package bootstrap

import (
	"balancestore/internal/infra/gateway"
	"balancestore/internal/pkg/config"
	"balancestore/internal/usecase/commands"
	"balancestore/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) config.BackendConfig { return cfg.Backend },
		fx.Annotate(
			gateway.NewCatalogGateway,
			fx.As(new(queries.CatalogFetcher)),
		),
		fx.Annotate(
			gateway.NewBillingGateway,
			fx.As(new(commands.ReceiptRecorder)),
		),
		fx.Annotate(
			gateway.NewUsersGateway,
			fx.As(new(commands.UsersGateway)),
		),
	),
)
