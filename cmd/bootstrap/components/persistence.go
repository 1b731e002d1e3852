package components

import (
	repo_impl "balancestore/internal/infra/repository"
	"balancestore/internal/usecase/commands"
	"balancestore/internal/usecase/queries"

	"go.uber.org/fx"
)

// Every repository is backed by the same kvstore.Store; the fx.As bindings
// expose each one through the consumer-side ports only.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Cart
		fx.Annotate(
			repo_impl.NewCartRepository,
			fx.As(new(commands.CartRepository)),
			fx.As(new(queries.CartReadStore)),
		),
		// Coupon
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
			fx.As(new(queries.CouponReadStore)),
		),
		// Checkout
		fx.Annotate(
			repo_impl.NewCheckoutRepository,
			fx.As(new(commands.CheckoutRepository)),
			fx.As(new(queries.CheckoutReadStore)),
		),
		// User
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.UserReadStore)),
		),
	),
)
