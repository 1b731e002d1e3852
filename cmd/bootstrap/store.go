package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"balancestore/internal/infra/kvstore"
	"balancestore/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore selects the session snapshot backend from configuration. The
// memory store is the default and needs no external service.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kvstore.Store, error) {
	switch cfg.Store.Driver {
	case "memory", "":
		logger.Info("using in-memory session store")
		return kvstore.NewMemoryStore(), nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("redis ping failed: %w", err)
				}
				logger.Info("using redis session store", "addr", cfg.Store.RedisAddr)
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return kvstore.NewRedisStore(client), nil

	case "postgres":
		pool, err := pgxpool.New(context.Background(), cfg.Store.BuildPostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres pool: %w", err)
		}
		store := kvstore.NewPostgresStore(pool)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := store.EnsureSchema(ctx); err != nil {
					return err
				}
				logger.Info("using postgres session store", "host", cfg.Store.PGHost)
				return nil
			},
			OnStop: func(_ context.Context) error {
				pool.Close()
				return nil
			},
		})
		return store, nil

	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
}
