package bootstrap

import (
	"context"
	"log/slog"

	"hotel-portal/internal/infra/kvstore"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/usecase"

	"go.uber.org/fx"
)

var KVStoreModule = fx.Module("kvstore",
	fx.Provide(
		fx.Annotate(
			NewKVStore,
			fx.As(new(usecase.KVStore)),
		),
	),
)

func NewKVStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (kvstore.Store, error) {
	store, err := openKVStore(cfg.KV, clk, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	logger.Info("KV store ready", "driver", cfg.KV.Driver, "namespace", cfg.KV.Namespace)
	return store, nil
}

func openKVStore(cfg config.KVConfig, clk clock.Clock, logger *slog.Logger) (kvstore.Store, error) {
	ctx := context.Background()
	switch cfg.Driver {
	case config.KVDriverRedis:
		store, err := kvstore.NewRedisStore(ctx, kvstore.RedisOptions{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			Namespace: cfg.Namespace,
		}, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.KVDriverPostgres:
		store, err := kvstore.NewPostgresStore(ctx, cfg.PostgresDSN, cfg.Namespace, clk, logger)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		return store, nil
	default:
		return kvstore.NewMemoryStore(clk, cfg.Namespace, logger), nil
	}
}
