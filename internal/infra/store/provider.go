package store

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/postgres"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultBucketURL = "./.storefront"

// StoreParams holds dependencies for DurableStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDurableStore creates a DurableStore based on configuration
func NewDurableStore(params StoreParams) (repository.DurableStore, error) {
	cfg := params.Config.Store
	logger := params.Logger

	ctx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	var store repository.DurableStore
	var err error

	switch cfg.Provider {
	case constants.StoreProviderFile:
		bucketURL := cfg.BucketURL
		if bucketURL == "" {
			bucketURL = defaultBucketURL
		}
		logger.Info("Using file bucket durable store", slog.String("bucket", bucketURL))

		store, err = OpenBlobStore(ctx, bucketURL, cfg.KeyPrefix)
		if err != nil {
			return nil, err
		}

	case constants.StoreProviderMemory:
		if params.Config.Env.Env == constants.EnvProduction {
			return nil, errors.New("memory store provider is not allowed in production")
		}
		logger.Warn("Using in-memory durable store, state is lost on restart")

		store, err = OpenBlobStore(ctx, "mem://", cfg.KeyPrefix)
		if err != nil {
			return nil, err
		}

	case constants.StoreProviderRedis:
		if cfg.RedisAddr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using Redis durable store", slog.String("addr", cfg.RedisAddr))

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()

			return nil, errors.Wrap(err, "failed to ping redis")
		}

		store = NewRedisStore(client, cfg.KeyPrefix)

	case constants.StoreProviderPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres config is required for postgres provider")
		}
		logger.Info("Using PostgreSQL durable store")

		store, err = postgres.OpenSlotStore(ctx, postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown store provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing DurableStore")

			return store.Close()
		},
	})

	return store, nil
}
