package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestStoreParams(t *testing.T, storeCfg *config.StoreConfig) (StoreParams, *fxtest.Lifecycle) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)

	return StoreParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Store: storeCfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, lc
}

func TestNewDurableStore_Providers(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name string
		cfg  *config.StoreConfig
	}{
		{name: "memory", cfg: &config.StoreConfig{Provider: constants.StoreProviderMemory}},
		{name: "file", cfg: &config.StoreConfig{Provider: constants.StoreProviderFile, BucketURL: filepath.Join(t.TempDir(), "s")}},
		{name: "redis", cfg: &config.StoreConfig{Provider: constants.StoreProviderRedis, RedisAddr: mr.Addr()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, lc := createTestStoreParams(t, tt.cfg)

			store, err := NewDurableStore(params)
			require.NoError(t, err)

			lc.RequireStart()
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, repository.SlotCart, []byte(`{}`)))
			got, err := store.Get(ctx, repository.SlotCart)
			require.NoError(t, err)
			assert.Equal(t, `{}`, string(got))
			lc.RequireStop()
		})
	}
}

func TestNewDurableStore_Misconfigured(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.StoreConfig
		wantErr string
	}{
		{name: "unknown provider", cfg: &config.StoreConfig{Provider: "s3"}, wantErr: "unknown store provider"},
		{name: "redis without address", cfg: &config.StoreConfig{Provider: constants.StoreProviderRedis}, wantErr: "redis address is required"},
		{name: "postgres without config", cfg: &config.StoreConfig{Provider: constants.StoreProviderPostgres}, wantErr: "postgres config is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, _ := createTestStoreParams(t, tt.cfg)

			_, err := NewDurableStore(params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewDurableStore_MemoryRefusedInProduction(t *testing.T) {
	params, _ := createTestStoreParams(t, &config.StoreConfig{Provider: constants.StoreProviderMemory})
	params.Config.Env.Env = constants.EnvProduction

	_, err := NewDurableStore(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed in production")
}
