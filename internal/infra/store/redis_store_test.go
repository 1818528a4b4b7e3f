package store

import (
	"context"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRedisStore(t *testing.T, prefix string) (repository.DurableStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, prefix)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := createTestRedisStore(t, "p1:")

	require.NoError(t, store.Set(ctx, repository.SlotWishlist, []byte(`{"items":[]}`)))

	raw, err := mr.Get("storefront:p1:wishlist")
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, raw)
	assert.Zero(t, mr.TTL("storefront:p1:wishlist"))

	got, err := store.Get(ctx, repository.SlotWishlist)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(got))
}

func TestRedisStore_MissingKey(t *testing.T) {
	store, _ := createTestRedisStore(t, "")

	_, err := store.Get(context.Background(), repository.SlotCart)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, mr := createTestRedisStore(t, "")

	require.NoError(t, store.Set(ctx, repository.SlotAccessToken, []byte(`"tok"`)))
	require.NoError(t, store.Delete(ctx, repository.SlotAccessToken))
	assert.False(t, mr.Exists("storefront:access_token"))
	require.NoError(t, store.Delete(ctx, repository.SlotAccessToken))
}

func TestRedisStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	store, mr := createTestRedisStore(t, "")
	mr.Close()

	_, err := store.Get(ctx, repository.SlotCart)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrKeyNotFound)
}
