package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func createTestBlobStore(t *testing.T, prefix string) repository.DurableStore {
	t.Helper()

	store := NewBlobStore(memblob.OpenBucket(nil), prefix)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBlobStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestBlobStore(t, "")

	require.NoError(t, store.Set(ctx, repository.SlotCart, []byte(`{"lines":[]}`)))

	got, err := store.Get(ctx, repository.SlotCart)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lines":[]}`, string(got))
}

func TestBlobStore_MissingKey(t *testing.T) {
	store := createTestBlobStore(t, "")

	_, err := store.Get(context.Background(), repository.SlotWishlist)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestBlobStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := createTestBlobStore(t, "")

	require.NoError(t, store.Set(ctx, repository.SlotCheckoutSnapshot, []byte(`{}`)))
	require.NoError(t, store.Delete(ctx, repository.SlotCheckoutSnapshot))
	require.NoError(t, store.Delete(ctx, repository.SlotCheckoutSnapshot))

	_, err := store.Get(ctx, repository.SlotCheckoutSnapshot)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestBlobStore_PrefixIsolatesProfiles(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	alice := NewBlobStore(bucket, "alice/")
	bob := NewBlobStore(bucket, "bob/")

	require.NoError(t, alice.Set(ctx, repository.SlotCart, []byte(`"a"`)))

	_, err := bob.Get(ctx, repository.SlotCart)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
	require.NoError(t, bucket.Close())
}

func TestOpenBlobStore_FileDirectory(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "state")

	store, err := OpenBlobStore(ctx, dir, "")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, repository.SlotSelectedAddressID, []byte(`7`)))
	require.NoError(t, store.Close())

	reopened, err := OpenBlobStore(ctx, dir, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, repository.SlotSelectedAddressID)
	require.NoError(t, err)
	assert.Equal(t, "7", string(got))
}

func TestNormalizeBucketURL(t *testing.T) {
	assert.Equal(t, "mem://", normalizeBucketURL("mem://"))
	assert.Equal(t, "file:///var/lib/storefront", normalizeBucketURL("file:///var/lib/storefront"))

	got := normalizeBucketURL("relative/dir")
	assert.True(t, strings.HasPrefix(got, "file://"))
	assert.True(t, strings.HasSuffix(got, "relative/dir?create_dir=true"))
}
