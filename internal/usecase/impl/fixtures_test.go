package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestStore returns an in-memory durable store shared by every
// service built on it, so a second construction behaves like a restart.
func createTestStore(t *testing.T) repository.DurableStore {
	t.Helper()

	s := store.NewBlobStore(memblob.OpenBucket(nil), "")
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func testProduct(id int64, price string) entity.ProductSnapshot {
	return entity.ProductSnapshot{
		ID:       id,
		Name:     "Product",
		Price:    decimal.RequireFromString(price),
		Rating:   4.2,
		Stock:    5,
		Category: "Phones",
		Brand:    "Acme",
	}
}

func createTestCartService(t *testing.T, s repository.DurableStore) *cartService {
	t.Helper()

	uc, err := NewCartService(CartServiceParams{
		Ctx:    context.Background(),
		Store:  s,
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	return uc.(*cartService)
}
