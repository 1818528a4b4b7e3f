package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_TotalsFollowMutations(t *testing.T) {
	ctx := context.Background()
	cart := createTestCartService(t, createTestStore(t))
	a := testProduct(1, "500")
	b := testProduct(2, "300")

	_, err := cart.AddToCart(ctx, a)
	require.NoError(t, err)
	_, err = cart.AddToCart(ctx, a)
	require.NoError(t, err)
	_, err = cart.AddToCart(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "1300.00", cart.Total().StringFixed(2))

	got, err := cart.UpdateQuantity(ctx, a.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, "800.00", got.Total().StringFixed(2))

	require.Len(t, got.Lines, 2)
	assert.Equal(t, 1, got.Lines[0].Quantity)

	got, err = cart.UpdateQuantity(ctx, a.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, "300.00", got.Total().StringFixed(2))
	require.Len(t, got.Lines, 1)
	assert.Equal(t, b.ID, got.Lines[0].Product.ID)
}

func TestCartService_AddKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	cart := createTestCartService(t, createTestStore(t))

	for _, id := range []int64{3, 1, 2, 1} {
		_, err := cart.AddToCart(ctx, testProduct(id, "10"))
		require.NoError(t, err)
	}

	got := cart.Cart()
	require.Len(t, got.Lines, 3)
	assert.Equal(t, int64(3), got.Lines[0].Product.ID)
	assert.Equal(t, int64(1), got.Lines[1].Product.ID)
	assert.Equal(t, 2, got.Lines[1].Quantity)
	assert.Equal(t, int64(2), got.Lines[2].Product.ID)
}

func TestCartService_UpdateQuantityClampsAtZero(t *testing.T) {
	ctx := context.Background()
	cart := createTestCartService(t, createTestStore(t))

	_, err := cart.AddToCart(ctx, testProduct(1, "10"))
	require.NoError(t, err)

	got, err := cart.UpdateQuantity(ctx, 1, -5)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestCartService_UnknownLineIsNoop(t *testing.T) {
	store := mockRepo.NewMockDurableStore(t)
	store.EXPECT().Get(mock.Anything, repository.SlotCart).Return(nil, repository.ErrKeyNotFound)

	cart := createTestCartService(t, store)

	got, err := cart.UpdateQuantity(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	got, err = cart.RemoveFromCart(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestCartService_RoundTripsThroughStore(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)
	cart := createTestCartService(t, store)

	_, err := cart.AddToCart(ctx, testProduct(1, "499.99"))
	require.NoError(t, err)
	_, err = cart.AddToCart(ctx, testProduct(1, "499.99"))
	require.NoError(t, err)
	_, err = cart.AddToCart(ctx, testProduct(2, "0.01"))
	require.NoError(t, err)

	restarted := createTestCartService(t, store)

	assert.Equal(t, cart.Cart().Lines, restarted.Cart().Lines)
	assert.Equal(t, "1000.00", restarted.Total().StringFixed(2))
}

func TestCartService_FailedWriteKeepsState(t *testing.T) {
	store := mockRepo.NewMockDurableStore(t)
	store.EXPECT().Get(mock.Anything, repository.SlotCart).Return(nil, repository.ErrKeyNotFound)
	store.EXPECT().Set(mock.Anything, repository.SlotCart, mock.Anything).Return(errors.New("disk full"))

	cart := createTestCartService(t, store)

	notified := false
	cart.Subscribe(func(*entity.Cart) { notified = true })

	got, err := cart.AddToCart(context.Background(), testProduct(1, "10"))
	require.Error(t, err)
	assert.Nil(t, got)

	_, isStoreErr := errors.AsType[*domainerrors.StoreError](err)
	assert.True(t, isStoreErr)
	assert.True(t, cart.Cart().IsEmpty())
	assert.False(t, notified)
}

func TestCartService_HydrateCorruptSlot(t *testing.T) {
	store := mockRepo.NewMockDurableStore(t)
	store.EXPECT().Get(mock.Anything, repository.SlotCart).Return([]byte("{not json"), nil)

	_, err := NewCartService(CartServiceParams{Ctx: context.Background(), Store: store, Logger: discardLogger()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hydrate cart")
}

func TestCartService_ClearCart(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)
	cart := createTestCartService(t, store)

	_, err := cart.AddToCart(ctx, testProduct(1, "10"))
	require.NoError(t, err)
	require.NoError(t, cart.ClearCart(ctx))

	assert.True(t, cart.Cart().IsEmpty())
	assert.True(t, createTestCartService(t, store).Cart().IsEmpty())
}

func TestCartService_Subscribe(t *testing.T) {
	ctx := context.Background()
	cart := createTestCartService(t, createTestStore(t))

	var seen []int
	unsubscribe := cart.Subscribe(func(c *entity.Cart) { seen = append(seen, c.ItemCount()) })

	_, err := cart.AddToCart(ctx, testProduct(1, "10"))
	require.NoError(t, err)
	_, err = cart.AddToCart(ctx, testProduct(1, "10"))
	require.NoError(t, err)

	unsubscribe()
	unsubscribe()

	_, err = cart.AddToCart(ctx, testProduct(2, "10"))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, seen)
}

func TestCartService_CartReturnsCopy(t *testing.T) {
	ctx := context.Background()
	cart := createTestCartService(t, createTestStore(t))

	_, err := cart.AddToCart(ctx, testProduct(1, "10"))
	require.NoError(t, err)

	view := cart.Cart()
	view.Lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Cart().Lines[0].Quantity)
}
