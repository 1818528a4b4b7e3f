package entity

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, price string) ProductSnapshot {
	return ProductSnapshot{ID: id, Price: decimal.RequireFromString(price)}
}

func TestCart_TotalRoundsToCents(t *testing.T) {
	cart := &Cart{}
	cart.Add(product(1, "0.105"))
	cart.Add(product(1, "0.105"))
	cart.Add(product(2, "19.999"))

	assert.Equal(t, "20.21", cart.Total().StringFixed(2))
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := &Cart{}
	cart.Add(product(1, "10"))

	assert.True(t, cart.UpdateQuantity(1, 2))
	line, ok := cart.Line(1)
	require.True(t, ok)
	assert.Equal(t, 3, line.Quantity)

	assert.False(t, cart.UpdateQuantity(1, 0))
	assert.False(t, cart.UpdateQuantity(9, 1))

	assert.True(t, cart.UpdateQuantity(1, -10))
	assert.True(t, cart.IsEmpty())
}

func TestCart_CloneIsDeep(t *testing.T) {
	cart := &Cart{}
	cart.Add(product(1, "10"))

	clone := cart.Clone()
	clone.Lines[0].Quantity = 5
	clone.Add(product(2, "1"))

	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Len(t, cart.Lines, 1)

	var nilCart *Cart
	assert.NotNil(t, nilCart.Clone().Lines)
}

func TestCart_RemoveKeepsOrder(t *testing.T) {
	cart := &Cart{}
	for _, id := range []int64{1, 2, 3} {
		cart.Add(product(id, "1"))
	}

	assert.True(t, cart.Remove(2))
	assert.False(t, cart.Remove(2))
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, int64(1), cart.Lines[0].Product.ID)
	assert.Equal(t, int64(3), cart.Lines[1].Product.ID)
}

func TestWishlist_Toggle(t *testing.T) {
	w := &Wishlist{}

	assert.True(t, w.Toggle(product(1, "1")))
	assert.True(t, w.Toggle(product(2, "1")))
	assert.True(t, w.Contains(1))
	assert.False(t, w.Toggle(product(1, "1")))
	assert.False(t, w.Contains(1))
	require.Len(t, w.Items, 1)
	assert.Equal(t, int64(2), w.Items[0].ID)
}

func TestCart_RepeatedAddCountsCalls(t *testing.T) {
	for _, calls := range []int{1, 2, 7, 50} {
		cart := &Cart{}
		for i := 0; i < calls; i++ {
			cart.Add(product(9, "3.50"))
		}

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, calls, cart.Lines[0].Quantity)
	}
}

func TestCart_UpdateQuantitySaturates(t *testing.T) {
	cart := &Cart{}
	cart.Add(product(1, "10"))
	cart.Add(product(1, "10"))

	changed := cart.UpdateQuantity(1, math.MaxInt)
	assert.True(t, changed)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, math.MaxInt, cart.Lines[0].Quantity)

	assert.False(t, cart.UpdateQuantity(1, 1))
	assert.Equal(t, math.MaxInt, cart.Lines[0].Quantity)

	assert.True(t, cart.UpdateQuantity(1, math.MinInt))
	assert.Empty(t, cart.Lines)
}

func TestCart_UpdateQuantityRemovesAtExactlyZero(t *testing.T) {
	cart := &Cart{}
	cart.Add(product(1, "10"))

	assert.True(t, cart.UpdateQuantity(1, -1))
	assert.Empty(t, cart.Lines)
}
