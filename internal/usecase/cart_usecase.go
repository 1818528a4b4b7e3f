// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartUsecase is the cart state container. Every mutation is written to the
// durable store before it becomes visible in memory.
type CartUsecase interface {
	// Cart returns a copy of the current cart
	Cart() *entity.Cart

	// AddToCart increments the line for product or appends it with quantity 1
	AddToCart(ctx context.Context, product entity.ProductSnapshot) (*entity.Cart, error)

	// UpdateQuantity applies delta, removing the line at zero. Unknown ids are a no-op
	UpdateQuantity(ctx context.Context, productID int64, delta int) (*entity.Cart, error)

	// RemoveFromCart deletes the line for productID if present
	RemoveFromCart(ctx context.Context, productID int64) (*entity.Cart, error)

	// ClearCart empties the cart
	ClearCart(ctx context.Context) error

	// Total returns the cart total rounded to 2 decimal places
	Total() decimal.Decimal

	// Subscribe registers fn for cart changes and returns its unsubscribe func
	Subscribe(fn func(*entity.Cart)) (unsubscribe func())
}
