package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistUsecase is the wishlist state container, persisted apart from the cart.
type WishlistUsecase interface {
	// Wishlist returns a copy of the current wishlist
	Wishlist() *entity.Wishlist

	// ToggleWishlist adds or removes product and reports whether it is wishlisted afterwards
	ToggleWishlist(ctx context.Context, product entity.ProductSnapshot) (bool, error)

	// IsWishlisted reports membership by product id
	IsWishlisted(productID int64) bool

	// MoveToCart adds a wishlisted product to the cart. The wishlist is left as is
	MoveToCart(ctx context.Context, productID int64) (*entity.Cart, error)

	// Subscribe registers fn for wishlist changes and returns its unsubscribe func
	Subscribe(fn func(*entity.Wishlist)) (unsubscribe func())
}
