package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type wishlistService struct {
	mu        sync.Mutex
	wishlist  *entity.Wishlist
	store     repository.DurableStore
	cart      usecase.CartUsecase
	logger    *slog.Logger
	observers observers[*entity.Wishlist]
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	Ctx    context.Context
	Store  repository.DurableStore
	Cart   usecase.CartUsecase
	Logger *slog.Logger
}

// NewWishlistService creates the wishlist container, hydrated from its own slot
func NewWishlistService(params WishlistServiceParams) (usecase.WishlistUsecase, error) {
	ctx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	wishlist, _, err := repository.LoadJSON[entity.Wishlist](ctx, params.Store, repository.SlotWishlist)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hydrate wishlist")
	}
	if wishlist.Items == nil {
		wishlist.Items = []entity.ProductSnapshot{}
	}

	return &wishlistService{
		wishlist: &wishlist,
		store:    params.Store,
		cart:     params.Cart,
		logger:   params.Logger,
	}, nil
}

// Wishlist returns a copy of the current wishlist
func (s *wishlistService) Wishlist() *entity.Wishlist {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wishlist.Clone()
}

// ToggleWishlist adds or removes product
func (s *wishlistService) ToggleWishlist(ctx context.Context, product entity.ProductSnapshot) (bool, error) {
	s.mu.Lock()

	next := s.wishlist.Clone()
	wishlisted := next.Toggle(product)

	if err := repository.SaveJSON(ctx, s.store, repository.SlotWishlist, next); err != nil {
		s.mu.Unlock()
		s.logger.Error("Failed to persist wishlist", slog.Any("error", err))

		return !wishlisted, domainerrors.NewStoreError(err, "wishlist")
	}

	s.wishlist = next
	view := next.Clone()
	s.mu.Unlock()

	s.observers.notify(view)

	return wishlisted, nil
}

// IsWishlisted reports membership by product id
func (s *wishlistService) IsWishlisted(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wishlist.Contains(productID)
}

// MoveToCart adds a wishlisted product to the cart
func (s *wishlistService) MoveToCart(ctx context.Context, productID int64) (*entity.Cart, error) {
	s.mu.Lock()
	product, ok := s.wishlist.Get(productID)
	s.mu.Unlock()

	if !ok {
		return nil, domainerrors.ErrNotWishlisted
	}

	return s.cart.AddToCart(ctx, product)
}

// Subscribe registers fn for wishlist changes
func (s *wishlistService) Subscribe(fn func(*entity.Wishlist)) func() {
	return s.observers.subscribe(fn)
}
