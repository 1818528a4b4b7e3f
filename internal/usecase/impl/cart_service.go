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

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type cartService struct {
	mu        sync.Mutex
	cart      *entity.Cart
	store     repository.DurableStore
	logger    *slog.Logger
	observers observers[*entity.Cart]
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Ctx    context.Context
	Store  repository.DurableStore
	Logger *slog.Logger
}

// NewCartService creates the cart container, hydrated from the durable store
func NewCartService(params CartServiceParams) (usecase.CartUsecase, error) {
	ctx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	cart, found, err := repository.LoadJSON[entity.Cart](ctx, params.Store, repository.SlotCart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hydrate cart")
	}
	if cart.Lines == nil {
		cart.Lines = []entity.CartLine{}
	}

	params.Logger.Debug("Cart hydrated", slog.Bool("found", found), slog.Int("lines", len(cart.Lines)))

	return &cartService{
		cart:   &cart,
		store:  params.Store,
		logger: params.Logger,
	}, nil
}

// Cart returns a copy of the current cart
func (s *cartService) Cart() *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone()
}

// AddToCart increments the line for product or appends it with quantity 1
func (s *cartService) AddToCart(ctx context.Context, product entity.ProductSnapshot) (*entity.Cart, error) {
	return s.mutate(ctx, func(next *entity.Cart) bool {
		next.Add(product)

		return true
	})
}

// UpdateQuantity applies delta, removing the line at zero
func (s *cartService) UpdateQuantity(ctx context.Context, productID int64, delta int) (*entity.Cart, error) {
	return s.mutate(ctx, func(next *entity.Cart) bool {
		return next.UpdateQuantity(productID, delta)
	})
}

// RemoveFromCart deletes the line for productID if present
func (s *cartService) RemoveFromCart(ctx context.Context, productID int64) (*entity.Cart, error) {
	return s.mutate(ctx, func(next *entity.Cart) bool {
		return next.Remove(productID)
	})
}

// ClearCart empties the cart
func (s *cartService) ClearCart(ctx context.Context) error {
	_, err := s.mutate(ctx, func(next *entity.Cart) bool {
		next.Lines = []entity.CartLine{}

		return true
	})

	return err
}

// Total returns the cart total rounded to 2 decimal places
func (s *cartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Total()
}

// Subscribe registers fn for cart changes
func (s *cartService) Subscribe(fn func(*entity.Cart)) func() {
	return s.observers.subscribe(fn)
}

// mutate applies fn to a copy, persists the copy and only then swaps it in.
// A failed write leaves memory and store on the previous state.
func (s *cartService) mutate(ctx context.Context, fn func(next *entity.Cart) bool) (*entity.Cart, error) {
	s.mu.Lock()

	next := s.cart.Clone()
	if !fn(next) {
		s.mu.Unlock()

		return next, nil
	}

	if err := repository.SaveJSON(ctx, s.store, repository.SlotCart, next); err != nil {
		s.mu.Unlock()
		s.logger.Error("Failed to persist cart", slog.Any("error", err))

		return nil, domainerrors.NewStoreError(err, "cart")
	}

	s.cart = next
	view := next.Clone()
	s.mu.Unlock()

	s.observers.notify(view.Clone())

	return view, nil
}
