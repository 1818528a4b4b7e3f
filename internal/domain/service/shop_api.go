package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogClient reads products from the remote catalog.
type CatalogClient interface {
	// ListProducts returns products matching the server-side query.
	ListProducts(ctx context.Context, query entity.ProductQuery) ([]entity.ProductSnapshot, error)

	// GetProduct returns a single product.
	GetProduct(ctx context.Context, id int64) (*entity.ProductSnapshot, error)
}

// AddressBook is the remote address CRUD service.
type AddressBook interface {
	ListAddresses(ctx context.Context) ([]entity.Address, error)
	CreateAddress(ctx context.Context, fields entity.AddressFields) (*entity.Address, error)
	UpdateAddress(ctx context.Context, id int64, fields entity.AddressFields) (*entity.Address, error)
}

// OrderClient records and lists orders. Any failure is reported as a
// NetworkError; callers do not interpret subtypes.
type OrderClient interface {
	CreateOrder(ctx context.Context, draft *entity.OrderDraft) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]entity.Order, error)
}

// PaymentGateway creates gateway order intents. The payment itself happens in
// the gateway's own UI; its result comes back through the checkout callback.
type PaymentGateway interface {
	CreateOrderIntent(ctx context.Context, amountMinor int64, currency string) (*entity.PaymentIntent, error)
}
