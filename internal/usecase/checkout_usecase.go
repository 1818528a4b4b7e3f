package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutUsecase orchestrates ADDRESS_SELECTION -> SUMMARY_REVIEW -> PAYMENT_SELECTION
// over a working copy of line items.
type CheckoutUsecase interface {
	// Begin starts a checkout from a deep copy of the cart lines
	Begin(ctx context.Context) (*entity.CheckoutSession, error)

	// BeginDirectBuy starts a checkout of a single unit of product, bypassing the cart
	BeginDirectBuy(ctx context.Context, product entity.ProductSnapshot) (*entity.CheckoutSession, error)

	// Session returns a copy of the current session
	Session() (*entity.CheckoutSession, error)

	// SelectAddress sets and persists the delivery address
	SelectAddress(ctx context.Context, addressID int64) (*entity.CheckoutSession, error)

	// ConfirmAddress moves to SUMMARY_REVIEW once an address is selected
	ConfirmAddress(ctx context.Context) (*entity.CheckoutSession, error)

	// IncrementLine adds one unit to a working-set line
	IncrementLine(ctx context.Context, productID int64) (*entity.CheckoutSession, error)

	// DecrementLine removes one unit from a working-set line, never going below 1
	DecrementLine(ctx context.Context, productID int64) (*entity.CheckoutSession, error)

	// RemoveLine drops a working-set line
	RemoveLine(ctx context.Context, productID int64) (*entity.CheckoutSession, error)

	// AdvanceToPayment persists the checkout snapshot and moves to PAYMENT_SELECTION
	AdvanceToPayment(ctx context.Context) (*entity.CheckoutSession, error)

	// PlaceOrder submits the working set as an order
	PlaceOrder(ctx context.Context, method entity.PaymentMethod) (*entity.Order, error)

	// InitiatePayment creates a gateway order intent for the persisted snapshot
	InitiatePayment(ctx context.Context) (*entity.PaymentIntent, error)

	// HandlePaymentResult reconciles a gateway callback, correlated by intent id
	HandlePaymentResult(ctx context.Context, result entity.PaymentResult) (*entity.Order, error)

	// Discard ends the current session without placing an order
	Discard(ctx context.Context) error

	// Subscribe registers fn for session changes. fn receives nil when the session ends
	Subscribe(fn func(*entity.CheckoutSession)) (unsubscribe func())
}
