package handler

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	CatalogUC  usecase.CatalogUsecase
	Logger     *slog.Logger
}

// CheckoutHandler drives the checkout orchestrator.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	catalogUC  usecase.CatalogUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		catalogUC:  params.CatalogUC,
		logger:     params.Logger,
	}
}

// BeginRequest starts a checkout. Without a product id the cart is checked out.
type BeginRequest struct {
	DirectBuyProductID *int64 `json:"direct_buy_product_id,omitempty" validate:"omitempty,gt=0"`
}

// SelectAddressRequest is the body of PUT /checkout/address
type SelectAddressRequest struct {
	AddressID int64 `json:"address_id" validate:"required,gt=0"`
}

// PlaceOrderRequest is the body of POST /checkout/orders
type PlaceOrderRequest struct {
	PaymentMethod entity.PaymentMethod `json:"payment_method" validate:"required"`
}

// Begin starts a cart or direct-buy checkout.
func (h *CheckoutHandler) Begin(c echo.Context) error {
	var req BeginRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
		}
		if err := c.Validate(&req); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	ctx := c.Request().Context()
	var (
		session *entity.CheckoutSession
		err     error
	)
	if req.DirectBuyProductID != nil {
		product, getErr := h.catalogUC.GetProduct(ctx, *req.DirectBuyProductID)
		if getErr != nil {
			return response.HandleAppError(c, getErr)
		}
		session, err = h.checkoutUC.BeginDirectBuy(ctx, *product)
	} else {
		session, err = h.checkoutUC.Begin(ctx)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCheckoutView(session))
}

// GetSession returns the current checkout.
func (h *CheckoutHandler) GetSession(c echo.Context) error {
	session, err := h.checkoutUC.Session()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCheckoutView(session))
}

// Discard ends the current checkout.
func (h *CheckoutHandler) Discard(c echo.Context) error {
	if err := h.checkoutUC.Discard(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// SelectAddress sets the delivery address.
func (h *CheckoutHandler) SelectAddress(c echo.Context) error {
	var req SelectAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address selection")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.sessionResult(c, http.StatusOK)(h.checkoutUC.SelectAddress(c.Request().Context(), req.AddressID))
}

// ConfirmAddress is "deliver here".
func (h *CheckoutHandler) ConfirmAddress(c echo.Context) error {
	return h.sessionResult(c, http.StatusOK)(h.checkoutUC.ConfirmAddress(c.Request().Context()))
}

// IncrementLine adds one unit to a working-set line.
func (h *CheckoutHandler) IncrementLine(c echo.Context) error {
	return h.lineEdit(c, h.checkoutUC.IncrementLine)
}

// DecrementLine removes one unit from a working-set line.
func (h *CheckoutHandler) DecrementLine(c echo.Context) error {
	return h.lineEdit(c, h.checkoutUC.DecrementLine)
}

// RemoveLine drops a working-set line.
func (h *CheckoutHandler) RemoveLine(c echo.Context) error {
	return h.lineEdit(c, h.checkoutUC.RemoveLine)
}

// AdvanceToPayment moves to payment selection.
func (h *CheckoutHandler) AdvanceToPayment(c echo.Context) error {
	return h.sessionResult(c, http.StatusOK)(h.checkoutUC.AdvanceToPayment(c.Request().Context()))
}

// PlaceOrder submits a cash-on-delivery order.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.checkoutUC.PlaceOrder(c.Request().Context(), req.PaymentMethod)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// InitiatePayment creates a gateway order intent for the UI to open.
func (h *CheckoutHandler) InitiatePayment(c echo.Context) error {
	intent, err := h.checkoutUC.InitiatePayment(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, intent)
}

// PaymentCallback reconciles the gateway result.
func (h *CheckoutHandler) PaymentCallback(c echo.Context) error {
	var result entity.PaymentResult
	if err := c.Bind(&result); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment result")
	}
	if err := c.Validate(&result); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	order, err := h.checkoutUC.HandlePaymentResult(ctx, result)
	if err != nil {
		deliverycontext.Logger(ctx, h.logger).Warn("Payment callback not settled",
			slog.String("intent_id", result.IntentID),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

func (h *CheckoutHandler) lineEdit(c echo.Context, edit func(ctx context.Context, productID int64) (*entity.CheckoutSession, error)) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	return h.sessionResult(c, http.StatusOK)(edit(c.Request().Context(), productID))
}

func (h *CheckoutHandler) sessionResult(c echo.Context, status int) func(*entity.CheckoutSession, error) error {
	return func(session *entity.CheckoutSession, err error) error {
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, status, newCheckoutView(session))
	}
}
