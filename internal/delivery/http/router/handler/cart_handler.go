package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC    usecase.CartUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CartHandler serves the cart container.
type CartHandler struct {
	cartUC    usecase.CartUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:    params.CartUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// UpdateQuantityRequest is the body of PATCH /cart/items/:id
type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required,min=-1000,max=1000"`
}

// GetCart returns the current cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, newCartView(h.cartUC.Cart()))
}

// AddItem adds one unit of a catalog product.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	product, err := h.catalogUC.GetProduct(ctx, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.AddToCart(ctx, *product)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartView(cart))
}

// UpdateItem changes a line quantity by delta.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), productID, req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartView(cart))
}

// RemoveItem drops a line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	cart, err := h.cartUC.RemoveFromCart(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartView(cart))
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartUC.ClearCart(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
