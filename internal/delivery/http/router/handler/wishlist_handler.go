package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	CatalogUC  usecase.CatalogUsecase
	Logger     *slog.Logger
}

// WishlistHandler serves the wishlist container.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	catalogUC  usecase.CatalogUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		catalogUC:  params.CatalogUC,
		logger:     params.Logger,
	}
}

// WishlistStatus reports membership of one product.
type WishlistStatus struct {
	ProductID  int64 `json:"product_id"`
	Wishlisted bool  `json:"wishlisted"`
}

// GetWishlist returns the wishlist items.
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.wishlistUC.Wishlist())
}

// GetItem reports whether a product is wishlisted.
func (h *WishlistHandler) GetItem(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	return response.Success(c, http.StatusOK, WishlistStatus{
		ProductID:  productID,
		Wishlisted: h.wishlistUC.IsWishlisted(productID),
	})
}

// Toggle adds or removes a catalog product.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	product, err := h.catalogUC.GetProduct(ctx, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	wishlisted, err := h.wishlistUC.ToggleWishlist(ctx, *product)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, WishlistStatus{ProductID: product.ID, Wishlisted: wishlisted})
}

// MoveToCart adds a wishlisted product to the cart.
func (h *WishlistHandler) MoveToCart(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	cart, err := h.wishlistUC.MoveToCart(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartView(cart))
}
