package handler

import (
	"strconv"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// productRequest names a catalog product by id.
type productRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// pathID parses a positive int64 path parameter.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// money renders an amount with two decimals, as the UI shows prices.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// CartView is the cart as returned to the UI.
type CartView struct {
	Lines     []entity.CartLine `json:"lines"`
	Total     string            `json:"total"`
	ItemCount int               `json:"item_count"`
}

func newCartView(cart *entity.Cart) CartView {
	lines := cart.Lines
	if lines == nil {
		lines = []entity.CartLine{}
	}

	return CartView{
		Lines:     lines,
		Total:     money(cart.Total()),
		ItemCount: cart.ItemCount(),
	}
}

// CheckoutView is the checkout session as returned to the UI.
type CheckoutView struct {
	ID                string                `json:"id"`
	Source            entity.CheckoutSource `json:"source"`
	Stage             entity.CheckoutStage  `json:"stage"`
	Lines             []entity.CartLine     `json:"lines"`
	SelectedAddressID *int64                `json:"selected_address_id"`
	Total             string                `json:"total"`
}

func newCheckoutView(session *entity.CheckoutSession) CheckoutView {
	return CheckoutView{
		ID:                session.ID.String(),
		Source:            session.Source,
		Stage:             session.Stage,
		Lines:             session.Lines,
		SelectedAddressID: session.SelectedAddressID,
		Total:             money(session.Total),
	}
}
