package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves product browsing.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts returns products matching the query filters.
//
// Multi-valued filters accept repeated parameters or comma-separated values:
// ?brand=Acme&brand=Zen, ?minRating=3,4, ?availability=in.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct returns one product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Brands returns the distinct brands.
func (h *CatalogHandler) Brands(c echo.Context) error {
	brands, err := h.catalogUC.Brands(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brands)
}

// Categories returns the distinct categories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalogUC.Categories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

type filterError string

func (e filterError) Error() string { return string(e) }

func parseProductFilter(c echo.Context) (entity.ProductFilter, error) {
	query := c.QueryParams()

	filter := entity.ProductFilter{
		Category:   strings.TrimSpace(query.Get("category")),
		Categories: splitValues(query["categories"]),
		Brands:     splitValues(query["brand"]),
	}

	for _, raw := range splitValues(query["minRating"]) {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < 0 || rating > 5 {
			return filter, filterError("minRating must be an integer between 0 and 5")
		}
		filter.MinRatings = append(filter.MinRatings, rating)
	}

	for _, raw := range splitValues(query["availability"]) {
		switch v := strings.ToLower(raw); v {
		case entity.AvailabilityInStock, entity.AvailabilityOutOfStock:
			filter.Availability = append(filter.Availability, v)
		default:
			return filter, filterError("availability must be 'in' or 'out'")
		}
	}

	if raw := strings.TrimSpace(query.Get("maxPrice")); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil || maxPrice.IsNegative() {
			return filter, filterError("maxPrice must be a non-negative number")
		}
		filter.MaxPrice = &maxPrice
	}

	return filter, nil
}

func splitValues(raw []string) []string {
	var out []string
	for _, v := range raw {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}
