package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	mockusecase "storefront/internal/mocks/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseProductFilter(t *testing.T) {
	e := newTestEcho()
	maxPrice := decimal.RequireFromString("999.5")

	tests := []struct {
		name    string
		query   string
		want    entity.ProductFilter
		wantErr string
	}{
		{
			name:  "empty",
			query: "",
			want:  entity.ProductFilter{},
		},
		{
			name:  "category and repeated brands",
			query: "?category=Phones&brand=Acme&brand=Zen",
			want:  entity.ProductFilter{Category: "Phones", Brands: []string{"Acme", "Zen"}},
		},
		{
			name:  "comma separated values",
			query: "?categories=Phones,%20Laptops&minRating=3,4&availability=IN",
			want: entity.ProductFilter{
				Categories:   []string{"Phones", "Laptops"},
				MinRatings:   []int{3, 4},
				Availability: []string{entity.AvailabilityInStock},
			},
		},
		{
			name:  "max price",
			query: "?maxPrice=999.5",
			want:  entity.ProductFilter{MaxPrice: &maxPrice},
		},
		{
			name:    "rating out of range",
			query:   "?minRating=6",
			wantErr: "minRating",
		},
		{
			name:    "unknown availability",
			query:   "?availability=soon",
			wantErr: "availability",
		},
		{
			name:    "negative max price",
			query:   "?maxPrice=-1",
			wantErr: "maxPrice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(e, http.MethodGet, "/products"+tt.query, "")

			got, err := parseProductFilter(c)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Category, got.Category)
			assert.Equal(t, tt.want.Categories, got.Categories)
			assert.Equal(t, tt.want.Brands, got.Brands)
			assert.Equal(t, tt.want.MinRatings, got.MinRatings)
			assert.Equal(t, tt.want.Availability, got.Availability)
			if tt.want.MaxPrice == nil {
				assert.Nil(t, got.MaxPrice)
			} else {
				require.NotNil(t, got.MaxPrice)
				assert.True(t, tt.want.MaxPrice.Equal(*got.MaxPrice))
			}
		})
	}
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	catalogUC := mockusecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: discardLogger()})
	e := newTestEcho()

	catalogUC.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
			return len(f.Brands) == 1 && f.Brands[0] == "Acme"
		})).
		Return([]entity.ProductSnapshot{testProduct(1, "10")}, nil)

	c, rec := newTestContext(e, http.MethodGet, "/products?brand=Acme", "")
	require.NoError(t, h.ListProducts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
}

func TestCatalogHandler_ListProducts_BadFilter(t *testing.T) {
	catalogUC := mockusecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: discardLogger()})
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/products?minRating=x", "")
	require.NoError(t, h.ListProducts(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_FILTER", decodeEnvelope(t, rec).Error.Code)
}
