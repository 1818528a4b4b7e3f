package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductFilter_Matches(t *testing.T) {
	p := ProductSnapshot{Price: decimal.RequireFromString("100"), Rating: 3.7, Stock: 0, Category: "Phones", Brand: "Acme"}
	limit := decimal.RequireFromString("100")
	below := decimal.RequireFromString("99.99")

	tests := []struct {
		name   string
		filter ProductFilter
		want   bool
	}{
		{name: "empty", filter: ProductFilter{}, want: true},
		{name: "category ignores case", filter: ProductFilter{Category: "PHONES"}, want: true},
		{name: "category set is exact", filter: ProductFilter{Categories: []string{"phones"}}, want: false},
		{name: "brand", filter: ProductFilter{Brands: []string{"Zen", "Acme"}}, want: true},
		{name: "rating floor", filter: ProductFilter{MinRatings: []int{4}}, want: false},
		{name: "rating floor met", filter: ProductFilter{MinRatings: []int{3}}, want: true},
		{name: "in stock only", filter: ProductFilter{Availability: []string{AvailabilityInStock}}, want: false},
		{name: "out of stock", filter: ProductFilter{Availability: []string{AvailabilityOutOfStock}}, want: true},
		{name: "price inclusive", filter: ProductFilter{MaxPrice: &limit}, want: true},
		{name: "price above", filter: ProductFilter{MaxPrice: &below}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(p))
		})
	}
}
