// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductSnapshot is a product as fetched from the catalog.
// Containers keep value copies, never references into a catalog response.
type ProductSnapshot struct {
	ID          int64           `json:"id"`          // Catalog identifier.
	Name        string          `json:"name"`        // Display name.
	Description string          `json:"description"` // Free-form description.
	Price       decimal.Decimal `json:"price"`       // Unit price in major currency units.
	Image       string          `json:"image"`       // Image URI.
	Rating      float64         `json:"rating"`      // Average rating, 0.0 to 5.0.
	Stock       int             `json:"stock"`       // Units in stock.
	Category    string          `json:"category"`    // Catalog category.
	Brand       string          `json:"brand"`       // Manufacturer.
}

// InStock reports whether at least one unit is available.
func (p ProductSnapshot) InStock() bool {
	return p.Stock > 0
}

// Availability values accepted by ProductFilter.
const (
	AvailabilityInStock    = "in"
	AvailabilityOutOfStock = "out"
)

// ProductQuery is passed to the catalog collaborator as server-side filters.
type ProductQuery struct {
	Brand    string
	Category string
}

// ProductFilter narrows a product listing on the client side.
// Empty fields do not filter.
type ProductFilter struct {
	Category     string           // Case-insensitive exact category match.
	Categories   []string         // Any of these categories.
	Brands       []string         // Any of these brands.
	MinRatings   []int            // Keep products whose floored rating reaches any of these.
	Availability []string         // "in" and/or "out".
	MaxPrice     *decimal.Decimal // Upper price bound, inclusive.
}

// Matches reports whether p passes every populated criterion.
func (f ProductFilter) Matches(p ProductSnapshot) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}

	if len(f.Categories) > 0 && !containsString(f.Categories, p.Category) {
		return false
	}

	if len(f.Brands) > 0 && !containsString(f.Brands, p.Brand) {
		return false
	}

	if len(f.MinRatings) > 0 {
		floored := int(math.Floor(p.Rating))
		ok := false
		for _, r := range f.MinRatings {
			if floored >= r {
				ok = true

				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(f.Availability) > 0 {
		wantIn := containsString(f.Availability, AvailabilityInStock)
		wantOut := containsString(f.Availability, AvailabilityOutOfStock)
		if !(wantIn && p.Stock > 0) && !(wantOut && p.Stock == 0) {
			return false
		}
	}

	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}

	return true
}

func containsString(values []string, needle string) bool {
	for _, v := range values {
		if v == needle {
			return true
		}
	}

	return false
}
