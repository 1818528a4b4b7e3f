package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines product browsing use cases
type CatalogUsecase interface {
	// ListProducts returns products passing filter
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductSnapshot, error)

	// GetProduct returns a single product snapshot
	GetProduct(ctx context.Context, id int64) (*entity.ProductSnapshot, error)

	// Brands returns the distinct brands of the catalog, sorted
	Brands(ctx context.Context) ([]string, error)

	// Categories returns the distinct categories of the catalog, sorted
	Categories(ctx context.Context) ([]string, error)
}
