package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"golang.org/x/sync/singleflight"
)

// Bounds a shared lookup once it no longer follows any caller's context.
const sharedLookupTimeout = 30 * time.Second

type catalogService struct {
	client service.CatalogClient
	group  singleflight.Group
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(client service.CatalogClient, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		client: client,
		logger: logger,
	}
}

// ListProducts fetches by category on the server and applies the rest of filter locally
func (s *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductSnapshot, error) {
	products, err := s.list(ctx, entity.ProductQuery{Category: filter.Category})
	if err != nil {
		return nil, err
	}

	matched := make([]entity.ProductSnapshot, 0, len(products))
	for _, p := range products {
		if filter.Matches(p) {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

// GetProduct returns a single product. Concurrent lookups of one id share a request
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*entity.ProductSnapshot, error) {
	v, shared, err := s.shared(ctx, "product:"+strconv.FormatInt(id, 10), func(ctx context.Context) (any, error) {
		return s.client.GetProduct(ctx, id)
	})
	if err != nil {
		return nil, asNetworkError("catalog.get_product", err)
	}
	if shared {
		s.logger.Debug("Product lookup shared", slog.Int64("product_id", id))
	}

	product := *v.(*entity.ProductSnapshot)

	return &product, nil
}

// Brands returns the distinct brands of the catalog, sorted
func (s *catalogService) Brands(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(p entity.ProductSnapshot) string { return p.Brand })
}

// Categories returns the distinct categories of the catalog, sorted
func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(p entity.ProductSnapshot) string { return p.Category })
}

func (s *catalogService) distinct(ctx context.Context, field func(entity.ProductSnapshot) string) ([]string, error) {
	products, err := s.list(ctx, entity.ProductQuery{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(products))
	values := make([]string, 0)
	for _, p := range products {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)

	return values, nil
}

func (s *catalogService) list(ctx context.Context, query entity.ProductQuery) ([]entity.ProductSnapshot, error) {
	key := "products:" + query.Brand + "|" + query.Category
	v, _, err := s.shared(ctx, key, func(ctx context.Context) (any, error) {
		return s.client.ListProducts(ctx, query)
	})
	if err != nil {
		return nil, asNetworkError("catalog.list_products", err)
	}

	products, ok := v.([]entity.ProductSnapshot)
	if !ok {
		return nil, errors.Errorf("unexpected catalog result %T", v)
	}

	// Shared results must not be mutated by one caller under another.
	return slices.Clone(products), nil
}

// shared runs fn once per key for all concurrent callers. The call is detached
// from the caller that started it, so one cancelled request does not fail the
// others; each caller still stops waiting when its own ctx ends.
func (s *catalogService) shared(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, bool, error) {
	ch := s.group.DoChan(key, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLookupTimeout)
		defer cancel()

		return fn(callCtx)
	})

	select {
	case <-ctx.Done():
		return nil, false, errors.WithStack(ctx.Err())
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	}
}
