package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

type catalogClient struct {
	client *Client
}

// NewCatalogClient returns the catalog collaborator. Catalog reads are public.
func NewCatalogClient(client *Client) service.CatalogClient {
	return &catalogClient{client: client}
}

func (c *catalogClient) ListProducts(ctx context.Context, query entity.ProductQuery) ([]entity.ProductSnapshot, error) {
	values := url.Values{}
	if query.Brand != "" {
		values.Set("brand", query.Brand)
	}
	if query.Category != "" {
		values.Set("category", query.Category)
	}

	var products []entity.ProductSnapshot
	if err := c.client.do(ctx, call{
		op:     "catalog.list",
		method: http.MethodGet,
		path:   "/api/products/",
		query:  values,
	}, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *catalogClient) GetProduct(ctx context.Context, id int64) (*entity.ProductSnapshot, error) {
	var product entity.ProductSnapshot
	err := c.client.do(ctx, call{
		op:     "catalog.get",
		method: http.MethodGet,
		path:   "/api/products/" + strconv.FormatInt(id, 10) + "/",
	}, &product)
	if isStatus(err, http.StatusNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}
