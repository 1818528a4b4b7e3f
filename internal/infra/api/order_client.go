package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type orderClient struct {
	client *Client
}

// NewOrderClient returns the order service collaborator.
func NewOrderClient(client *Client) service.OrderClient {
	return &orderClient{client: client}
}

// CreateOrder submits draft once. It never retries.
func (c *orderClient) CreateOrder(ctx context.Context, draft *entity.OrderDraft) (*entity.Order, error) {
	var order entity.Order
	if err := c.client.do(ctx, call{
		op:     "orders.create",
		method: http.MethodPost,
		path:   "/api/orders/create/",
		body:   draft,
		auth:   true,
	}, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *orderClient) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.client.do(ctx, call{
		op:     "orders.list",
		method: http.MethodGet,
		path:   "/api/orders/",
		auth:   true,
	}, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
