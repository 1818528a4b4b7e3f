package impl

import (
	"context"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type orderService struct {
	orders service.OrderClient
}

// NewOrderService creates a new order service instance
func NewOrderService(orders service.OrderClient) usecase.OrderUsecase {
	return &orderService{orders: orders}
}

// ListOrders returns the user's orders, newest first
func (s *orderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, asNetworkError("orders.list", err)
	}

	slices.SortStableFunc(orders, func(a, b entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return orders, nil
}
