package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase lists the user's recorded orders
type OrderUsecase interface {
	ListOrders(ctx context.Context) ([]entity.Order, error)
}
