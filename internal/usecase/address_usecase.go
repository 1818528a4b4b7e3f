package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddressUsecase validates address forms before they reach the address book
type AddressUsecase interface {
	ListAddresses(ctx context.Context) ([]entity.Address, error)
	CreateAddress(ctx context.Context, fields entity.AddressFields) (*entity.Address, error)
	UpdateAddress(ctx context.Context, id int64, fields entity.AddressFields) (*entity.Address, error)
}
