package api

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

type addressClient struct {
	client *Client
}

// NewAddressBook returns the address book collaborator.
func NewAddressBook(client *Client) service.AddressBook {
	return &addressClient{client: client}
}

func (c *addressClient) ListAddresses(ctx context.Context) ([]entity.Address, error) {
	var addresses []entity.Address
	if err := c.client.do(ctx, call{
		op:     "addresses.list",
		method: http.MethodGet,
		path:   "/api/addresses/",
		auth:   true,
	}, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (c *addressClient) CreateAddress(ctx context.Context, fields entity.AddressFields) (*entity.Address, error) {
	var address entity.Address
	if err := c.client.do(ctx, call{
		op:     "addresses.create",
		method: http.MethodPost,
		path:   "/api/addresses/",
		body:   fields,
		auth:   true,
	}, &address); err != nil {
		return nil, err
	}

	return &address, nil
}

func (c *addressClient) UpdateAddress(ctx context.Context, id int64, fields entity.AddressFields) (*entity.Address, error) {
	var address entity.Address
	err := c.client.do(ctx, call{
		op:     "addresses.update",
		method: http.MethodPut,
		path:   "/api/addresses/" + strconv.FormatInt(id, 10) + "/",
		body:   fields,
		auth:   true,
	}, &address)
	if isStatus(err, http.StatusNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("address " + strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, err
	}

	return &address, nil
}
