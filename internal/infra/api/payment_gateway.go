package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

type paymentGateway struct {
	client *Client
}

// NewPaymentGateway returns the gateway intent collaborator.
func NewPaymentGateway(client *Client) service.PaymentGateway {
	return &paymentGateway{client: client}
}

type createIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

func (g *paymentGateway) CreateOrderIntent(ctx context.Context, amountMinor int64, currency string) (*entity.PaymentIntent, error) {
	const op = "payments.create_intent"

	var intent entity.PaymentIntent
	if err := g.client.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/api/razorpay/create-order/",
		body:   createIntentRequest{Amount: amountMinor, Currency: currency},
		auth:   true,
	}, &intent); err != nil {
		return nil, err
	}

	if intent.IntentID == "" {
		return nil, domainerrors.NewNetworkError(op, http.StatusOK, errors.New("gateway order id missing"))
	}
	if intent.Amount == 0 {
		intent.Amount = amountMinor
	}

	return &intent, nil
}
