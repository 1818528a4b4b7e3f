package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentIntent is a gateway order authorizing a fixed amount.
type PaymentIntent struct {
	IntentID string `json:"order_id"`
	Amount   int64  `json:"amount"` // Minor currency units.
	Currency string `json:"currency"`
	Key      string `json:"key,omitempty"` // Publishable gateway key for the UI.
}

// PaymentResult is the gateway callback for an intent.
type PaymentResult struct {
	IntentID      string `json:"intent_id" validate:"required"`
	Success       bool   `json:"success"`
	PaymentID     string `json:"payment_id,omitempty"`
	Signature     string `json:"signature,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// PendingPayment survives the trip to the gateway UI and back.
type PendingPayment struct {
	Intent    PaymentIntent    `json:"intent"`
	Snapshot  CheckoutSnapshot `json:"snapshot"`
	CreatedAt time.Time        `json:"created_at"`
}

// Draft builds the paid order for a successful gateway callback.
func (p *PendingPayment) Draft(result PaymentResult) *OrderDraft {
	draft := NewOrderDraft(p.Snapshot.AddressID, p.Snapshot.Lines, PaymentMethodGateway)
	draft.TotalPrice = p.Snapshot.Total
	draft.IsPaid = true
	draft.GatewayOrderID = p.Intent.IntentID
	draft.GatewayPaymentID = result.PaymentID
	draft.GatewaySignature = result.Signature

	return draft
}

// ToMinorUnits converts a major-unit amount to minor units, rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// OrderEventType classifies published order events.
type OrderEventType string

const (
	OrderEventPlaced OrderEventType = "order.placed"
	// OrderEventUnrecorded is a captured payment whose order submission failed.
	OrderEventUnrecorded OrderEventType = "order.payment_captured_unrecorded"
)

// OrderEvent is published after an order attempt reaches a terminal outcome.
type OrderEvent struct {
	RequestID        string          `json:"request_id,omitempty"` // For distributed tracing
	Type             OrderEventType  `json:"type"`
	OrderID          int64           `json:"order_id,omitempty"`
	Source           CheckoutSource  `json:"source"`
	AddressID        int64           `json:"address_id"`
	Total            decimal.Decimal `json:"total"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	GatewayOrderID   string          `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string          `json:"gateway_payment_id,omitempty"`
	Reason           string          `json:"reason,omitempty"`
	OccurredAt       time.Time       `json:"occurred_at"`
}
