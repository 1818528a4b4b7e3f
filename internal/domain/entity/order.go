package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how an order is paid.
type PaymentMethod string

const (
	PaymentMethodCOD     PaymentMethod = "cod"
	PaymentMethodGateway PaymentMethod = "online"
)

// Valid reports whether m is a known method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodGateway
}

// OrderLine is one submitted line item.
type OrderLine struct {
	ProductID int64           `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderDraft is the order submission payload. It is built right before
// submission and only outlives the attempt inside a pending payment record.
type OrderDraft struct {
	AddressID        int64           `json:"address"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	PaymentMethod    PaymentMethod   `json:"payment_method,omitempty"`
	IsPaid           bool            `json:"is_paid"`
	GatewayOrderID   string          `json:"razorpay_order_id,omitempty"`
	GatewayPaymentID string          `json:"razorpay_payment_id,omitempty"`
	GatewaySignature string          `json:"razorpay_signature,omitempty"`
	Lines            []OrderLine     `json:"items"`
}

// NewOrderDraft builds an unpaid draft from a working set.
func NewOrderDraft(addressID int64, lines []CartLine, method PaymentMethod) *OrderDraft {
	draft := &OrderDraft{
		AddressID:     addressID,
		TotalPrice:    LinesTotal(lines),
		PaymentMethod: method,
		Lines:         make([]OrderLine, 0, len(lines)),
	}
	for _, l := range lines {
		draft.Lines = append(draft.Lines, OrderLine{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
			Price:     l.Product.Price,
		})
	}

	return draft
}

// OrderItem is a line of a recorded order as returned by the order service.
type OrderItem struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Order is a recorded order.
type Order struct {
	ID               int64           `json:"id"`
	UserOrderNumber  int             `json:"user_order_number"`
	AddressID        int64           `json:"address"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	IsPaid           bool            `json:"is_paid"`
	CreatedAt        time.Time       `json:"created_at"`
	Items            []OrderItem     `json:"items"`
	GatewayOrderID   string          `json:"razorpay_order_id,omitempty"`
	GatewayPaymentID string          `json:"razorpay_payment_id,omitempty"`
}
