package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutStage is a step of the checkout flow. Stages are ordered.
type CheckoutStage int

const (
	StageAddressSelection CheckoutStage = iota + 1
	StageSummaryReview
	StagePaymentSelection
)

// String returns the wire name of the stage.
func (s CheckoutStage) String() string {
	switch s {
	case StageAddressSelection:
		return "ADDRESS_SELECTION"
	case StageSummaryReview:
		return "SUMMARY_REVIEW"
	case StagePaymentSelection:
		return "PAYMENT_SELECTION"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the stage by name.
func (s CheckoutStage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CheckoutSource tells where the working set came from.
type CheckoutSource string

const (
	// SourceCart means the working set was copied from the cart.
	SourceCart CheckoutSource = "cart"
	// SourceDirectBuy means a single product bypassed the cart.
	SourceDirectBuy CheckoutSource = "direct_buy"
)

// CheckoutSession is the orchestrator's state for one pass through checkout.
// Lines is a working copy; edits never reach the cart.
type CheckoutSession struct {
	ID                uuid.UUID       `json:"id"`
	Source            CheckoutSource  `json:"source"`
	Stage             CheckoutStage   `json:"stage"`
	Lines             []CartLine      `json:"lines"`
	SelectedAddressID *int64          `json:"selected_address_id,omitempty"`
	Total             decimal.Decimal `json:"total"`
	StartedAt         time.Time       `json:"started_at"`
}

// Clone returns a deep copy of the session.
func (s *CheckoutSession) Clone() *CheckoutSession {
	if s == nil {
		return nil
	}

	out := *s
	out.Lines = CloneLines(s.Lines)
	if s.SelectedAddressID != nil {
		id := *s.SelectedAddressID
		out.SelectedAddressID = &id
	}

	return &out
}

// HasAddress reports whether an address has been selected.
func (s *CheckoutSession) HasAddress() bool {
	return s.SelectedAddressID != nil
}

// Recalculate refreshes Total from the working set.
func (s *CheckoutSession) Recalculate() {
	s.Total = LinesTotal(s.Lines)
}

// CheckoutSnapshot is what the payment stage reads back after a reload.
type CheckoutSnapshot struct {
	SessionID uuid.UUID       `json:"session_id"`
	Source    CheckoutSource  `json:"source"`
	AddressID int64           `json:"address_id"`
	Lines     []CartLine      `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}
