package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// CartLine pairs a product snapshot with a quantity.
// Quantity is at least 1 while the line exists.
type CartLine struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns price x quantity for the line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an insertion-ordered sequence of lines, at most one per product id.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return &Cart{Lines: []CartLine{}}
	}

	return &Cart{Lines: CloneLines(c.Lines)}
}

// Add increments the line for product by one, or appends it with quantity 1.
func (c *Cart) Add(product ProductSnapshot) {
	if i := c.indexOf(product.ID); i >= 0 {
		c.Lines[i].Quantity++

		return
	}

	c.Lines = append(c.Lines, CartLine{Product: product, Quantity: 1})
}

// UpdateQuantity applies delta to the line for productID, clamping at zero and
// dropping the line once it reaches zero. Growth saturates at math.MaxInt.
// Unknown ids are ignored.
// It reports whether the cart changed.
func (c *Cart) UpdateQuantity(productID int64, delta int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}

	old := c.Lines[i].Quantity
	var next int
	if delta > 0 && old > math.MaxInt-delta {
		next = math.MaxInt
	} else {
		next = max(old+delta, 0)
	}
	if next == 0 {
		c.removeAt(i)

		return true
	}

	changed := next != old
	c.Lines[i].Quantity = next

	return changed
}

// Remove drops the line for productID. It reports whether a line was removed.
func (c *Cart) Remove(productID int64) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}

	c.removeAt(i)

	return true
}

// Line returns the line for productID.
func (c *Cart) Line(productID int64) (CartLine, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.Lines[i], true
	}

	return CartLine{}, false
}

// Total is the sum of price x quantity, rounded to 2 decimal places.
func (c *Cart) Total() decimal.Decimal {
	return LinesTotal(c.Lines)
}

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}

	return n
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) indexOf(productID int64) int {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return i
		}
	}

	return -1
}

func (c *Cart) removeAt(i int) {
	c.Lines = append(c.Lines[:i:i], c.Lines[i+1:]...)
}

// CloneLines deep-copies a line slice. A nil input yields an empty slice.
func CloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)

	return out
}

// LinesTotal sums price x quantity over lines, rounded to 2 decimal places.
func LinesTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}

	return total.Round(2)
}
