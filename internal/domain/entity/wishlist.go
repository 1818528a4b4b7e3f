package entity

// Wishlist is an insertion-ordered set of products keyed by id.
type Wishlist struct {
	Items []ProductSnapshot `json:"items"`
}

// Clone returns a copy of the wishlist.
func (w *Wishlist) Clone() *Wishlist {
	if w == nil {
		return &Wishlist{Items: []ProductSnapshot{}}
	}

	items := make([]ProductSnapshot, len(w.Items))
	copy(items, w.Items)

	return &Wishlist{Items: items}
}

// Toggle removes product if present, otherwise adds it.
// It reports whether the product is wishlisted afterwards.
func (w *Wishlist) Toggle(product ProductSnapshot) bool {
	for i := range w.Items {
		if w.Items[i].ID == product.ID {
			w.Items = append(w.Items[:i:i], w.Items[i+1:]...)

			return false
		}
	}

	w.Items = append(w.Items, product)

	return true
}

// Contains reports membership by product id.
func (w *Wishlist) Contains(productID int64) bool {
	_, ok := w.Get(productID)

	return ok
}

// Get returns the wishlisted snapshot for productID.
func (w *Wishlist) Get(productID int64) (ProductSnapshot, bool) {
	for _, item := range w.Items {
		if item.ID == productID {
			return item, true
		}
	}

	return ProductSnapshot{}, false
}
