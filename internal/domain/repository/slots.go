package repository

// Named slots of the durable store. Each slot has its own lifecycle:
//
//	cart                 written on every cart mutation, emptied after a cart-sourced order
//	wishlist             written on every toggle, never cleared by checkout
//	selected_address_id  written on address selection, kept across checkouts
//	checkout_snapshot    written when advancing to payment, removed when the session ends
//	payment_intent:<id>  written when a gateway intent is created, removed on a terminal outcome
//	access_token         written on login, removed on logout
const (
	SlotCart              = "cart"
	SlotWishlist          = "wishlist"
	SlotSelectedAddressID = "selected_address_id"
	SlotCheckoutSnapshot  = "checkout_snapshot"
	SlotAccessToken       = "access_token"

	slotPaymentIntentPrefix = "payment_intent:"
)

// PaymentIntentSlot is the slot holding the pending payment for a gateway intent.
func PaymentIntentSlot(intentID string) string {
	return slotPaymentIntentPrefix + intentID
}
