package types

// AppState aggregates everything the storefront keeps on the device: the
// signed-in user (nil when logged out), the cart, and the wishlist. There is
// exactly one instance per process, owned by the state store.
type AppState struct {
	User     *User      `json:"user,omitempty"`
	Cart     []CartItem `json:"cart"`
	Wishlist []Product  `json:"wishlist"`
}

// Clone returns a deep copy so snapshots handed to subscribers cannot alias
// the store's own slices.
func (s AppState) Clone() AppState {
	out := AppState{}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	if s.Cart != nil {
		out.Cart = make([]CartItem, len(s.Cart))
		copy(out.Cart, s.Cart)
	}
	if s.Wishlist != nil {
		out.Wishlist = make([]Product, len(s.Wishlist))
		copy(out.Wishlist, s.Wishlist)
	}
	return out
}
