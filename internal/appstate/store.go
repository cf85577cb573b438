// Package appstate owns the single in-memory application state: signed-in
// user, cart, and wishlist. Every mutation funnels through one path that
// persists the new state first and only then commits and notifies, so a
// failed save leaves both memory and storage untouched.
package appstate

import (
	"context"
	"sync"

	"github.com/JeanCaicedo/FakeStore/internal/storage"
	pkgerrors "github.com/JeanCaicedo/FakeStore/pkg/errors"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
	"github.com/JeanCaicedo/FakeStore/pkg/types"
)

// Listener receives a defensive snapshot of the state after every change.
// Listeners run synchronously, in subscription order, on the mutating call.
type Listener func(types.AppState)

type subscriber struct {
	id uint64
	fn Listener
}

// StoreParams groups dependencies for the state store.
type StoreParams struct {
	Persistence storage.Store
	Logger      *logger.Logger
}

// Store is the process-wide state container. Construct one per process and
// pass it to consumers; there is no ambient global.
type Store struct {
	mu      sync.Mutex
	state   types.AppState
	subs    []subscriber
	nextSub uint64

	persist storage.Store
	logg    *logger.Logger
}

// NewStore builds a state store with the required dependencies.
func NewStore(params StoreParams) (*Store, error) {
	if params.Persistence == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "persistence store is required")
	}
	return &Store{
		state:   types.AppState{Cart: []types.CartItem{}, Wishlist: []types.Product{}},
		persist: params.Persistence,
		logg:    params.Logger,
	}, nil
}

// Initialize hydrates state from persistence and notifies subscribers.
// Safe to call repeatedly; each call re-hydrates rather than appending.
func (s *Store) Initialize(ctx context.Context) error {
	loaded, err := s.persist.Load(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeSerialization, err, "hydrate state")
	}

	s.mu.Lock()
	s.state = loaded.Clone()
	subs, snapshot := s.subscribersAndSnapshotLocked()
	s.mu.Unlock()

	notify(subs, snapshot)
	return nil
}

// Subscribe registers a listener, invokes it immediately with the current
// state, and returns a handle that removes it again.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	snapshot := s.state.Clone()
	s.mu.Unlock()

	fn(snapshot)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() types.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SetUser replaces the signed-in user.
func (s *Store) SetUser(ctx context.Context, user types.User) error {
	return s.mutate(ctx, func(st *types.AppState) bool {
		u := user
		st.User = &u
		return true
	})
}

// Logout clears the user; cart and wishlist survive the session.
func (s *Store) Logout(ctx context.Context) error {
	return s.mutate(ctx, func(st *types.AppState) bool {
		st.User = nil
		return true
	})
}

// AddToCart merges into an existing line for the same product id or appends
// a new one, preserving insertion order. Quantities below 1 count as 1.
func (s *Store) AddToCart(ctx context.Context, product types.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	return s.mutate(ctx, func(st *types.AppState) bool {
		for i := range st.Cart {
			if st.Cart[i].ID == product.ID {
				st.Cart[i].Quantity += quantity
				return true
			}
		}
		st.Cart = append(st.Cart, types.CartItem{Product: product, Quantity: quantity})
		return true
	})
}

// RemoveFromCart drops the line for the given product id.
func (s *Store) RemoveFromCart(ctx context.Context, productID int) error {
	return s.mutate(ctx, func(st *types.AppState) bool {
		st.Cart = removeCartItem(st.Cart, productID)
		return true
	})
}

// UpdateCartQuantity applies a delta to the line's quantity; at or below
// zero the line is removed outright. Unknown ids are a no-op.
func (s *Store) UpdateCartQuantity(ctx context.Context, productID, delta int) error {
	return s.mutate(ctx, func(st *types.AppState) bool {
		for i := range st.Cart {
			if st.Cart[i].ID == productID {
				st.Cart[i].Quantity += delta
				if st.Cart[i].Quantity <= 0 {
					st.Cart = removeCartItem(st.Cart, productID)
				}
				return true
			}
		}
		return false
	})
}

// ClearCart empties the cart.
func (s *Store) ClearCart(ctx context.Context) error {
	return s.mutate(ctx, func(st *types.AppState) bool {
		st.Cart = []types.CartItem{}
		return true
	})
}

// CartTotal sums price times quantity over the cart.
func (s *Store) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, item := range s.state.Cart {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// CartCount sums the quantities in the cart.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.state.Cart {
		count += item.Quantity
	}
	return count
}

// AddToWishlist appends the product unless it is already present; repeat
// calls neither duplicate nor re-notify.
func (s *Store) AddToWishlist(ctx context.Context, product types.Product) error {
	return s.mutate(ctx, func(st *types.AppState) bool {
		for _, item := range st.Wishlist {
			if item.ID == product.ID {
				return false
			}
		}
		st.Wishlist = append(st.Wishlist, product)
		return true
	})
}

// RemoveFromWishlist drops the entry if present. It persists and notifies
// either way; removal always "succeeds" from the caller's perspective.
func (s *Store) RemoveFromWishlist(ctx context.Context, productID int) error {
	return s.mutate(ctx, func(st *types.AppState) bool {
		kept := st.Wishlist[:0:0]
		for _, item := range st.Wishlist {
			if item.ID != productID {
				kept = append(kept, item)
			}
		}
		if kept == nil {
			kept = []types.Product{}
		}
		st.Wishlist = kept
		return true
	})
}

// IsInWishlist reports whether the product id is wishlisted.
func (s *Store) IsInWishlist(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.state.Wishlist {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// mutate clones the state, applies fn, persists the result, and only on a
// successful save swaps it in and notifies. fn returning false means
// "nothing changed": no save, no notification.
func (s *Store) mutate(ctx context.Context, fn func(st *types.AppState) bool) error {
	s.mu.Lock()
	next := s.state.Clone()
	if !fn(&next) {
		s.mu.Unlock()
		return nil
	}

	if err := s.persist.Save(ctx, next); err != nil {
		s.mu.Unlock()
		if s.logg != nil {
			s.logg.Error(ctx, "state save failed, mutation rolled back", err)
		}
		return pkgerrors.Wrap(pkgerrors.CodeSerialization, err, "persist state")
	}

	s.state = next
	subs, snapshot := s.subscribersAndSnapshotLocked()
	s.mu.Unlock()

	notify(subs, snapshot)
	return nil
}

func (s *Store) subscribersAndSnapshotLocked() ([]subscriber, types.AppState) {
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	return subs, s.state.Clone()
}

func notify(subs []subscriber, snapshot types.AppState) {
	for _, sub := range subs {
		sub.fn(snapshot.Clone())
	}
}

func removeCartItem(cart []types.CartItem, productID int) []types.CartItem {
	kept := cart[:0:0]
	for _, item := range cart {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	if kept == nil {
		kept = []types.CartItem{}
	}
	return kept
}
