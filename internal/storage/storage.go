// Package storage persists the storefront's device-local state slices. Each
// slice lives under its own fixed key so the file stays readable next to the
// browser's localStorage layout; a missing key means empty, never an error.
package storage

import (
	"context"

	"github.com/JeanCaicedo/FakeStore/pkg/types"
)

const (
	KeyUser     = "fakeStore_user"
	KeyCart     = "fakeStore_cart"
	KeyWishlist = "fakeStore_wishlist"
)

// Store loads and saves the persisted application state. Save must be
// all-or-nothing: a failed save leaves the previously stored state intact.
type Store interface {
	Load(ctx context.Context) (types.AppState, error)
	Save(ctx context.Context, state types.AppState) error
}
