package controllers

import (
	"net/http"

	"github.com/JeanCaicedo/FakeStore/api/responses"
	"github.com/JeanCaicedo/FakeStore/internal/appstate"
	"github.com/JeanCaicedo/FakeStore/internal/catalog"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
)

// WishlistGet returns the wishlist.
func WishlistGet(state *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, state.Snapshot().Wishlist)
	}
}

// WishlistAddItem resolves the product and adds it once; repeat calls are
// no-ops.
func WishlistAddItem(client *catalog.Client, state *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := client.GetProduct(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := state.AddToWishlist(ctx, product); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"added": true})
	}
}

// WishlistRemoveItem drops the entry regardless of prior state.
func WishlistRemoveItem(state *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := state.RemoveFromWishlist(ctx, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"removed": true})
	}
}
