package controllers

import (
	"net/http"

	"github.com/JeanCaicedo/FakeStore/api/responses"
	"github.com/JeanCaicedo/FakeStore/api/validators"
	"github.com/JeanCaicedo/FakeStore/internal/appstate"
	"github.com/JeanCaicedo/FakeStore/internal/catalog"
	"github.com/JeanCaicedo/FakeStore/internal/checkout"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
	"github.com/JeanCaicedo/FakeStore/pkg/types"
)

type cartView struct {
	Items []types.CartItem `json:"items"`
	Total int64            `json:"total"`
	Count int              `json:"count"`
}

type addCartItemPayload struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"gte=0"`
}

type updateCartItemPayload struct {
	Delta int `json:"delta" validate:"required"`
}

// CartGet returns the local cart with its totals.
func CartGet(state *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, cartView{
			Items: state.Snapshot().Cart,
			Total: state.CartTotal(),
			Count: state.CartCount(),
		})
	}
}

// CartAddItem resolves the product against the remote catalog and merges it
// into the cart. A zero quantity means one.
func CartAddItem(client *catalog.Client, state *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload addCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := client.GetProduct(ctx, payload.ProductID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := state.AddToCart(ctx, product, payload.Quantity); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartView{
			Items: state.Snapshot().Cart,
			Total: state.CartTotal(),
			Count: state.CartCount(),
		})
	}
}

// CartUpdateItem applies a quantity delta; hitting zero removes the line.
func CartUpdateItem(state *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := state.UpdateCartQuantity(ctx, productID, payload.Delta); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartView{
			Items: state.Snapshot().Cart,
			Total: state.CartTotal(),
			Count: state.CartCount(),
		})
	}
}

// CartRemoveItem drops the line for the product id.
func CartRemoveItem(state *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := state.RemoveFromCart(ctx, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"removed": true})
	}
}

// CartClear empties the local cart.
func CartClear(state *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := state.ClearCart(ctx); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"cleared": true})
	}
}

// CartCheckout submits the cart as a simulated remote order.
func CartCheckout(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		confirmation, err := svc.Checkout(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, confirmation)
	}
}
