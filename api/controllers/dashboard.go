package controllers

import (
	"net/http"

	"github.com/JeanCaicedo/FakeStore/api/responses"
	"github.com/JeanCaicedo/FakeStore/api/validators"
	"github.com/JeanCaicedo/FakeStore/internal/appstate"
	"github.com/JeanCaicedo/FakeStore/internal/catalog"
	pkgerrors "github.com/JeanCaicedo/FakeStore/pkg/errors"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
)

type productPayload struct {
	Title       string  `json:"title" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image" validate:"omitempty,url"`
	Category    string  `json:"category" validate:"required"`
}

func (p productPayload) toInput() catalog.ProductInput {
	return catalog.ProductInput{
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		Category:    p.Category,
	}
}

func requireUser(state *appstate.Store) error {
	if state.Snapshot().User == nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to manage products")
	}
	return nil
}

// DashboardCreateProduct submits a product write. The remote echoes it back
// with an id but never stores it, so the echo is the only record.
func DashboardCreateProduct(client *catalog.Client, state *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := requireUser(state); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload productPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		echoed, err := client.CreateProduct(ctx, payload.toInput())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, echoed)
	}
}

// DashboardUpdateProduct submits a full-replace write for one product.
func DashboardUpdateProduct(client *catalog.Client, state *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := requireUser(state); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload productPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		echoed, err := client.UpdateProduct(ctx, productID, payload.toInput())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, echoed)
	}
}

// DashboardDeleteProduct submits a delete; the remote acknowledges without
// removing anything.
func DashboardDeleteProduct(client *catalog.Client, state *appstate.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := requireUser(state); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		echoed, err := client.DeleteProduct(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, echoed)
	}
}
