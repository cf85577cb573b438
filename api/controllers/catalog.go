package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/JeanCaicedo/FakeStore/api/responses"
	"github.com/JeanCaicedo/FakeStore/internal/catalog"
	pkgerrors "github.com/JeanCaicedo/FakeStore/pkg/errors"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
)

// ProductsList returns the localized catalog, optionally limited and sorted.
func ProductsList(client *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit, err := parseLimit(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sort, err := parseSort(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		products, err := client.ListProducts(ctx, limit, sort)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// ProductDetail returns one localized product.
func ProductDetail(client *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := parseProductID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := client.GetProduct(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CategoriesList returns the localized category labels.
func CategoriesList(client *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		categories, err := client.ListCategories(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

// CategoryProducts filters the catalog by remote category name.
func CategoryProducts(client *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		category := strings.TrimSpace(chi.URLParam(r, "category"))
		if category == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "category is required"))
			return
		}
		sort, err := parseSort(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		products, err := client.ListProductsByCategory(ctx, category, sort)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

func parseLimit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a positive integer")
	}
	return value, nil
}

func parseSort(r *http.Request) (catalog.Sort, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("sort"))
	switch raw {
	case "":
		return catalog.SortAsc, nil
	case string(catalog.SortAsc):
		return catalog.SortAsc, nil
	case string(catalog.SortDesc):
		return catalog.SortDesc, nil
	default:
		return "", pkgerrors.New(pkgerrors.CodeValidation, "sort must be asc or desc")
	}
}

func parseProductID(r *http.Request) (int, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "productId"))
	if raw == "" {
		raw = strings.TrimSpace(chi.URLParam(r, "id"))
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "product id must be a positive integer")
	}
	return id, nil
}
