package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JeanCaicedo/FakeStore/api/controllers"
	"github.com/JeanCaicedo/FakeStore/api/middleware"
	"github.com/JeanCaicedo/FakeStore/internal/appstate"
	"github.com/JeanCaicedo/FakeStore/internal/auth"
	"github.com/JeanCaicedo/FakeStore/internal/catalog"
	checkoutsvc "github.com/JeanCaicedo/FakeStore/internal/checkout"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
)

func NewRouter(
	logg *logger.Logger,
	client *catalog.Client,
	state *appstate.Store,
	authService *auth.Service,
	checkoutService *checkoutsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(client, logg))
			r.Get("/{productId}", controllers.ProductDetail(client, logg))
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.CategoriesList(client, logg))
			r.Get("/{category}/products", controllers.CategoryProducts(client, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(authService, logg))
			r.Post("/register", controllers.AuthRegister(authService, logg))
			r.Post("/logout", controllers.AuthLogout(authService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(state, logg))
			r.Delete("/", controllers.CartClear(state, logg))
			r.Post("/items", controllers.CartAddItem(client, state, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(state, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(state, logg))
			r.Post("/checkout", controllers.CartCheckout(checkoutService, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistGet(state, logg))
			r.Put("/{productId}", controllers.WishlistAddItem(client, state, logg))
			r.Delete("/{productId}", controllers.WishlistRemoveItem(state, logg))
		})

		r.Route("/admin/products", func(r chi.Router) {
			r.Post("/", controllers.DashboardCreateProduct(client, state, logg))
			r.Put("/{productId}", controllers.DashboardUpdateProduct(client, state, logg))
			r.Delete("/{productId}", controllers.DashboardDeleteProduct(client, state, logg))
		})
	})

	return r
}
