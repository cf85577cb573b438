package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JeanCaicedo/FakeStore/internal/appstate"
	"github.com/JeanCaicedo/FakeStore/internal/auth"
	"github.com/JeanCaicedo/FakeStore/internal/catalog"
	"github.com/JeanCaicedo/FakeStore/internal/checkout"
	"github.com/JeanCaicedo/FakeStore/internal/storage"
	"github.com/JeanCaicedo/FakeStore/pkg/config"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
)

// fakeRemote serves just enough of the upstream store API for end-to-end
// route tests.
func fakeRemote(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"title":"Backpack","price":10.5,"description":"A bag","category":"men's clothing","image":"http://img/1.png","rating":{"rate":4.1,"count":3}}]`))
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"title":"Backpack","price":10.5,"description":"A bag","category":"men's clothing","image":"http://img/1.png","rating":{"rate":4.1,"count":3}}`))
	})
	mux.HandleFunc("/products/99", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["electronics","jewelery"]`))
	})
	mux.HandleFunc("/carts/user/999", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/carts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":42}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestHandler(t *testing.T) (http.Handler, *appstate.Store) {
	t.Helper()
	remote := fakeRemote(t)

	logg := logger.New(logger.Options{ServiceName: "test", Output: &bytes.Buffer{}})
	client, err := catalog.NewClient(config.CatalogConfig{BaseURL: remote.URL, DemoBypass: true}, logg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	state, err := appstate.NewStore(appstate.StoreParams{Persistence: storage.NewMemory(), Logger: logg})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := state.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	authSvc, err := auth.NewService(auth.ServiceParams{Gateway: client, State: state, Logger: logg})
	if err != nil {
		t.Fatalf("auth.NewService: %v", err)
	}
	checkoutSvc, err := checkout.NewService(checkout.ServiceParams{Gateway: client, State: state, Logger: logg})
	if err != nil {
		t.Fatalf("checkout.NewService: %v", err)
	}

	return NewRouter(logg, client, state, authSvc, checkoutSvc), state
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return envelope.Data
}

func TestHealthLive(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/health/live", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestProductsListLocalized(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/api/v1/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data []struct {
			Price    int64  `json:"price"`
			Category string `json:"category"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("products = %d", len(envelope.Data))
	}
	if envelope.Data[0].Price != 42000 {
		t.Fatalf("price = %d, want 42000", envelope.Data[0].Price)
	}
	if envelope.Data[0].Category != "Ropa de Hombre" {
		t.Fatalf("category = %q", envelope.Data[0].Category)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/api/v1/products/99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDemoLoginThenCheckoutFlow(t *testing.T) {
	h, state := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", `{"username":"jean","password":"jean123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body.String())
	}
	if state.Snapshot().User == nil {
		t.Fatal("expected signed-in user after login")
	}

	rec = doJSON(t, h, http.MethodPost, "/api/v1/cart/items", `{"product_id":1,"quantity":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("cart add status = %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	if data["total"].(float64) != 84000 {
		t.Fatalf("total = %v, want 84000", data["total"])
	}

	rec = doJSON(t, h, http.MethodPost, "/api/v1/cart/checkout", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("checkout status = %d: %s", rec.Code, rec.Body.String())
	}
	if len(state.Snapshot().Cart) != 0 {
		t.Fatal("expected cart cleared after checkout")
	}
}

func TestCheckoutRequiresUser(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/api/v1/cart/checkout", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestWishlistRoundTrip(t *testing.T) {
	h, state := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPut, "/api/v1/wishlist/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d: %s", rec.Code, rec.Body.String())
	}
	if !state.IsInWishlist(1) {
		t.Fatal("expected product in wishlist")
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/v1/wishlist/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("remove status = %d: %s", rec.Code, rec.Body.String())
	}
	if state.IsInWishlist(1) {
		t.Fatal("expected product removed from wishlist")
	}
}

func TestAdminRequiresSignIn(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/api/v1/admin/products", `{"title":"x","price":1,"description":"d","category":"c"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
}
