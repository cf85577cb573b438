package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JeanCaicedo/FakeStore/pkg/config"
	"github.com/JeanCaicedo/FakeStore/pkg/types"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLite(context.Background(), config.StorageConfig{
		SQLitePath: filepath.Join(t.TempDir(), "state.db"),
	}, nil)
	require.NoError(t, err)
	return store
}

func sampleState() types.AppState {
	user := types.User{
		ID:       999,
		Username: "jean",
		Email:    "jean@example.com",
		Name:     types.Name{Firstname: "Jean", Lastname: "Caicedo"},
		Address: types.Address{
			City:        "Bogotá",
			Street:      "Calle Falsa 123",
			Zipcode:     "00000",
			Geolocation: types.Geolocation{Lat: "0", Long: "0"},
		},
		Phone: "3001234567",
	}
	product := types.Product{
		ID:       1,
		Title:    "Mochila Fjallraven",
		Price:    439800,
		Category: "Ropa de Hombre",
		Image:    "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
		Rating:   types.Rating{Rate: 3.9, Count: 120},
	}
	return types.AppState{
		User:     &user,
		Cart:     []types.CartItem{{Product: product, Quantity: 2}},
		Wishlist: []types.Product{{ID: 5, Title: "Brazalete de Plata", Price: 2780000}},
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	original := sampleState()
	require.NoError(t, store.Save(ctx, original))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, original, loaded)
}

func TestSQLiteLoadEmpty(t *testing.T) {
	store := newTestStore(t)

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, state.User)
	require.Empty(t, state.Cart)
	require.Empty(t, state.Wishlist)
}

func TestSQLiteSaveNilUserClearsEntry(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleState()))

	loggedOut := sampleState()
	loggedOut.User = nil
	require.NoError(t, store.Save(ctx, loggedOut))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, loaded.User, "user must not survive a logged-out save")
	require.Len(t, loaded.Cart, 1, "cart persists independently of the session")
	require.Len(t, loaded.Wishlist, 1)
}

func TestSQLiteCorruptEntryTreatedAsEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleState()))
	require.NoError(t, upsert(store.conn, KeyCart, "{not json"))

	loaded, err := store.Load(ctx)
	require.NoError(t, err, "corrupt entries must not fail the load")
	require.Empty(t, loaded.Cart)
	require.NotNil(t, loaded.User, "other slices load normally")
}
