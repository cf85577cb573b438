package auth

import (
	"context"
	"testing"

	"github.com/JeanCaicedo/FakeStore/internal/appstate"
	"github.com/JeanCaicedo/FakeStore/internal/catalog"
	"github.com/JeanCaicedo/FakeStore/internal/storage"
	pkgerrors "github.com/JeanCaicedo/FakeStore/pkg/errors"
	"github.com/JeanCaicedo/FakeStore/pkg/types"
)

type stubGateway struct {
	loginToken string
	loginErr   error
	users      []types.User
	usersErr   error
	cartsErr   error
	demo       string
}

func (s *stubGateway) Login(ctx context.Context, username, password string) (catalog.TokenResponse, error) {
	if s.loginErr != nil {
		return catalog.TokenResponse{}, s.loginErr
	}
	return catalog.TokenResponse{Token: s.loginToken}, nil
}

func (s *stubGateway) Register(ctx context.Context, payload catalog.RegisterPayload) (types.User, error) {
	return types.User{ID: 11, Username: payload.Username}, nil
}

func (s *stubGateway) ListUsers(ctx context.Context) ([]types.User, error) {
	if s.usersErr != nil {
		return nil, s.usersErr
	}
	return s.users, nil
}

func (s *stubGateway) GetCartForUser(ctx context.Context, userID int) ([]catalog.RemoteCart, error) {
	if s.cartsErr != nil {
		return nil, s.cartsErr
	}
	return nil, nil
}

func (s *stubGateway) DemoUsername() string { return s.demo }

func newTestService(t *testing.T, gw Gateway) (*Service, *appstate.Store) {
	t.Helper()
	state, err := appstate.NewStore(appstate.StoreParams{Persistence: storage.NewMemory()})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	svc, err := NewService(ServiceParams{Gateway: gw, State: state})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, state
}

func TestLoginDemoAccountUsesLocalProfile(t *testing.T) {
	svc, state := newTestService(t, &stubGateway{loginToken: "fake_token_jean_123", demo: "jean"})

	session, err := svc.Login(context.Background(), "jean", "jean123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.User.ID != 999 || session.User.Name.Firstname != "Jean" {
		t.Fatalf("expected demo profile, got %+v", session.User)
	}
	if got := state.Snapshot().User; got == nil || got.ID != 999 {
		t.Fatalf("state store should hold the demo user, got %+v", got)
	}
}

func TestLoginResolvesUserByUsername(t *testing.T) {
	gw := &stubGateway{
		loginToken: "abc",
		users: []types.User{
			{ID: 1, Username: "johnd"},
			{ID: 2, Username: "mor_2314"},
		},
	}
	svc, _ := newTestService(t, gw)

	session, err := svc.Login(context.Background(), "mor_2314", "83r5^_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.User.ID != 2 {
		t.Fatalf("expected matched user, got %+v", session.User)
	}
}

func TestLoginFallsBackToFirstUser(t *testing.T) {
	gw := &stubGateway{loginToken: "abc", users: []types.User{{ID: 1, Username: "johnd"}}}
	svc, _ := newTestService(t, gw)

	session, err := svc.Login(context.Background(), "someone_else", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.User.ID != 1 {
		t.Fatalf("expected fallback user, got %+v", session.User)
	}
}

func TestLoginMissingCartIsNotFatal(t *testing.T) {
	gw := &stubGateway{
		loginToken: "abc",
		users:      []types.User{{ID: 1, Username: "johnd"}},
		cartsErr:   pkgerrors.New(pkgerrors.CodeNotFound, "no cart"),
	}
	svc, _ := newTestService(t, gw)

	if _, err := svc.Login(context.Background(), "johnd", "pw"); err != nil {
		t.Fatalf("missing remote cart must not fail login: %v", err)
	}
}

func TestLoginPropagatesAuthError(t *testing.T) {
	gw := &stubGateway{loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "login rejected")}
	svc, state := newTestService(t, gw)

	_, err := svc.Login(context.Background(), "x", "y")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
	if state.Snapshot().User != nil {
		t.Fatal("failed login must not set a user")
	}
}

func TestLogoutClearsUser(t *testing.T) {
	svc, state := newTestService(t, &stubGateway{loginToken: "t", demo: "jean"})

	if _, err := svc.Login(context.Background(), "jean", "jean123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if state.Snapshot().User != nil {
		t.Fatal("expected user cleared")
	}
}
