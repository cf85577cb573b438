// Package auth orchestrates sign-in against the remote store API and the
// local state store. The remote's login reply carries only a token, so the
// service resolves a user profile separately: the demo account gets a fixed
// local profile, everyone else is looked up in the remote user list.
package auth

import (
	"context"

	"github.com/JeanCaicedo/FakeStore/internal/appstate"
	"github.com/JeanCaicedo/FakeStore/internal/catalog"
	pkgerrors "github.com/JeanCaicedo/FakeStore/pkg/errors"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
	"github.com/JeanCaicedo/FakeStore/pkg/types"
)

// Session is the outcome of a successful login.
type Session struct {
	Token string     `json:"token"`
	User  types.User `json:"user"`
}

// Gateway is the slice of the catalog client the service needs.
type Gateway interface {
	Login(ctx context.Context, username, password string) (catalog.TokenResponse, error)
	Register(ctx context.Context, payload catalog.RegisterPayload) (types.User, error)
	ListUsers(ctx context.Context) ([]types.User, error)
	GetCartForUser(ctx context.Context, userID int) ([]catalog.RemoteCart, error)
	DemoUsername() string
}

// ServiceParams groups dependencies for the auth service.
type ServiceParams struct {
	Gateway Gateway
	State   *appstate.Store
	Logger  *logger.Logger
}

type Service struct {
	gateway Gateway
	state   *appstate.Store
	logg    *logger.Logger
}

// NewService builds an auth service with the required dependencies.
func NewService(params ServiceParams) (*Service, error) {
	if params.Gateway == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog gateway is required")
	}
	if params.State == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "state store is required")
	}
	return &Service{gateway: params.Gateway, state: params.State, logg: params.Logger}, nil
}

// Login authenticates, resolves the user profile, records it in the state
// store, and returns the session. The prior-cart lookup is best effort; a
// missing remote cart never fails a login.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	token, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		return Session{}, err
	}

	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return Session{}, err
	}

	if err := s.state.SetUser(ctx, user); err != nil {
		return Session{}, err
	}

	if carts, cartErr := s.gateway.GetCartForUser(ctx, user.ID); cartErr != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithUserID(ctx, user.ID), "no prior remote cart for user")
		}
	} else if s.logg != nil {
		ctx := s.logg.WithFields(ctx, map[string]any{"user_id": user.ID, "remote_carts": len(carts)})
		s.logg.Info(ctx, "prior remote cart loaded")
	}

	return Session{Token: token.Token, User: user}, nil
}

// Register passes the payload through to the remote, which echoes the new
// user without storing it. The caller signs in separately.
func (s *Service) Register(ctx context.Context, payload catalog.RegisterPayload) (types.User, error) {
	return s.gateway.Register(ctx, payload)
}

// Logout clears the signed-in user from the state store.
func (s *Service) Logout(ctx context.Context) error {
	return s.state.Logout(ctx)
}

func (s *Service) resolveUser(ctx context.Context, username string) (types.User, error) {
	if demo := s.gateway.DemoUsername(); demo != "" && username == demo {
		return demoUser(), nil
	}

	users, err := s.gateway.ListUsers(ctx)
	if err != nil {
		return types.User{}, err
	}
	if len(users) == 0 {
		return types.User{}, pkgerrors.New(pkgerrors.CodeNotFound, "no remote users available")
	}
	for _, user := range users {
		if user.Username == username {
			return user, nil
		}
	}
	// The remote accepts credentials it has no profile for; fall back to
	// the first fixture profile so the session still gets a user.
	return users[0], nil
}

// demoUser is the fixed profile behind the hardcoded test account.
func demoUser() types.User {
	return types.User{
		ID:       999,
		Username: "jean",
		Email:    "jean@example.com",
		Name:     types.Name{Firstname: "Jean", Lastname: "Caicedo"},
		Address:  types.Address{City: "Bogotá", Street: "Calle Falsa 123"},
		Phone:    "3001234567",
	}
}
