// Package checkout submits the local cart as a remote order. The remote
// accepts and echoes the cart without storing it, so the confirmation is
// simulated; the real effect is clearing the local cart.
package checkout

import (
	"context"
	"time"

	"github.com/JeanCaicedo/FakeStore/internal/appstate"
	"github.com/JeanCaicedo/FakeStore/internal/catalog"
	pkgerrors "github.com/JeanCaicedo/FakeStore/pkg/errors"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
)

// CartCreator is the slice of the catalog client the service needs.
type CartCreator interface {
	CreateCart(ctx context.Context, cart catalog.RemoteCart) (catalog.RemoteCart, error)
}

// Confirmation reports a completed (simulated) checkout.
type Confirmation struct {
	OrderID int   `json:"order_id"`
	Total   int64 `json:"total"`
	Items   int   `json:"items"`
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	Gateway CartCreator
	State   *appstate.Store
	Logger  *logger.Logger
}

type Service struct {
	gateway CartCreator
	state   *appstate.Store
	logg    *logger.Logger
}

// NewService builds a checkout service with the required dependencies.
func NewService(params ServiceParams) (*Service, error) {
	if params.Gateway == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog gateway is required")
	}
	if params.State == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "state store is required")
	}
	return &Service{gateway: params.Gateway, state: params.State, logg: params.Logger}, nil
}

// Checkout requires a signed-in user and a non-empty cart, submits the cart
// to the remote, and clears the local cart on success. A remote failure
// leaves the cart exactly as it was.
func (s *Service) Checkout(ctx context.Context) (Confirmation, error) {
	state := s.state.Snapshot()
	if state.User == nil {
		return Confirmation{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in before checking out")
	}
	if len(state.Cart) == 0 {
		return Confirmation{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	order := catalog.RemoteCart{
		UserID: state.User.ID,
		Date:   time.Now().UTC().Format("2006-01-02"),
	}
	for _, item := range state.Cart {
		order.Products = append(order.Products, catalog.RemoteCartProduct{
			ProductID: item.ID,
			Quantity:  item.Quantity,
		})
	}

	total := s.state.CartTotal()
	count := s.state.CartCount()

	created, err := s.gateway.CreateCart(ctx, order)
	if err != nil {
		return Confirmation{}, err
	}

	if err := s.state.ClearCart(ctx); err != nil {
		return Confirmation{}, err
	}

	if s.logg != nil {
		ctx := s.logg.WithFields(ctx, map[string]any{"order_id": created.ID, "items": count})
		s.logg.Info(ctx, "checkout completed")
	}

	return Confirmation{OrderID: created.ID, Total: total, Items: count}, nil
}
