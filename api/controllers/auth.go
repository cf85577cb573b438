package controllers

import (
	"net/http"

	"github.com/JeanCaicedo/FakeStore/api/responses"
	"github.com/JeanCaicedo/FakeStore/api/validators"
	"github.com/JeanCaicedo/FakeStore/internal/auth"
	"github.com/JeanCaicedo/FakeStore/internal/catalog"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
)

type loginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerPayload struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname"`
	Street    string `json:"street"`
	Phone     string `json:"phone"`
}

// AuthLogin signs the user in and returns the session.
func AuthLogin(svc *auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload loginPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		session, err := svc.Login(ctx, payload.Username, payload.Password)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

// AuthRegister submits a new account to the remote. The echo is simulated;
// the remote keeps nothing, same as the upstream demo API.
func AuthRegister(svc *auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload registerPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		user, err := svc.Register(ctx, catalog.RegisterPayload{
			Email:    payload.Email,
			Username: payload.Username,
			Password: payload.Password,
			Name: catalog.RegisterName{
				Firstname: payload.Firstname,
				Lastname:  payload.Lastname,
			},
			Address: catalog.RegisterAddress{
				City:        "Bogotá",
				Street:      payload.Street,
				Zipcode:     "00000",
				Geolocation: catalog.RegisterGeo{Lat: "0", Long: "0"},
			},
			Phone: payload.Phone,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

// AuthLogout clears the local session.
func AuthLogout(svc *auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := svc.Logout(ctx); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"logged_out": true})
	}
}
