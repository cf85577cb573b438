package controllers

import (
	"net/http"

	"github.com/JeanCaicedo/FakeStore/api/responses"
)

// HealthLive reports process liveness.
func HealthLive(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, map[string]string{"status": "ok"})
}
