package controllers

import (
	"net/http"

	"github.com/sohublabs/smartstore-backend/api/responses"
	"github.com/sohublabs/smartstore-backend/api/validators"
	adminsvc "github.com/sohublabs/smartstore-backend/internal/admins"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
)

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
	Admin any    `json:"admin"`
}

// AdminLogin exchanges credentials for a bearer token.
func AdminLogin(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adminLoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, adminLoginResponse{Token: result.Token, Admin: result.Admin})
	}
}
