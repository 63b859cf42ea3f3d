package controllers

import (
	"net/http"

	"github.com/sohublabs/smartstore-backend/api/middleware"
	"github.com/sohublabs/smartstore-backend/api/responses"
	"github.com/sohublabs/smartstore-backend/api/validators"
	ordersvc "github.com/sohublabs/smartstore-backend/internal/orders"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
)

type checkoutRequest struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   string `json:"customer_phone" validate:"required"`
	CustomerAddress string `json:"customer_address" validate:"required"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
}

// Checkout snapshots the session cart into a pending order.
func Checkout(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Checkout(r.Context(), ordersvc.CheckoutInput{
			SessionID:       middleware.CartSessionFromContext(r.Context()),
			CustomerName:    payload.CustomerName,
			CustomerEmail:   payload.CustomerEmail,
			CustomerPhone:   payload.CustomerPhone,
			CustomerAddress: payload.CustomerAddress,
			PaymentMethod:   payload.PaymentMethod,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
