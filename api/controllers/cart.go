package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sohublabs/smartstore-backend/api/middleware"
	"github.com/sohublabs/smartstore-backend/api/responses"
	"github.com/sohublabs/smartstore-backend/api/validators"
	cartsvc "github.com/sohublabs/smartstore-backend/internal/cart"
	"github.com/sohublabs/smartstore-backend/internal/pricing"
	pkgerrors "github.com/sohublabs/smartstore-backend/pkg/errors"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
)

type addToBagRequest struct {
	ProductID string            `json:"product_id" validate:"required"`
	Selection pricing.Selection `json:"selection"`
}

// ViewCart returns the session's priced lines and running total.
func ViewCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.GetCart(r.Context(), middleware.CartSessionFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// AddToBag prices the shopper selection and appends the resulting lines.
func AddToBag(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addToBagRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		lines, err := svc.AddToBag(r.Context(), middleware.CartSessionFromContext(r.Context()), cartsvc.AddToBagInput{
			ProductID: productID,
			Selection: payload.Selection,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, lines)
	}
}

// RemoveCartLine drops a single line from the session cart.
func RemoveCartLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineID := chi.URLParam(r, "lineId")
		if lineID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id required"))
			return
		}
		if err := svc.RemoveLine(r.Context(), middleware.CartSessionFromContext(r.Context()), lineID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "removed"})
	}
}

// ClearCart empties the session cart.
func ClearCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearCart(r.Context(), middleware.CartSessionFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
