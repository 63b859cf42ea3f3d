package controllers

import (
	"net/http"

	"github.com/sohublabs/smartstore-backend/api/responses"
	customersvc "github.com/sohublabs/smartstore-backend/internal/customers"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
)

// AdminListCustomers lists the customer directory, newest first.
func AdminListCustomers(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, customers)
	}
}
