package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sohublabs/smartstore-backend/api/responses"
	"github.com/sohublabs/smartstore-backend/api/validators"
	"github.com/sohublabs/smartstore-backend/internal/pricing"
	productsvc "github.com/sohublabs/smartstore-backend/internal/products"
	"github.com/sohublabs/smartstore-backend/pkg/enums"
	pkgerrors "github.com/sohublabs/smartstore-backend/pkg/errors"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
)

// ListProducts serves the public catalog, optionally filtered by category.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := validators.SanitizeString(r.URL.Query().Get("category"), 64)
		products, err := svc.ListStorefront(r.Context(), category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// GetProduct serves one active listing.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.GetStorefront(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

type quoteRequest struct {
	Selection pricing.Selection `json:"selection"`
}

type variantQuote struct {
	UnitPriceUnits      int  `json:"unit_price"`
	Quantity            int  `json:"quantity"`
	EngravingUnitUnits  int  `json:"engraving_unit_price"`
	EngravingTotalUnits int  `json:"engraving_total"`
	TotalUnits          int  `json:"total"`
	EngravingAvailable  bool `json:"engraving_available"`
}

// QuoteProduct prices a shopper selection without touching the cart. Film
// listings get an aggregate area quote with an advisory installation charge;
// everything else gets a variant quote.
func QuoteProduct(svc productsvc.Service, defaults pricing.Defaults, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetStorefront(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sel := payload.Selection
		unit := pricing.ResolveUnitPrice(product.PriceUnits, product.Variants, sel.VariantKey, defaults)

		if product.Category == enums.CategoryPDLCFilm {
			quote := pricing.QuoteArea(sel.Panels, unit)
			if quote.TotalArea.IsZero() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "at least one panel with positive dimensions required"))
				return
			}
			responses.WriteSuccess(w, map[string]any{
				"area":   quote,
				"panels": pricing.QuotePanels(sel.Panels, unit),
			})
			return
		}

		quantity := sel.Quantity
		if quantity < 1 {
			quantity = 1
		}
		engravingUnit := 0
		if product.EngravingAvailable {
			engravingUnit = pricing.EngravingUnitPrice(product.EngravingPriceUnits, defaults)
		}
		engravingTotal := pricing.EngravingTotal(sel.EngravingText != "", engravingUnit, quantity)

		responses.WriteSuccess(w, variantQuote{
			UnitPriceUnits:      unit,
			Quantity:            quantity,
			EngravingUnitUnits:  engravingUnit,
			EngravingTotalUnits: engravingTotal,
			TotalUnits:          pricing.LineTotal(unit, quantity, engravingTotal),
			EngravingAvailable:  product.EngravingAvailable,
		})
	}
}

func productIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "productId")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	return id, nil
}
