package controllers

import (
	"net/http"

	"github.com/sohublabs/smartstore-backend/api/responses"
	"github.com/sohublabs/smartstore-backend/api/validators"
	productsvc "github.com/sohublabs/smartstore-backend/internal/products"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
)

type createProductRequest struct {
	Name                  string   `json:"name" validate:"required"`
	DisplayName           *string  `json:"display_name,omitempty"`
	Category              string   `json:"category" validate:"required"`
	PriceUnits            int      `json:"price" validate:"min=0"`
	Variants              string   `json:"variants"`
	EngravingAvailable    bool     `json:"engraving_available"`
	EngravingPriceUnits   *int     `json:"engraving_price,omitempty" validate:"omitempty,min=0"`
	InstallationAvailable bool     `json:"installation_available"`
	Image                 *string  `json:"image,omitempty"`
	AdditionalImages      []string `json:"additional_images,omitempty"`
	Overview              *string  `json:"overview,omitempty"`
	TechnicalDetails      *string  `json:"technical_details,omitempty"`
	Warranty              *string  `json:"warranty,omitempty"`
	Stock                 int      `json:"stock" validate:"min=0"`
	IsActive              bool     `json:"is_active"`
}

type updateProductRequest struct {
	Name                  *string   `json:"name,omitempty"`
	DisplayName           *string   `json:"display_name,omitempty"`
	Category              *string   `json:"category,omitempty"`
	PriceUnits            *int      `json:"price,omitempty" validate:"omitempty,min=0"`
	Variants              *string   `json:"variants,omitempty"`
	EngravingAvailable    *bool     `json:"engraving_available,omitempty"`
	EngravingPriceUnits   *int      `json:"engraving_price,omitempty" validate:"omitempty,min=0"`
	InstallationAvailable *bool     `json:"installation_available,omitempty"`
	Image                 *string   `json:"image,omitempty"`
	AdditionalImages      *[]string `json:"additional_images,omitempty"`
	Overview              *string   `json:"overview,omitempty"`
	TechnicalDetails      *string   `json:"technical_details,omitempty"`
	Warranty              *string   `json:"warranty,omitempty"`
	Stock                 *int      `json:"stock,omitempty" validate:"omitempty,min=0"`
	IsActive              *bool     `json:"is_active,omitempty"`
}

// AdminListProducts lists the whole catalog, inactive listings included.
func AdminListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := validators.SanitizeString(r.URL.Query().Get("category"), 64)
		products, err := svc.ListAll(r.Context(), category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

func AdminGetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func AdminCreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), productsvc.CreateProductInput{
			Name:                  payload.Name,
			DisplayName:           payload.DisplayName,
			Category:              payload.Category,
			PriceUnits:            payload.PriceUnits,
			Variants:              payload.Variants,
			EngravingAvailable:    payload.EngravingAvailable,
			EngravingPriceUnits:   payload.EngravingPriceUnits,
			InstallationAvailable: payload.InstallationAvailable,
			Image:                 payload.Image,
			AdditionalImages:      payload.AdditionalImages,
			Overview:              payload.Overview,
			TechnicalDetails:      payload.TechnicalDetails,
			Warranty:              payload.Warranty,
			Stock:                 payload.Stock,
			IsActive:              payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

func AdminUpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, productsvc.UpdateProductInput{
			Name:                  payload.Name,
			DisplayName:           payload.DisplayName,
			Category:              payload.Category,
			PriceUnits:            payload.PriceUnits,
			Variants:              payload.Variants,
			EngravingAvailable:    payload.EngravingAvailable,
			EngravingPriceUnits:   payload.EngravingPriceUnits,
			InstallationAvailable: payload.InstallationAvailable,
			Image:                 payload.Image,
			AdditionalImages:      payload.AdditionalImages,
			Overview:              payload.Overview,
			TechnicalDetails:      payload.TechnicalDetails,
			Warranty:              payload.Warranty,
			Stock:                 payload.Stock,
			IsActive:              payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func AdminDeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
