package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/sohublabs/smartstore-backend/pkg/db/models"
	"github.com/sohublabs/smartstore-backend/pkg/enums"
	pkgerrors "github.com/sohublabs/smartstore-backend/pkg/errors"
)

// Service exposes storefront reads and back-office catalog management.
type Service interface {
	ListStorefront(ctx context.Context, category string) ([]models.Product, error)
	GetStorefront(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListAll(ctx context.Context, category string) ([]models.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateProductInput holds the validated payload to create a listing.
type CreateProductInput struct {
	Name                  string
	DisplayName           *string
	Category              string
	PriceUnits            int
	Variants              string
	EngravingAvailable    bool
	EngravingPriceUnits   *int
	InstallationAvailable bool
	Image                 *string
	AdditionalImages      []string
	Overview              *string
	TechnicalDetails      *string
	Warranty              *string
	Stock                 int
	IsActive              bool
}

// UpdateProductInput holds optional mutation values for a listing.
type UpdateProductInput struct {
	Name                  *string
	DisplayName           *string
	Category              *string
	PriceUnits            *int
	Variants              *string
	EngravingAvailable    *bool
	EngravingPriceUnits   *int
	InstallationAvailable *bool
	Image                 *string
	AdditionalImages      *[]string
	Overview              *string
	TechnicalDetails      *string
	Warranty              *string
	Stock                 *int
	IsActive              *bool
}

type service struct {
	repo ProductRepository
}

// NewService builds the catalog service.
func NewService(repo ProductRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListStorefront(ctx context.Context, category string) ([]models.Product, error) {
	return s.list(ctx, category, true)
}

func (s *service) ListAll(ctx context.Context, category string) ([]models.Product, error) {
	return s.list(ctx, category, false)
}

func (s *service) list(ctx context.Context, category string, activeOnly bool) ([]models.Product, error) {
	var filter *enums.ProductCategory
	if category != "" {
		parsed, err := enums.ParseProductCategory(category)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown category %q", category))
		}
		filter = &parsed
	}

	products, err := s.repo.List(ctx, filter, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return products, nil
}

func (s *service) GetStorefront(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	return product, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	return product, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name required")
	}
	category, err := enums.ParseProductCategory(input.Category)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown category %q", input.Category))
	}
	if input.PriceUnits < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
	}

	product := &models.Product{
		Name:                  name,
		DisplayName:           input.DisplayName,
		Category:              category,
		PriceUnits:            input.PriceUnits,
		Variants:              input.Variants,
		EngravingAvailable:    input.EngravingAvailable,
		EngravingPriceUnits:   input.EngravingPriceUnits,
		InstallationAvailable: input.InstallationAvailable,
		Image:                 input.Image,
		AdditionalImages:      pq.StringArray(input.AdditionalImages),
		Overview:              input.Overview,
		TechnicalDetails:      input.TechnicalDetails,
		Warranty:              input.Warranty,
		Stock:                 input.Stock,
		IsActive:              input.IsActive,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name required")
		}
		product.Name = name
	}
	if input.Category != nil {
		category, err := enums.ParseProductCategory(*input.Category)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown category %q", *input.Category))
		}
		product.Category = category
	}
	if input.PriceUnits != nil {
		if *input.PriceUnits < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
		}
		product.PriceUnits = *input.PriceUnits
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.DisplayName != nil {
		product.DisplayName = input.DisplayName
	}
	if input.Variants != nil {
		product.Variants = *input.Variants
	}
	if input.EngravingAvailable != nil {
		product.EngravingAvailable = *input.EngravingAvailable
	}
	if input.EngravingPriceUnits != nil {
		product.EngravingPriceUnits = input.EngravingPriceUnits
	}
	if input.InstallationAvailable != nil {
		product.InstallationAvailable = *input.InstallationAvailable
	}
	if input.Image != nil {
		product.Image = input.Image
	}
	if input.AdditionalImages != nil {
		product.AdditionalImages = pq.StringArray(*input.AdditionalImages)
	}
	if input.Overview != nil {
		product.Overview = input.Overview
	}
	if input.TechnicalDetails != nil {
		product.TechnicalDetails = input.TechnicalDetails
	}
	if input.Warranty != nil {
		product.Warranty = input.Warranty
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	return nil
}
