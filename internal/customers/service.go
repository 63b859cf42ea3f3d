package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sohublabs/smartstore-backend/pkg/db/models"
	pkgerrors "github.com/sohublabs/smartstore-backend/pkg/errors"
)

// UpsertInput carries one checkout's worth of customer data.
type UpsertInput struct {
	Name       string
	Email      string
	Phone      string
	Address    *string
	SpentUnits int
}

// Service maintains the customer directory.
type Service interface {
	RecordOrder(ctx context.Context, input UpsertInput) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}

type service struct {
	repo CustomerRepository
}

// NewService builds the customer directory service.
func NewService(repo CustomerRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: repo}, nil
}

// RecordOrder upserts the shopper after a checkout: an existing customer
// (matched by email or phone) gets its lifetime totals bumped, a new one is
// inserted with its first order on the books.
func (s *service) RecordOrder(ctx context.Context, input UpsertInput) (*models.Customer, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if email == "" && phone == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer email or phone required")
	}

	existing, err := s.repo.FindByEmailOrPhone(ctx, email, phone)
	switch {
	case err == nil:
		existing.Name = name
		if input.Address != nil {
			existing.Address = input.Address
		}
		existing.TotalOrders++
		existing.TotalSpentUnits += input.SpentUnits

		updated, err := s.repo.Update(ctx, existing)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating customer")
		}
		return updated, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		created, err := s.repo.Create(ctx, &models.Customer{
			Name:            name,
			Email:           email,
			Phone:           phone,
			Address:         input.Address,
			TotalOrders:     1,
			TotalSpentUnits: input.SpentUnits,
		})
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating customer")
		}
		return created, nil

	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up customer")
	}
}

func (s *service) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing customers")
	}
	return customers, nil
}
