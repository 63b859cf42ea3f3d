package customers

import (
	"context"

	"gorm.io/gorm"

	"github.com/sohublabs/smartstore-backend/pkg/db/models"
)

// CustomerRepository defines the persistence surface the directory service
// needs.
type CustomerRepository interface {
	WithTx(tx *gorm.DB) CustomerRepository
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}

// Repository is the GORM-backed customer store.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) CustomerRepository {
	return &Repository{db: tx}
}

// FindByEmailOrPhone matches an existing shopper by either contact channel.
func (r *Repository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("email = ? OR phone = ?", email, phone).
		Order("created_at ASC").
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *Repository) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *Repository) Update(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// List returns customers newest-first.
func (r *Repository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
