package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sohublabs/smartstore-backend/pkg/enums"
)

// Product represents one catalog listing. Variants are stored as the raw JSON
// the admin form submits; the pricing engine parses them fail-soft.
type Product struct {
	ID                    uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name                  string                `gorm:"column:name;not null"`
	DisplayName           *string               `gorm:"column:display_name"`
	Category              enums.ProductCategory `gorm:"column:category;not null"`
	PriceUnits            int                   `gorm:"column:price_units;not null;default:0"`
	Variants              string                `gorm:"column:variants;type:text"`
	EngravingAvailable    bool                  `gorm:"column:engraving_available;not null;default:false"`
	EngravingPriceUnits   *int                  `gorm:"column:engraving_price_units"`
	InstallationAvailable bool                  `gorm:"column:installation_available;not null;default:false"`
	Image                 *string               `gorm:"column:image"`
	AdditionalImages      pq.StringArray        `gorm:"column:additional_images;type:text[]"`
	Overview              *string               `gorm:"column:overview"`
	TechnicalDetails      *string               `gorm:"column:technical_details"`
	Warranty              *string               `gorm:"column:warranty"`
	Stock                 int                   `gorm:"column:stock;not null;default:0"`
	IsActive              bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt             time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
