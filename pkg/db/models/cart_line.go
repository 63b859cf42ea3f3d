package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/sohublabs/smartstore-backend/pkg/types"
)

// CartLine is one priced entry in a session's bag. Lines are immutable once
// written; reconfiguring a product adds a new line rather than editing one.
type CartLine struct {
	LineID          string         `gorm:"column:line_id;primaryKey"`
	SessionID       string         `gorm:"column:session_id;not null;index"`
	ProductID       uuid.UUID      `gorm:"column:product_id;type:uuid;not null"`
	Name            string         `gorm:"column:name;not null"`
	Category        string         `gorm:"column:category;not null"`
	UnitPriceUnits  int            `gorm:"column:unit_price_units;not null"`
	Quantity        int            `gorm:"column:quantity;not null"`
	TotalPriceUnits int            `gorm:"column:total_price_units;not null"`
	Image           *string        `gorm:"column:image"`
	Metadata        types.Metadata `gorm:"column:metadata;type:jsonb"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
}
