package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer aggregates lifetime order totals per shopper, matched by email or
// phone at checkout time.
type Customer struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string    `gorm:"column:name;not null"`
	Email           string    `gorm:"column:email;not null;index"`
	Phone           string    `gorm:"column:phone;not null;index"`
	Address         *string   `gorm:"column:address"`
	TotalOrders     int       `gorm:"column:total_orders;not null;default:0"`
	TotalSpentUnits int       `gorm:"column:total_spent_units;not null;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
