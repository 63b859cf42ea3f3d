package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/sohublabs/smartstore-backend/pkg/enums"
	"github.com/sohublabs/smartstore-backend/pkg/types"
)

// Order snapshots a checkout: customer fields are denormalized so the record
// survives later customer edits, and items carry the prices paid.
type Order struct {
	ID               uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber      string              `gorm:"column:order_number;not null;uniqueIndex"`
	CustomerName     string              `gorm:"column:customer_name;not null"`
	CustomerEmail    string              `gorm:"column:customer_email;not null"`
	CustomerPhone    string              `gorm:"column:customer_phone;not null"`
	CustomerAddress  string              `gorm:"column:customer_address;not null"`
	Items            types.OrderItems    `gorm:"column:items;type:jsonb;not null"`
	TotalAmountUnits int                 `gorm:"column:total_amount_units;not null"`
	PaymentMethod    enums.PaymentMethod `gorm:"column:payment_method;not null"`
	Status           enums.OrderStatus   `gorm:"column:status;not null"`
	CreatedAt        time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
