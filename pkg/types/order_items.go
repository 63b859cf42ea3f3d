package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderItem is one line of an order snapshot.
type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	PriceUnits  int    `json:"price"`
	Category    string `json:"category"`
}

// OrderItems persists the ordered lines as a jsonb array.
type OrderItems []OrderItem

// Value implements driver.Valuer.
func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	return json.Marshal(o)
}

// Scan implements sql.Scanner.
func (o *OrderItems) Scan(value any) error {
	if value == nil {
		*o = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return fmt.Errorf("unsupported order items column type %T", value)
	}
}
