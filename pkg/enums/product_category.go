package enums

import "fmt"

// ProductCategory selects the pricing strategy a listing is quoted with.
type ProductCategory string

const (
	CategorySmartSwitch       ProductCategory = "smart_switch"
	CategoryPDLCFilm          ProductCategory = "pdlc_film"
	CategorySecuritySystem    ProductCategory = "security_system"
	CategorySecurityAccessory ProductCategory = "security_accessory"
	CategoryCurtain           ProductCategory = "curtain"
	CategorySensor            ProductCategory = "sensor"
	CategoryCamera            ProductCategory = "camera"
	CategoryLighting          ProductCategory = "lighting"
	CategoryGateway           ProductCategory = "gateway"
)

var validProductCategories = []ProductCategory{
	CategorySmartSwitch,
	CategoryPDLCFilm,
	CategorySecuritySystem,
	CategorySecurityAccessory,
	CategoryCurtain,
	CategorySensor,
	CategoryCamera,
	CategoryLighting,
	CategoryGateway,
}

// String implements fmt.Stringer.
func (p ProductCategory) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductCategory.
func (p ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
