package pricing

import (
	"encoding/json"
	"strings"

	"github.com/sohublabs/smartstore-backend/pkg/config"
)

// Variant is one sellable option parsed from a product's raw variants column.
type Variant struct {
	Name          string `json:"name"`
	Color         string `json:"color"`
	PriceUnits    int    `json:"price"`
	DiscountUnits int    `json:"discount_price"`
	Stock         int    `json:"stock"`
	Image         string `json:"image"`
}

// Defaults carries the configurable pricing fallbacks.
type Defaults struct {
	FallbackPriceUnits  int
	EngravingPriceUnits int
}

// DefaultsFromConfig maps the loaded pricing config into engine defaults.
func DefaultsFromConfig(cfg config.PricingConfig) Defaults {
	return Defaults{
		FallbackPriceUnits:  cfg.FallbackPriceUnits,
		EngravingPriceUnits: cfg.DefaultEngravingUnits,
	}
}

// ParseVariants decodes the raw variants JSON. Malformed or empty input yields
// an empty slice; callers never see a parse error.
func ParseVariants(raw string) []Variant {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var variants []Variant
	if err := json.Unmarshal([]byte(raw), &variants); err != nil {
		return nil
	}
	return variants
}

// SelectVariant matches a variant by name or color. An empty key or a miss
// falls back to the first variant. Returns nil when there are no variants.
func SelectVariant(variants []Variant, key string) *Variant {
	if len(variants) == 0 {
		return nil
	}
	if key != "" {
		for i := range variants {
			if variants[i].Name == key || variants[i].Color == key {
				return &variants[i]
			}
		}
	}
	return &variants[0]
}

// EffectivePrice returns the discount price when it undercuts the list price,
// otherwise the list price.
func EffectivePrice(v Variant) int {
	if v.DiscountUnits > 0 && v.DiscountUnits < v.PriceUnits {
		return v.DiscountUnits
	}
	return v.PriceUnits
}

// ResolveUnitPrice computes the unit price for a product given its base price,
// raw variants and the shopper's variant key. Resolution never fails: a zero
// or missing price at every level lands on the configured fallback.
func ResolveUnitPrice(basePriceUnits int, rawVariants string, key string, d Defaults) int {
	if v := SelectVariant(ParseVariants(rawVariants), key); v != nil {
		if price := EffectivePrice(*v); price > 0 {
			return price
		}
	}
	if basePriceUnits > 0 {
		return basePriceUnits
	}
	return d.FallbackPriceUnits
}
