package pricing

import (
	"fmt"

	"github.com/sohublabs/smartstore-backend/pkg/enums"
)

// ProductInfo is the slice of a catalog product the pricing engine needs.
type ProductInfo struct {
	Name                string
	Category            enums.ProductCategory
	PriceUnits          int
	RawVariants         string
	EngravingAvailable  bool
	EngravingPriceUnits *int
	Image               *string
}

// AccessoryPick is one add-on chosen alongside a bundle's main product.
type AccessoryPick struct {
	Name      string  `json:"name"`
	UnitUnits int     `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     *string `json:"image,omitempty"`
}

// Selection captures everything the shopper configured before add-to-bag.
type Selection struct {
	VariantKey          string          `json:"variant"`
	Quantity            int             `json:"quantity"`
	EngravingText       string          `json:"engraving_text"`
	Panels              []Panel         `json:"panels"`
	Accessories         []AccessoryPick `json:"accessories"`
	IncludeInstallation bool            `json:"include_installation"`
}

// LineDraft is a priced cart entry before identity is assigned. The composer
// turns drafts into persisted lines.
type LineDraft struct {
	Name        string
	Category    string
	UnitUnits   int
	Quantity    int
	TotalUnits  int
	Fingerprint string
	Image       *string
	Metadata    map[string]any
}

// InstallationServiceCategory labels the zero-price service line emitted when
// the shopper opts into installation.
const InstallationServiceCategory = "Installation Service"

// Strategy prices a configured product into cart line drafts. Strategies
// never fail: unresolvable inputs degrade to fallbacks or empty output.
type Strategy interface {
	Price(p ProductInfo, sel Selection, d Defaults) []LineDraft
}

// ForCategory selects the strategy matching the product's category.
func ForCategory(category enums.ProductCategory) Strategy {
	switch category {
	case enums.CategoryPDLCFilm:
		return AreaBasedPricing{}
	case enums.CategorySecuritySystem:
		return AccessoryBundlePricing{}
	default:
		return SimpleVariantPricing{}
	}
}

// SimpleVariantPricing covers switches, gateways, sensors: one line priced by
// variant resolution, optional engraving surcharge, optional service line.
type SimpleVariantPricing struct{}

func (SimpleVariantPricing) Price(p ProductInfo, sel Selection, d Defaults) []LineDraft {
	qty := sel.Quantity
	if qty < 1 {
		qty = 1
	}

	unit := ResolveUnitPrice(p.PriceUnits, p.RawVariants, sel.VariantKey, d)

	engraved := p.EngravingAvailable && sel.EngravingText != ""
	engravingTotal := EngravingTotal(engraved, EngravingUnitPrice(p.EngravingPriceUnits, d), qty)

	name := p.Name
	fingerprint := "default"
	if sel.VariantKey != "" {
		name = fmt.Sprintf("%s (%s)", p.Name, sel.VariantKey)
		fingerprint = sel.VariantKey
	}
	if engraved {
		name = fmt.Sprintf("%s - Engraved: %q", name, sel.EngravingText)
		fingerprint += "_engraved"
	}

	meta := map[string]any{"variant": sel.VariantKey}
	if engraved {
		meta["engraving_text"] = sel.EngravingText
		meta["engraving_total"] = engravingTotal
	}

	lines := []LineDraft{{
		Name:        name,
		Category:    p.Category.String(),
		UnitUnits:   unit,
		Quantity:    qty,
		TotalUnits:  LineTotal(unit, qty, engravingTotal),
		Fingerprint: fingerprint,
		Image:       p.Image,
		Metadata:    meta,
	}}

	if sel.IncludeInstallation {
		lines = append(lines, installationLine(p))
	}
	return lines
}

// AreaBasedPricing covers PDLC film: one line per panel configuration, each
// carrying a transformer sized for that panel's area.
type AreaBasedPricing struct{}

func (AreaBasedPricing) Price(p ProductInfo, sel Selection, d Defaults) []LineDraft {
	unit := ResolveUnitPrice(p.PriceUnits, p.RawVariants, sel.VariantKey, d)

	quotes := QuotePanels(sel.Panels, unit)
	lines := make([]LineDraft, 0, len(quotes)+1)
	for i, q := range quotes {
		lines = append(lines, LineDraft{
			Name:        fmt.Sprintf("%s (%s' x %s' - Qty: %d)", p.Name, q.Panel.Height, q.Panel.Width, q.Panel.Quantity),
			Category:    p.Category.String(),
			UnitUnits:   unit,
			Quantity:    q.Panel.Quantity,
			TotalUnits:  q.TotalUnits,
			Fingerprint: fmt.Sprintf("%sx%s_qty%d_%d", q.Panel.Height, q.Panel.Width, q.Panel.Quantity, i),
			Image:       p.Image,
			Metadata: map[string]any{
				"area":              q.Area.String(),
				"film_amount":       q.FilmUnits,
				"transformer_watt":  q.Transformer.Watt,
				"transformer_price": q.Transformer.PriceUnits,
			},
		})
	}

	if sel.IncludeInstallation && len(lines) > 0 {
		lines = append(lines, installationLine(p))
	}
	return lines
}

// AccessoryBundlePricing covers security systems: a main line, one line per
// chosen accessory and an optional zero-price installation line.
type AccessoryBundlePricing struct{}

func (AccessoryBundlePricing) Price(p ProductInfo, sel Selection, d Defaults) []LineDraft {
	qty := sel.Quantity
	if qty < 1 {
		qty = 1
	}

	unit := ResolveUnitPrice(p.PriceUnits, p.RawVariants, sel.VariantKey, d)

	name := p.Name
	fingerprint := "bundle"
	if sel.VariantKey != "" {
		name = fmt.Sprintf("%s - %s", p.Name, sel.VariantKey)
		fingerprint = sel.VariantKey
	}

	lines := []LineDraft{{
		Name:        name,
		Category:    p.Category.String(),
		UnitUnits:   unit,
		Quantity:    qty,
		TotalUnits:  unit * qty,
		Fingerprint: fingerprint,
		Image:       p.Image,
		Metadata:    map[string]any{"model": sel.VariantKey},
	}}

	for i, acc := range sel.Accessories {
		accQty := acc.Quantity
		if accQty < 1 {
			accQty = 1
		}
		lines = append(lines, LineDraft{
			Name:        acc.Name,
			Category:    enums.CategorySecurityAccessory.String(),
			UnitUnits:   acc.UnitUnits,
			Quantity:    accQty,
			TotalUnits:  acc.UnitUnits * accQty,
			Fingerprint: fmt.Sprintf("accessory_%d", i),
			Image:       acc.Image,
			Metadata:    map[string]any{"accessory": acc.Name},
		})
	}

	if sel.IncludeInstallation {
		lines = append(lines, installationLine(p))
	}
	return lines
}

func installationLine(p ProductInfo) LineDraft {
	return LineDraft{
		Name:        "Installation and setup",
		Category:    InstallationServiceCategory,
		UnitUnits:   0,
		Quantity:    1,
		TotalUnits:  0,
		Fingerprint: "installation",
		Image:       p.Image,
		Metadata:    map[string]any{"service": true},
	}
}
