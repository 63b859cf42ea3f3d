package pricing

import (
	"github.com/shopspring/decimal"
)

// Panel is one glass panel configuration in feet.
type Panel struct {
	Height   decimal.Decimal `json:"height"`
	Width    decimal.Decimal `json:"width"`
	Quantity int             `json:"quantity"`
}

// Valid reports whether the panel contributes area: both dimensions and the
// quantity must be positive.
func (p Panel) Valid() bool {
	return p.Height.IsPositive() && p.Width.IsPositive() && p.Quantity > 0
}

// Area returns height x width x quantity in square feet. Validity is the
// caller's concern: a zero-quantity panel simply contributes zero area.
func (p Panel) Area() decimal.Decimal {
	return p.Height.Mul(p.Width).Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Transformer is the power unit sized for a film area.
type Transformer struct {
	Watt       string `json:"watt"`
	Name       string `json:"name"`
	PriceUnits int    `json:"price"`
}

var transformerTiers = []struct {
	maxArea int64
	watt    string
	price   int
}{
	{50, "30W", 9500},
	{85, "50W", 12500},
	{160, "100W", 23000},
	{300, "200W", 30000},
	{630, "500W", 40000},
}

// TransformerFor sizes a transformer for the given area in square feet. Areas
// beyond the largest tier get the open-ended 500W+ unit at the top-tier price.
func TransformerFor(area decimal.Decimal) Transformer {
	for _, tier := range transformerTiers {
		if area.Cmp(decimal.NewFromInt(tier.maxArea)) <= 0 {
			return Transformer{Watt: tier.watt, Name: tier.watt + " Transformer", PriceUnits: tier.price}
		}
	}
	return Transformer{Watt: "500W+", Name: "500W+ Transformer", PriceUnits: 40000}
}

// InstallationChargeFor returns the advisory installation charge keyed on the
// film amount. It is surfaced in quotes only, never folded into line totals.
func InstallationChargeFor(filmUnits int) int {
	switch {
	case filmUnits >= 150000:
		return 20000
	case filmUnits >= 100000:
		return 15000
	case filmUnits >= 50000:
		return 8000
	default:
		return 5000
	}
}

// filmAmount converts area x per-sqft price into currency units.
func filmAmount(area decimal.Decimal, unitPriceUnits int) int {
	return int(area.Mul(decimal.NewFromInt(int64(unitPriceUnits))).Round(0).IntPart())
}

// AreaQuote is the aggregate display quote for a set of panels: one
// transformer sized on the combined area.
type AreaQuote struct {
	TotalArea         decimal.Decimal `json:"total_area"`
	FilmUnits         int             `json:"film_amount"`
	Transformer       Transformer     `json:"transformer"`
	InstallationUnits int             `json:"installation_charge"`
	TotalUnits        int             `json:"total"`
}

// QuoteArea prices the combined panel set. Invalid panels are skipped. The
// returned total covers film plus transformer; the installation charge stays
// advisory.
func QuoteArea(panels []Panel, unitPriceUnits int) AreaQuote {
	total := decimal.Zero
	for _, p := range panels {
		if !p.Valid() {
			continue
		}
		total = total.Add(p.Area())
	}

	film := filmAmount(total, unitPriceUnits)
	transformer := TransformerFor(total)
	return AreaQuote{
		TotalArea:         total,
		FilmUnits:         film,
		Transformer:       transformer,
		InstallationUnits: InstallationChargeFor(film),
		TotalUnits:        film + transformer.PriceUnits,
	}
}

// PanelQuote prices one panel configuration on its own, with a transformer
// sized for just that panel's area. Cart emission uses these.
type PanelQuote struct {
	Panel       Panel           `json:"panel"`
	Area        decimal.Decimal `json:"area"`
	FilmUnits   int             `json:"film_amount"`
	Transformer Transformer     `json:"transformer"`
	TotalUnits  int             `json:"total"`
}

// QuotePanels prices each valid panel independently.
func QuotePanels(panels []Panel, unitPriceUnits int) []PanelQuote {
	quotes := make([]PanelQuote, 0, len(panels))
	for _, p := range panels {
		if !p.Valid() {
			continue
		}
		area := p.Area()
		film := filmAmount(area, unitPriceUnits)
		transformer := TransformerFor(area)
		quotes = append(quotes, PanelQuote{
			Panel:       p,
			Area:        area,
			FilmUnits:   film,
			Transformer: transformer,
			TotalUnits:  film + transformer.PriceUnits,
		})
	}
	return quotes
}
