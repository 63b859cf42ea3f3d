package pricing

import (
	"testing"

	"github.com/sohublabs/smartstore-backend/pkg/enums"
)

func TestForCategory(t *testing.T) {
	if _, ok := ForCategory(enums.CategoryPDLCFilm).(AreaBasedPricing); !ok {
		t.Fatal("pdlc_film should price by area")
	}
	if _, ok := ForCategory(enums.CategorySecuritySystem).(AccessoryBundlePricing); !ok {
		t.Fatal("security_system should price as a bundle")
	}
	if _, ok := ForCategory(enums.CategorySmartSwitch).(SimpleVariantPricing); !ok {
		t.Fatal("smart_switch should price by variant")
	}
	if _, ok := ForCategory(enums.CategoryGateway).(SimpleVariantPricing); !ok {
		t.Fatal("gateway should price by variant")
	}
}

func TestSimpleVariantPricingWithEngraving(t *testing.T) {
	engraving := 200
	p := ProductInfo{
		Name:                "Light Switch",
		Category:            enums.CategorySmartSwitch,
		PriceUnits:          3500,
		RawVariants:         `[{"name":"White","price":3700,"color":"White"},{"name":"Gold","price":4050,"color":"Gold"}]`,
		EngravingAvailable:  true,
		EngravingPriceUnits: &engraving,
	}
	sel := Selection{VariantKey: "Gold", Quantity: 2, EngravingText: "Kitchen"}

	lines := SimpleVariantPricing{}.Price(p, sel, testDefaults())
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	line := lines[0]
	if line.UnitUnits != 4050 {
		t.Fatalf("expected unit 4050, got %d", line.UnitUnits)
	}
	if line.TotalUnits != 4050*2+200*2 {
		t.Fatalf("expected total 8500, got %d", line.TotalUnits)
	}
	if line.Name != `Light Switch (Gold) - Engraved: "Kitchen"` {
		t.Fatalf("unexpected name %q", line.Name)
	}
	if line.Fingerprint != "Gold_engraved" {
		t.Fatalf("unexpected fingerprint %q", line.Fingerprint)
	}
}

func TestSimpleVariantPricingIgnoresEngravingWhenUnavailable(t *testing.T) {
	p := ProductInfo{
		Name:       "Gateway Hub",
		Category:   enums.CategoryGateway,
		PriceUnits: 8500,
	}
	sel := Selection{Quantity: 1, EngravingText: "ignored"}

	lines := SimpleVariantPricing{}.Price(p, sel, testDefaults())
	if lines[0].TotalUnits != 8500 {
		t.Fatalf("expected no engraving surcharge, got %d", lines[0].TotalUnits)
	}
}

func TestSimpleVariantPricingDefaultsQuantity(t *testing.T) {
	p := ProductInfo{Name: "Sensor", Category: enums.CategorySensor}
	lines := SimpleVariantPricing{}.Price(p, Selection{}, testDefaults())

	if lines[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", lines[0].Quantity)
	}
	if lines[0].UnitUnits != 3500 {
		t.Fatalf("expected fallback price, got %d", lines[0].UnitUnits)
	}
}

func TestSimpleVariantPricingInstallationLine(t *testing.T) {
	p := ProductInfo{Name: "Fan Switch", Category: enums.CategorySmartSwitch, PriceUnits: 3750}
	sel := Selection{Quantity: 1, IncludeInstallation: true}

	lines := SimpleVariantPricing{}.Price(p, sel, testDefaults())
	if len(lines) != 2 {
		t.Fatalf("expected product + installation lines, got %d", len(lines))
	}

	install := lines[1]
	if install.Category != InstallationServiceCategory {
		t.Fatalf("unexpected category %q", install.Category)
	}
	if install.UnitUnits != 0 || install.TotalUnits != 0 || install.Quantity != 1 {
		t.Fatalf("installation line must be a zero-price single unit, got %+v", install)
	}
}

func TestAreaBasedPricingEmitsPerPanelLines(t *testing.T) {
	p := ProductInfo{Name: "PDLC Film", Category: enums.CategoryPDLCFilm, PriceUnits: 500}
	sel := Selection{
		Panels: []Panel{
			panel("4", "5", 1),
			panel("6", "10", 2),
			panel("0", "3", 1),
		},
		IncludeInstallation: true,
	}

	lines := AreaBasedPricing{}.Price(p, sel, testDefaults())
	if len(lines) != 3 {
		t.Fatalf("expected 2 panel lines + installation, got %d", len(lines))
	}

	first := lines[0]
	if first.Name != "PDLC Film (4' x 5' - Qty: 1)" {
		t.Fatalf("unexpected name %q", first.Name)
	}
	if first.TotalUnits != 20*500+9500 {
		t.Fatalf("expected film+transformer total, got %d", first.TotalUnits)
	}
	if first.Metadata["transformer_watt"] != "30W" {
		t.Fatalf("expected 30W metadata, got %v", first.Metadata["transformer_watt"])
	}

	second := lines[1]
	if second.Quantity != 2 {
		t.Fatalf("expected line quantity 2, got %d", second.Quantity)
	}
	if second.TotalUnits != 120*500+23000 {
		t.Fatalf("expected 100W tier total, got %d", second.TotalUnits)
	}

	if lines[2].Category != InstallationServiceCategory {
		t.Fatalf("expected trailing installation line, got %+v", lines[2])
	}
}

func TestAreaBasedPricingNoValidPanels(t *testing.T) {
	p := ProductInfo{Name: "PDLC Film", Category: enums.CategoryPDLCFilm, PriceUnits: 500}
	sel := Selection{Panels: []Panel{panel("0", "0", 1)}, IncludeInstallation: true}

	lines := AreaBasedPricing{}.Price(p, sel, testDefaults())
	if len(lines) != 0 {
		t.Fatalf("expected no lines without valid panels, got %d", len(lines))
	}
}

func TestAccessoryBundlePricing(t *testing.T) {
	p := ProductInfo{
		Name:        "Smart Security Box",
		Category:    enums.CategorySecuritySystem,
		RawVariants: `[{"name":"SP-03","price":14500},{"name":"SP-05","price":18500}]`,
	}
	sel := Selection{
		VariantKey: "SP-05",
		Quantity:   1,
		Accessories: []AccessoryPick{
			{Name: "Door Sensor", UnitUnits: 1200, Quantity: 2},
			{Name: "Siren", UnitUnits: 2500},
		},
		IncludeInstallation: true,
	}

	lines := AccessoryBundlePricing{}.Price(p, sel, testDefaults())
	if len(lines) != 4 {
		t.Fatalf("expected main + 2 accessories + installation, got %d", len(lines))
	}

	main := lines[0]
	if main.Name != "Smart Security Box - SP-05" || main.UnitUnits != 18500 {
		t.Fatalf("unexpected main line %+v", main)
	}

	if lines[1].TotalUnits != 2400 {
		t.Fatalf("expected accessory total 2400, got %d", lines[1].TotalUnits)
	}
	if lines[2].Quantity != 1 || lines[2].TotalUnits != 2500 {
		t.Fatalf("accessory quantity should default to 1, got %+v", lines[2])
	}
	if lines[1].Category != enums.CategorySecurityAccessory.String() {
		t.Fatalf("unexpected accessory category %q", lines[1].Category)
	}

	install := lines[3]
	if install.Category != InstallationServiceCategory || install.TotalUnits != 0 {
		t.Fatalf("unexpected installation line %+v", install)
	}
}
