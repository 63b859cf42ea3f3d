package pricing

// EngravingUnitPrice picks the per-unit engraving price: the product's own
// price when set and positive, otherwise the configured default.
func EngravingUnitPrice(productEngravingUnits *int, d Defaults) int {
	if productEngravingUnits != nil && *productEngravingUnits > 0 {
		return *productEngravingUnits
	}
	return d.EngravingPriceUnits
}

// EngravingTotal is engraving unit price x quantity when engraving is
// selected, zero otherwise.
func EngravingTotal(selected bool, unitUnits, quantity int) int {
	if !selected || quantity <= 0 {
		return 0
	}
	return unitUnits * quantity
}

// LineTotal folds the base price and the engraving surcharge. Installation is
// never part of a line total; it rides as its own zero-price service line.
func LineTotal(unitUnits, quantity, engravingTotalUnits int) int {
	return unitUnits*quantity + engravingTotalUnits
}
