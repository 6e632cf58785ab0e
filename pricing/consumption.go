package pricing

import "atelie-gestor/models"

// unitCost returns the cost of one catalog unit of a material. A batch
// recorded with zero or negative quantity counts as a single unit so the
// division stays defined on in-progress inventory data.
func unitCost(m models.Material) float64 {
	quantity := m.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	return m.Price / quantity
}

// usageCost resolves one material usage row into the material cost and
// printing cost attributable to one finished piece.
//
// The four consumption rules:
//   - standard (or empty): the piece consumes Quantity catalog-units
//   - single: the piece consumes exactly one catalog-unit, Quantity ignored
//   - multiple_per_unit: UsageValue pieces share one catalog-unit (yield)
//   - multiple_units: the piece consumes UsageValue catalog-units
//
// A usage pointing at a material that is no longer in the catalog
// contributes nothing: stale references are expected after catalog edits
// and are tolerated rather than reported.
func (e *Engine) usageCost(usage models.MaterialUsage) (materialCost, printingCost float64) {
	material, ok := e.materials[usage.MaterialID]
	if !ok {
		return 0, 0
	}

	pricePerUnit := unitCost(material)

	usageValue := usage.UsageValue
	if usageValue <= 0 {
		usageValue = 1
	}

	switch usage.UsageType {
	case models.UsageSingle:
		return pricePerUnit, usage.PrintingCost
	case models.UsageMultiplePerUnit:
		return pricePerUnit / usageValue, usage.PrintingCost / usageValue
	case models.UsageMultipleUnits:
		return pricePerUnit * usageValue, usage.PrintingCost * usageValue
	default:
		return pricePerUnit * usage.Quantity, usage.PrintingCost
	}
}
