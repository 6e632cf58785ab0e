package pricing

import "atelie-gestor/models"

// itemCostTotals carries the three cost dimensions of one line item,
// already multiplied by the item's finished quantity.
type itemCostTotals struct {
	Variable float64 // materials + printing
	Labor    float64 // hours * hourly rate
	Fixed    float64 // allocated share of monthly fixed costs + MEI tax
}

// hourlyFixedCost allocates the monthly fixed costs and MEI tax over the
// studio's monthly production-hour capacity. Unset capacity fields default
// to 1 to keep the division defined while settings are incomplete.
func (e *Engine) hourlyFixedCost() float64 {
	hoursDaily := e.company.WorkHoursDaily
	if hoursDaily <= 0 {
		hoursDaily = 1
	}
	daysMonthly := e.company.WorkDaysMonthly
	if daysMonthly <= 0 {
		daysMonthly = 1
	}
	capacity := hoursDaily * daysMonthly
	return (e.company.FixedCostsMonthly + e.company.MEITax) / capacity
}

// itemCosts sums the per-finished-unit cost of every material usage in the
// item and scales variable, labor and fixed cost by the finished quantity.
func (e *Engine) itemCosts(item models.QuoteLineItem) itemCostTotals {
	var perUnit float64
	for _, usage := range item.Materials {
		materialCost, printingCost := e.usageCost(usage)
		perUnit += materialCost + printingCost
	}

	quantity := float64(item.Quantity)
	return itemCostTotals{
		Variable: perUnit * quantity,
		Labor:    item.HoursToMake * e.company.HourlyRate * quantity,
		Fixed:    item.HoursToMake * e.hourlyFixedCost() * quantity,
	}
}
