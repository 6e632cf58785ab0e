package pricing

import (
	"reflect"
	"testing"

	"atelie-gestor/models"
)

func TestBreakdown_StandardVariableCost(t *testing.T) {
	e := testEngine()
	project := &models.Project{
		Items: []models.QuoteLineItem{{
			Quantity:  1,
			Materials: []models.MaterialUsage{{MaterialID: "m1", Quantity: 3}},
		}},
	}

	b := e.Breakdown(project, nil)

	nearlyEqual(t, "variableCosts", b.VariableCosts, 6)
	nearlyEqual(t, "laborCosts", b.LaborCosts, 0)
}

func TestBreakdown_LaborAndFixedCosts(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{
		HourlyRate:        25,
		FixedCostsMonthly: 800,
		MEITax:            75,
		WorkHoursDaily:    7,
		WorkDaysMonthly:   25,
	})
	project := &models.Project{
		Items: []models.QuoteLineItem{{Quantity: 2, HoursToMake: 3}},
	}

	b := e.Breakdown(project, nil)

	// capacity = 7*25 = 175h; hourly fixed = 875/175 = 5.
	nearlyEqual(t, "laborCosts", b.LaborCosts, 150)
	nearlyEqual(t, "fixedCosts", b.FixedCosts, 30)
}

func TestBreakdown_CapacityDefaultsToOne(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{FixedCostsMonthly: 800, MEITax: 75})
	project := &models.Project{
		Items: []models.QuoteLineItem{{Quantity: 1, HoursToMake: 2}},
	}

	b := e.Breakdown(project, nil)

	// Unset capacity fields each default to 1 instead of dividing by zero.
	nearlyEqual(t, "fixedCosts", b.FixedCosts, 1750)
}

func TestBreakdown_ProfitIsTopDownResidual(t *testing.T) {
	e := NewEngine(
		[]models.Material{{ID: "m1", Price: 100, Quantity: 1}},
		nil,
		models.CompanyData{},
	)
	// basePieceValue 200 from a manual price, subtotalCosts 100, excedente 10%.
	project := &models.Project{
		Excedente: 10,
		Items: []models.QuoteLineItem{{
			Quantity:  1,
			UnitPrice: 200,
			Materials: []models.MaterialUsage{{MaterialID: "m1", Quantity: 1}},
		}},
	}

	b := e.Breakdown(project, nil)

	nearlyEqual(t, "basePieceValue", b.BasePieceValue, 200)
	nearlyEqual(t, "excedente", b.Excedente, 10)
	nearlyEqual(t, "profit", b.Profit, 90)
}

func TestBreakdown_ProfitClampedAtZero(t *testing.T) {
	e := NewEngine(
		[]models.Material{{ID: "m1", Price: 100, Quantity: 1}},
		nil,
		models.CompanyData{},
	)
	// Manually underpriced below internal cost: no negative profit reported.
	project := &models.Project{
		Items: []models.QuoteLineItem{{
			Quantity:  1,
			UnitPrice: 40,
			Materials: []models.MaterialUsage{{MaterialID: "m1", Quantity: 1}},
		}},
	}

	b := e.Breakdown(project, nil)

	nearlyEqual(t, "profit", b.Profit, 0)
}

func TestBreakdown_CostPlusPath(t *testing.T) {
	e := NewEngine(
		[]models.Material{{ID: "m1", Price: 10, Quantity: 5}},
		nil,
		models.CompanyData{HourlyRate: 20, FixedCostsMonthly: 100, WorkHoursDaily: 10, WorkDaysMonthly: 10},
	)
	project := &models.Project{
		Items: []models.QuoteLineItem{{
			Quantity:     2,
			HoursToMake:  1,
			ProfitMargin: 50,
			Materials:    []models.MaterialUsage{{MaterialID: "m1", Quantity: 3}},
		}},
	}

	b := e.Breakdown(project, nil)

	// variable 12, labor 40, fixed 2 (hourly fixed 1); subtotal 54, profit 27.
	nearlyEqual(t, "variableCosts", b.VariableCosts, 12)
	nearlyEqual(t, "laborCosts", b.LaborCosts, 40)
	nearlyEqual(t, "fixedCosts", b.FixedCosts, 2)
	nearlyEqual(t, "basePieceValue", b.BasePieceValue, 81)
}

func TestBreakdown_ManualBaseCostOverride(t *testing.T) {
	e := NewEngine(
		[]models.Material{{ID: "m1", Price: 10, Quantity: 5}},
		nil,
		models.CompanyData{HourlyRate: 20},
	)
	project := &models.Project{
		Items: []models.QuoteLineItem{{
			Quantity:       1,
			HoursToMake:    1,
			ManualBaseCost: 30,
			ProfitMargin:   100,
			Materials:      []models.MaterialUsage{{MaterialID: "m1", Quantity: 1}},
		}},
	}

	b := e.Breakdown(project, nil)

	// Base cost 30 replaces variable+labor (22); fixed is still added on top.
	nearlyEqual(t, "basePieceValue", b.BasePieceValue, 60)
}

func TestBreakdown_DiscountClamp(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{})
	project := &models.Project{
		DiscountPercentage: 100,
		DiscountAmount:     25,
		Items:              []models.QuoteLineItem{{Quantity: 1, UnitPrice: 80}},
	}

	b := e.Breakdown(project, nil)

	nearlyEqual(t, "totalDiscount", b.TotalDiscount, 105)
	nearlyEqual(t, "finalPrice", b.FinalPrice, 0)
}

func TestBreakdown_FeeInversion(t *testing.T) {
	e := NewEngine(nil,
		[]models.Platform{{ID: "pl1", Name: "Elo7", FeePercentage: 10}},
		models.CompanyData{},
	)
	project := &models.Project{
		PlatformID: "pl1",
		Items:      []models.QuoteLineItem{{Quantity: 1, UnitPrice: 90}},
	}

	b := e.Breakdown(project, nil)

	// Gross solved so the studio nets 90 after the 10% fee.
	nearlyEqual(t, "finalPrice", b.FinalPrice, 100)
	if b.PlatformFees < 9.999999 || b.PlatformFees > 10.000001 {
		t.Fatalf("platformFees = %v, want ~10", b.PlatformFees)
	}
	// Round trip: gross * (1-rate) recovers the net.
	nearlyEqual(t, "roundTrip", (b.BasePieceValue+b.PlatformFees)*0.9, 90)
}

func TestBreakdown_InvalidFeeIgnored(t *testing.T) {
	e := NewEngine(nil,
		[]models.Platform{{ID: "pl1", FeePercentage: 100}},
		models.CompanyData{},
	)
	project := &models.Project{
		PlatformID: "pl1",
		Items:      []models.QuoteLineItem{{Quantity: 1, UnitPrice: 90}},
	}

	b := e.Breakdown(project, nil)

	nearlyEqual(t, "platformFees", b.PlatformFees, 0)
	nearlyEqual(t, "finalPrice", b.FinalPrice, 90)
}

func TestBreakdown_ShippingAndCeiling(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{})
	project := &models.Project{
		Shipping: 0,
		Items:    []models.QuoteLineItem{{Quantity: 1, UnitPrice: 149.995}},
	}

	b := e.Breakdown(project, nil)
	nearlyEqual(t, "finalPrice", b.FinalPrice, 150)

	project.Shipping = 12.5
	b = e.Breakdown(project, nil)
	nearlyEqual(t, "finalPrice with shipping", b.FinalPrice, 162.5)
	nearlyEqual(t, "shipping", b.Shipping, 12.5)
}

func TestBreakdown_QuantityMonotonic(t *testing.T) {
	e := NewEngine(
		[]models.Material{{ID: "m1", Price: 10, Quantity: 5}},
		nil,
		models.CompanyData{HourlyRate: 20},
	)
	project := func(qty int) *models.Project {
		return &models.Project{
			Items: []models.QuoteLineItem{{
				Quantity:     qty,
				HoursToMake:  1,
				ProfitMargin: 30,
				Materials:    []models.MaterialUsage{{MaterialID: "m1", Quantity: 2}},
			}},
		}
	}

	prev := e.Breakdown(project(1), nil).FinalPrice
	for qty := 2; qty <= 6; qty++ {
		next := e.Breakdown(project(qty), nil).FinalPrice
		if next < prev {
			t.Fatalf("finalPrice decreased from %v to %v at quantity %d", prev, next, qty)
		}
		prev = next
	}
}

func TestBreakdown_PureAndIdempotent(t *testing.T) {
	e := NewEngine(
		[]models.Material{{ID: "m1", Price: 33.33, Quantity: 7}},
		[]models.Platform{{ID: "pl1", FeePercentage: 7.5}},
		models.CompanyData{HourlyRate: 21.7, FixedCostsMonthly: 456, MEITax: 75, WorkHoursDaily: 6, WorkDaysMonthly: 22},
	)
	project := &models.Project{
		ID:                 "p1",
		PlatformID:         "pl1",
		Excedente:          12,
		Shipping:           18.9,
		DiscountPercentage: 5,
		DownPayment:        40,
		Items: []models.QuoteLineItem{
			{Quantity: 3, HoursToMake: 1.5, ProfitMargin: 45, Materials: []models.MaterialUsage{{MaterialID: "m1", Quantity: 2, PrintingCost: 0.75}}},
			{Quantity: 1, UnitPrice: 120},
		},
	}
	ledger := []models.Transaction{
		{ID: "sinal_p1", Type: models.TransactionIncome, Amount: 55},
	}

	first := e.Breakdown(project, ledger)
	second := e.Breakdown(project, ledger)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("breakdown not idempotent:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestBreakdown_NilAndEmptyProject(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{})

	for _, project := range []*models.Project{nil, {}} {
		b := e.Breakdown(project, nil)
		nearlyEqual(t, "finalPrice", b.FinalPrice, 0)
		nearlyEqual(t, "remainingBalance", b.RemainingBalance, 0)
	}
}
