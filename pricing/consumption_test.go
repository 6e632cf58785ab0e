package pricing

import (
	"math"
	"testing"

	"atelie-gestor/models"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

// catalog fixture: unit cost 10/5 = 2 per catalog unit.
func testEngine() *Engine {
	return NewEngine(
		[]models.Material{{ID: "m1", Name: "Papel fotografico", Unit: "folha", Price: 10, Quantity: 5}},
		nil,
		models.CompanyData{},
	)
}

func TestUsageCost_ConsumptionModes(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name         string
		usage        models.MaterialUsage
		wantMaterial float64
		wantPrinting float64
	}{
		{
			name:         "standard multiplies unit cost by quantity",
			usage:        models.MaterialUsage{MaterialID: "m1", Quantity: 3, PrintingCost: 1.5},
			wantMaterial: 6,
			wantPrinting: 1.5,
		},
		{
			name:         "empty usage type means standard",
			usage:        models.MaterialUsage{MaterialID: "m1", Quantity: 2},
			wantMaterial: 4,
			wantPrinting: 0,
		},
		{
			name:         "single ignores the nominal quantity",
			usage:        models.MaterialUsage{MaterialID: "m1", Quantity: 99, UsageType: models.UsageSingle, PrintingCost: 0.8},
			wantMaterial: 2,
			wantPrinting: 0.8,
		},
		{
			name:         "multiple_per_unit divides by the yield",
			usage:        models.MaterialUsage{MaterialID: "m1", Quantity: 1, UsageType: models.UsageMultiplePerUnit, UsageValue: 4, PrintingCost: 2},
			wantMaterial: 0.5,
			wantPrinting: 0.5,
		},
		{
			name:         "multiple_units multiplies by the units consumed",
			usage:        models.MaterialUsage{MaterialID: "m1", Quantity: 1, UsageType: models.UsageMultipleUnits, UsageValue: 3, PrintingCost: 2},
			wantMaterial: 6,
			wantPrinting: 6,
		},
		{
			name:         "missing usage value defaults to 1",
			usage:        models.MaterialUsage{MaterialID: "m1", UsageType: models.UsageMultiplePerUnit, PrintingCost: 2},
			wantMaterial: 2,
			wantPrinting: 2,
		},
		{
			name:         "dangling material reference contributes nothing",
			usage:        models.MaterialUsage{MaterialID: "deleted", Quantity: 5, PrintingCost: 3},
			wantMaterial: 0,
			wantPrinting: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			material, printing := e.usageCost(tt.usage)
			nearlyEqual(t, "materialCost", material, tt.wantMaterial)
			nearlyEqual(t, "printingCost", printing, tt.wantPrinting)
		})
	}
}

func TestUsageCost_ZeroQuantityBatch(t *testing.T) {
	e := NewEngine(
		[]models.Material{{ID: "m1", Price: 12, Quantity: 0}},
		nil,
		models.CompanyData{},
	)

	// A batch registered with quantity 0 counts as one unit, never NaN/Inf.
	material, _ := e.usageCost(models.MaterialUsage{MaterialID: "m1", Quantity: 1})
	nearlyEqual(t, "materialCost", material, 12)
}

func TestUsageCost_PerUnitAndUnitsAreInverses(t *testing.T) {
	e := testEngine()
	const k = 4.0

	divided, _ := e.usageCost(models.MaterialUsage{MaterialID: "m1", UsageType: models.UsageMultiplePerUnit, UsageValue: k})
	multiplied, _ := e.usageCost(models.MaterialUsage{MaterialID: "m1", UsageType: models.UsageMultipleUnits, UsageValue: k})

	nearlyEqual(t, "divided*k*k", divided*k*k, multiplied)
}
