package models

// PricingBreakdown represents the complete pricing calculation result for
// a project. Intermediate fields keep full float precision; FinalPrice and
// RemainingBalance are rounded up to the nearest cent. DownPayment is the
// resolved amount already collected, which may come from the ledger rather
// than the value recorded on the project.
type PricingBreakdown struct {
	VariableCosts    float64 `json:"variableCosts"`
	LaborCosts       float64 `json:"laborCosts"`
	FixedCosts       float64 `json:"fixedCosts"`
	Excedente        float64 `json:"excedente"`
	Profit           float64 `json:"profit"`
	PlatformFees     float64 `json:"platformFees"`
	Shipping         float64 `json:"shipping"`
	TotalDiscount    float64 `json:"totalDiscount"`
	BasePieceValue   float64 `json:"basePieceValue"`
	DownPayment      float64 `json:"downPayment"`
	RemainingBalance float64 `json:"remainingBalance"`
	FinalPrice       float64 `json:"finalPrice"`
}
