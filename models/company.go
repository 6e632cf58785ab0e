package models

// CompanyData holds the business-wide constants every quote is priced
// against. All fields may be zero while the studio is still filling in its
// settings; the pricing engine substitutes safe defaults where a zero
// would end up in a denominator.
type CompanyData struct {
	HourlyRate          float64 `json:"hourlyRate"`
	FixedCostsMonthly   float64 `json:"fixedCostsMonthly"`
	MEITax              float64 `json:"meiTax"` // flat monthly MEI tax
	WorkHoursDaily      float64 `json:"workHoursDaily"`
	WorkDaysMonthly     float64 `json:"workDaysMonthly"`
	DefaultProfitMargin float64 `json:"defaultProfitMargin"`
	DefaultExcedente    float64 `json:"defaultExcedente"`
}

// UpdateCompanyDataRequest represents the request body for updating company settings
// Example: {"hourlyRate": 25, "fixedCostsMonthly": 800, "meiTax": 75, "workHoursDaily": 6, "workDaysMonthly": 22, "defaultProfitMargin": 50, "defaultExcedente": 10}
type UpdateCompanyDataRequest struct {
	HourlyRate          float64 `json:"hourlyRate"`
	FixedCostsMonthly   float64 `json:"fixedCostsMonthly"`
	MEITax              float64 `json:"meiTax"`
	WorkHoursDaily      float64 `json:"workHoursDaily"`
	WorkDaysMonthly     float64 `json:"workDaysMonthly"`
	DefaultProfitMargin float64 `json:"defaultProfitMargin"`
	DefaultExcedente    float64 `json:"defaultExcedente"`
}
