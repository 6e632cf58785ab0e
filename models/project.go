package models

// Usage types select how a line item consumes a material (see pricing package).
const (
	UsageStandard        = "standard"          // consumes Quantity catalog-units per finished piece
	UsageSingle          = "single"            // consumes exactly one catalog-unit per finished piece
	UsageMultiplePerUnit = "multiple_per_unit" // UsageValue finished pieces share one catalog-unit
	UsageMultipleUnits   = "multiple_units"    // one finished piece consumes UsageValue catalog-units
)

// Project status pipeline. Transitions are driven by the kanban UI; the
// pricing engine never reads or writes status.
const (
	StatusPending        = "pending"
	StatusApproved       = "approved"
	StatusInProgress     = "in_progress"
	StatusPendingPayment = "pending_payment"
	StatusCompleted      = "completed"
)

// MaterialUsage ties one material to one line item. Quantity is interpreted
// according to UsageType; an empty UsageType means "standard". PrintingCost
// is a flat ink/toner add-on scaled by the same consumption rule.
type MaterialUsage struct {
	MaterialID   string  `json:"materialId"`
	Quantity     float64 `json:"quantity"`
	UsageType    string  `json:"usageType,omitempty"`
	UsageValue   float64 `json:"usageValue,omitempty"`
	PrintingCost float64 `json:"printingCost,omitempty"`
}

// QuoteLineItem is one produced item inside a quote. When UnitPrice is
// positive the item is manually priced and the cost-plus path is skipped;
// otherwise the base cost is ManualBaseCost if positive, or the computed
// variable + labor cost.
type QuoteLineItem struct {
	ProductID      string          `json:"productId,omitempty"`
	Name           string          `json:"name"`
	Quantity       int             `json:"quantity"`
	HoursToMake    float64         `json:"hoursToMake"`
	Materials      []MaterialUsage `json:"materials"`
	ProfitMargin   float64         `json:"profitMargin"`
	UnitPrice      float64         `json:"unitPrice,omitempty"`
	ManualBaseCost float64         `json:"manualBaseCost,omitempty"`
}

// Project is the quote aggregate. It may be partially filled while the
// quote is still being edited; every consumer must tolerate zero values
// and an empty item list.
type Project struct {
	ID                 string          `json:"id"`
	CustomerID         string          `json:"customerId,omitempty"`
	Items              []QuoteLineItem `json:"items"`
	PlatformID         string          `json:"platformId,omitempty"`
	Excedente          float64         `json:"excedente"` // safety margin % over total internal cost
	Shipping           float64         `json:"shipping"`
	DiscountPercentage float64         `json:"discountPercentage"`
	DiscountAmount     float64         `json:"discountAmount"`
	DownPayment        float64         `json:"downPayment"`
	Status             string          `json:"status"`
	DeliveryDate       string          `json:"deliveryDate,omitempty"`
	Theme              string          `json:"theme,omitempty"`
	CreatedAt          string          `json:"createdAt,omitempty"`
	UpdatedAt          string          `json:"updatedAt,omitempty"`
}

// CreateProjectRequest represents the request body for creating a project
// Example: {"customerId": "c_01", "theme": "Festa unicórnio", "excedente": 10, "shipping": 15.5, "items": [{"name": "Topo de bolo", "quantity": 1, "hoursToMake": 2, "profitMargin": 50, "materials": [{"materialId": "m_01", "quantity": 2}]}]}
type CreateProjectRequest struct {
	CustomerID         string          `json:"customerId,omitempty"`
	Items              []QuoteLineItem `json:"items"`
	PlatformID         string          `json:"platformId,omitempty"`
	Excedente          float64         `json:"excedente"`
	Shipping           float64         `json:"shipping"`
	DiscountPercentage float64         `json:"discountPercentage"`
	DiscountAmount     float64         `json:"discountAmount"`
	DownPayment        float64         `json:"downPayment"`
	DeliveryDate       string          `json:"deliveryDate,omitempty"`
	Theme              string          `json:"theme,omitempty"`
}

// UpdateProjectStatusRequest represents the request body for a status transition
// Example: {"status": "completed", "paymentMethod": "pix"}
// paymentMethod is only used when transitioning into "completed", for the
// final-balance ledger posting.
type UpdateProjectStatusRequest struct {
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// ProjectResponse represents a project with its computed breakdown attached
type ProjectResponse struct {
	Project
	Breakdown *PricingBreakdown `json:"breakdown,omitempty"`
}

// ProjectListItem represents a project in a list response
type ProjectListItem struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customerId,omitempty"`
	Theme        string  `json:"theme,omitempty"`
	Status       string  `json:"status"`
	DeliveryDate string  `json:"deliveryDate,omitempty"`
	ItemCount    int     `json:"itemCount"`
	FinalPrice   float64 `json:"finalPrice"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

// ProjectListResponse represents the response for listing projects
type ProjectListResponse struct {
	Projects []ProjectListItem `json:"projects"`
}
