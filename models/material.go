package models

// Material represents a purchased material batch in the inventory catalog.
// Price is the total paid for the batch and Quantity the total amount of
// units in it, so the cost of one catalog unit is Price / Quantity.
type Material struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"` // display label: "m", "un", "folha", ...
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Supplier string  `json:"supplier,omitempty"`
}

// CreateMaterialRequest represents the request body for creating a material
// Example: {"name": "Papel fotográfico A4", "unit": "folha", "price": 45.0, "quantity": 50, "supplier": "Papelaria Central"}
type CreateMaterialRequest struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Supplier string  `json:"supplier,omitempty"`
}

// UpdateMaterialRequest represents the request body for updating a material.
// All fields are required; the record is replaced as a whole.
type UpdateMaterialRequest struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Supplier string  `json:"supplier,omitempty"`
}
