package models

// Platform represents a sales channel that charges a commission on the
// gross sale price (marketplace commission or card-processing fee).
// FeePercentage is expected in [0,100); values at or above 100 are treated
// as a configuration error and ignored by the pricing engine.
type Platform struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	FeePercentage float64 `json:"feePercentage"`
}

// CreatePlatformRequest represents the request body for creating a platform
// Example: {"name": "Elo7", "feePercentage": 12}
type CreatePlatformRequest struct {
	Name          string  `json:"name"`
	FeePercentage float64 `json:"feePercentage"`
}
