package dto

import "time"

// SaveProductRequest create/update payload for a catalog product.
type SaveProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	HSNCode     string  `json:"hsn_code"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	GSTRate     float64 `json:"gst_rate"`
}

// ProductResponse catalog product representation.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	HSNCode     string    `json:"hsn_code,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	UnitPrice   float64   `json:"unit_price"`
	GSTRate     float64   `json:"gst_rate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
