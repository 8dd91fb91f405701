package entity

import "time"

// Product is a preset catalog entry the quotation form can pull prices from.
type Product struct {
	ID          string // uuid
	Name        string
	Description string
	HSNCode     string
	Unit        string
	UnitPrice   float64
	GSTRate     float64 // percentage, typically 0-28
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
