package entity

import "time"

// Quotation is a saved quote header plus its owned line items. The quote
// number is assigned exactly once, right after the header first receives an
// id, and never changes afterwards even if the quote date is edited into a
// different year.
type Quotation struct {
	ID              int64
	QuoteNo         string // Q-<year>-<id zero-padded to 4>, e.g. Q-2024-0007
	QuoteDate       time.Time
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	CustomerEmail   string
	CustomerGSTIN   string
	Notes           string
	Subtotal        float64
	CGSTTotal       float64
	SGSTTotal       float64
	GrandTotal      float64
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []LineItem
}

// LineItem is one quotation row. Taxable, CGST, SGST and Total are derived
// from Qty/UnitPrice/GSTRate and recomputed on every save and every render;
// values persisted or submitted for them are never trusted.
type LineItem struct {
	ID          string // uuid
	QuotationID int64
	ProductID   *string // catalog reference; nil for custom rows
	Position    int
	Name        string
	Description string
	HSNCode     string
	Unit        string
	Qty         float64
	UnitPrice   float64
	GSTRate     float64 // nominal GST percentage, split 50/50 into CGST/SGST

	Taxable float64
	CGST    float64
	SGST    float64
	Total   float64
}
