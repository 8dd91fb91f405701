package dto

import "encoding/json"

// SaveQuotationRequest is the payload for creating or updating a quotation.
// Items and ProposalRows stay raw here: parsing and validating them is core
// behaviour (items are hard validation targets, proposal overrides degrade
// gracefully), not transport concern.
type SaveQuotationRequest struct {
	QuoteDate       string          `json:"quote_date"` // YYYY-MM-DD; empty = today
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerGSTIN   string          `json:"customer_gstin"`
	Notes           string          `json:"notes"`
	Items           json.RawMessage `json:"items"`
	ProposalRows    json.RawMessage `json:"proposal_rows"`
}

// LineItemResponse one line of a saved quotation, derived fields included.
type LineItemResponse struct {
	ID          string  `json:"id"`
	ProductID   *string `json:"product_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	HSNCode     string  `json:"hsn_code,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Qty         float64 `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
	GSTRate     float64 `json:"gst_rate"`
	Taxable     float64 `json:"taxable"`
	CGST        float64 `json:"cgst"`
	SGST        float64 `json:"sgst"`
	Total       float64 `json:"total"`
}

// ProposalRowResponse one merged proposal row.
type ProposalRowResponse struct {
	SrNo          int    `json:"sr_no"`
	Description   string `json:"description"`
	Unit          string `json:"unit"`
	Specification string `json:"specification"`
	Qty           string `json:"qty"`
	Make          string `json:"make"`
}

// QuotationResponse full quotation with items and totals.
type QuotationResponse struct {
	ID              int64                 `json:"id"`
	QuoteNo         string                `json:"quote_no"`
	QuoteDate       string                `json:"quote_date"`
	CustomerName    string                `json:"customer_name"`
	CustomerAddress string                `json:"customer_address,omitempty"`
	CustomerPhone   string                `json:"customer_phone,omitempty"`
	CustomerEmail   string                `json:"customer_email,omitempty"`
	CustomerGSTIN   string                `json:"customer_gstin,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	Subtotal        float64               `json:"subtotal"`
	CGSTTotal       float64               `json:"cgst_total"`
	SGSTTotal       float64               `json:"sgst_total"`
	GrandTotal      float64               `json:"grand_total"`
	Items           []LineItemResponse    `json:"items"`
	ProposalRows    []ProposalRowResponse `json:"proposal_rows,omitempty"`
}

// QuotationListItem compact row for listings.
type QuotationListItem struct {
	ID           int64   `json:"id"`
	QuoteNo      string  `json:"quote_no"`
	QuoteDate    string  `json:"quote_date"`
	CustomerName string  `json:"customer_name"`
	GrandTotal   float64 `json:"grand_total"`
}
